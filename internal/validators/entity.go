package validators

import (
	"context"

	"github.com/MKhiriev/flight-guardian/models"
)

// Field names of the facility and oversight records.
const (
	FieldName             = "name"
	FieldPostalCode       = "postalCode"
	FieldPostalAddress    = "postalAddress"
	FieldPhysicalAddress  = "physicalAddress"
	FieldAirportID        = "airportId"
	FieldRunwayID         = "runwayId"
	FieldTaxiwayID        = "taxiwayId"
	FieldAirlineID        = "airlineId"
	FieldANSStationID     = "ansStationId"
	FieldMaintenanceOrgID = "maintenanceOrgId"
	FieldInspectorID      = "inspectorId"
	FieldNumber           = "number"
	FieldWidth            = "width"
	FieldLength           = "length"
	FieldSurfaceType      = "surfaceType"
	FieldNumberOfAircraft = "numberOfAircraft"
	FieldRoutesFlown      = "routesFlown"
	FieldTotalPassengers  = "totalPassengers"
	FieldServices         = "services"
	FieldLocation         = "location"
	FieldAircraftTypes    = "aircraftTypes"
	FieldInspectionType   = "inspectionType"
	FieldEntity           = "entity"
	FieldComment          = "comment"
)

// EntityValidator implements [Validator] for facility and oversight records.
type EntityValidator struct {
}

// NewEntityValidator constructs an EntityValidator.
func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Airport:
		return evaluate(airportRules(value), fields...)
	case *models.Airport:
		return evaluate(airportRules(*value), fields...)

	case models.Runway:
		return evaluate(surfaceRules(value.AirportID, value.Number, value.Width, value.Length, value.SurfaceType), fields...)
	case *models.Runway:
		return evaluate(surfaceRules(value.AirportID, value.Number, value.Width, value.Length, value.SurfaceType), fields...)

	case models.Taxiway:
		return evaluate(surfaceRules(value.AirportID, value.Number, value.Width, value.Length, value.SurfaceType), fields...)
	case *models.Taxiway:
		return evaluate(surfaceRules(value.AirportID, value.Number, value.Width, value.Length, value.SurfaceType), fields...)

	case models.Airline:
		return evaluate(airlineRules(value), fields...)
	case *models.Airline:
		return evaluate(airlineRules(*value), fields...)

	case models.ANSStation:
		return evaluate(ansStationRules(value), fields...)
	case *models.ANSStation:
		return evaluate(ansStationRules(*value), fields...)

	case models.MaintenanceOrganization:
		return evaluate(maintenanceOrgRules(value), fields...)
	case *models.MaintenanceOrganization:
		return evaluate(maintenanceOrgRules(*value), fields...)

	case models.Inspection:
		return evaluate(inspectionRules(value), fields...)
	case *models.Inspection:
		return evaluate(inspectionRules(*value), fields...)

	case models.Issue:
		return evaluate(issueRules(value), fields...)
	case *models.Issue:
		return evaluate(issueRules(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func airportRules(a models.Airport) []rule {
	return []rule{
		notEmpty(FieldName, a.Name),
		isEmail(FieldEmail, a.Email),
		isPhone(FieldPhoneNumber, a.PhoneNumber),
		notEmpty(FieldPostalCode, a.PostalCode),
		notEmpty(FieldPostalAddress, a.PostalAddress),
		notEmpty(FieldPhysicalAddress, a.PhysicalAddress),
	}
}

// surfaceRules covers runways and taxiways, which share their layout.
func surfaceRules(airportID, number string, width, length float64, surfaceType string) []rule {
	return []rule{
		notEmpty(FieldAirportID, airportID),
		notEmpty(FieldNumber, number),
		nonNegative(FieldWidth, width),
		nonNegative(FieldLength, length),
		notEmpty(FieldSurfaceType, surfaceType),
	}
}

func airlineRules(a models.Airline) []rule {
	return []rule{
		notEmpty(FieldName, a.Name),
		nonNegative(FieldNumberOfAircraft, float64(a.NumberOfAircraft)),
		{field: FieldRoutesFlown, ok: len(a.RoutesFlown) > 0, msg: FieldRoutesFlown + " should not be empty"},
		nonNegative(FieldTotalPassengers, float64(a.TotalPassengers)),
	}
}

func ansStationRules(s models.ANSStation) []rule {
	return []rule{
		notEmpty(FieldName, s.Name),
		{field: FieldServices, ok: len(s.Services) > 0, msg: FieldServices + " should not be empty"},
	}
}

func maintenanceOrgRules(o models.MaintenanceOrganization) []rule {
	return []rule{
		notEmpty(FieldName, o.Name),
		notEmpty(FieldLocation, o.Location),
		{field: FieldAircraftTypes, ok: len(o.AircraftTypes) > 0, msg: FieldAircraftTypes + " should not be empty"},
	}
}

func inspectionRules(i models.Inspection) []rule {
	return []rule{
		notEmpty(FieldInspectorID, i.InspectorID),
		optionalNotEmpty(FieldAirportID, i.AirportID),
		optionalNotEmpty(FieldAirlineID, i.AirlineID),
		optionalNotEmpty(FieldANSStationID, i.ANSStationID),
		optionalNotEmpty(FieldMaintenanceOrgID, i.MaintenanceOrgID),
	}
}

func issueRules(i models.Issue) []rule {
	return []rule{
		optionalNotEmpty(FieldAirportID, i.AirportID),
		optionalNotEmpty(FieldRunwayID, i.RunwayID),
		optionalNotEmpty(FieldTaxiwayID, i.TaxiwayID),
		optionalNotEmpty(FieldAirlineID, i.AirlineID),
		optionalNotEmpty(FieldANSStationID, i.ANSStationID),
		optionalNotEmpty(FieldMaintenanceOrgID, i.MaintenanceOrgID),
		notEmpty(FieldInspectionType, i.InspectionType),
		notEmpty(FieldEntity, i.Entity),
		notEmpty(FieldComment, i.Comment),
	}
}
