package models

import "time"

// Inspection is an oversight visit assigned to an inspector. The subject
// references are optional; at most the ones relevant to the visit are set.
type Inspection struct {
	ID               string     `json:"id"`
	InspectorID      string     `json:"inspectorId"`
	AirportID        *string    `json:"airportId"`
	AirlineID        *string    `json:"airlineId"`
	ANSStationID     *string    `json:"ansStationId"`
	MaintenanceOrgID *string    `json:"maintenanceOrgId"`
	IsComplete       bool       `json:"isComplete"`
	Deadline         *time.Time `json:"deadline"`

	// AirportName and InspectorName are resolved from the referenced
	// records on reads and ignored on writes.
	AirportName   string `json:"airportName,omitempty"`
	InspectorName string `json:"inspectorName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Issue is a finding raised against a facility or organization.
type Issue struct {
	ID               string    `json:"id"`
	AirportID        *string   `json:"airportId"`
	RunwayID         *string   `json:"runwayId"`
	TaxiwayID        *string   `json:"taxiwayId"`
	AirlineID        *string   `json:"airlineId"`
	ANSStationID     *string   `json:"ansStationId"`
	MaintenanceOrgID *string   `json:"maintenanceOrgId"`
	InspectionType   string    `json:"inspectionType"`
	Entity           string    `json:"entity"`
	Comment          string    `json:"comment"`
	IsResolved       bool      `json:"isResolved"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
