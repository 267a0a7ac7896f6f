package store

import "github.com/MKhiriev/flight-guardian/models"

// Request keys shared by several tables.
const (
	keyStartDate = "startDate"
	keyEndDate   = "endDate"
)

var accountsTable = Table[models.Account]{
	Name:  "accounts",
	Alias: "u",
	Columns: []string{
		"u.id", "u.email", "u.first_name", "u.last_name", "u.phone_number",
		"u.id_number", "u.role", "u.is_active", "u.created_at", "u.updated_at",
	},
	Writable: []string{"email", "first_name", "last_name", "phone_number", "id_number", "role", "is_active"},
	Values: func(a models.Account) []any {
		return []any{a.Email, a.FirstName, a.LastName, a.PhoneNumber, a.IDNumber, string(a.Role), a.IsActive}
	},
	Filters: map[string]Filter{
		"firstName":   {Column: "u.first_name", Kind: FilterSubstring},
		"lastName":    {Column: "u.last_name", Kind: FilterSubstring},
		"idNumber":    {Column: "u.id_number", Kind: FilterSubstring},
		"email":       {Column: "u.email", Kind: FilterSubstring},
		"phoneNumber": {Column: "u.phone_number", Kind: FilterSubstring},
		"role":        {Column: "u.role", Kind: FilterExact},
		"isActive":    {Column: "u.is_active", Kind: FilterBool},
	},
	Search:      []string{"u.first_name", "u.last_name", "u.email", "u.id_number", "u.phone_number"},
	DefaultSort: "u.created_at DESC",
	Scan:        scanAccount,
	NotFound:    ErrAccountNotFound,
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &a.PhoneNumber,
		&a.IDNumber, &a.Role, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

var airportsTable = Table[models.Airport]{
	Name:  "airports",
	Alias: "ap",
	Columns: []string{
		"ap.id", "ap.name", "ap.email", "ap.phone_number", "ap.postal_code",
		"ap.postal_address", "ap.physical_address", "ap.created_at", "ap.updated_at",
	},
	Writable: []string{"name", "email", "phone_number", "postal_code", "postal_address", "physical_address"},
	Values: func(a models.Airport) []any {
		return []any{a.Name, a.Email, a.PhoneNumber, a.PostalCode, a.PostalAddress, a.PhysicalAddress}
	},
	Filters: map[string]Filter{
		"name":            {Column: "ap.name", Kind: FilterSubstring},
		"email":           {Column: "ap.email", Kind: FilterSubstring},
		"phoneNumber":     {Column: "ap.phone_number", Kind: FilterSubstring},
		"postalCode":      {Column: "ap.postal_code", Kind: FilterSubstring},
		"postalAddress":   {Column: "ap.postal_address", Kind: FilterSubstring},
		"physicalAddress": {Column: "ap.physical_address", Kind: FilterSubstring},
	},
	Search: []string{
		"ap.name", "ap.email", "ap.phone_number", "ap.postal_code", "ap.postal_address", "ap.physical_address",
	},
	DefaultSort: "ap.created_at DESC",
	Scan: func(row rowScanner) (models.Airport, error) {
		var a models.Airport
		err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PhoneNumber, &a.PostalCode,
			&a.PostalAddress, &a.PhysicalAddress, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	},
	NotFound: ErrEntityNotFound,
}

// surfaceTable describes runways and taxiways, which share one layout.
func surfaceTable(name, alias string) Table[models.Runway] {
	col := func(c string) string { return alias + "." + c }

	return Table[models.Runway]{
		Name:  name,
		Alias: alias,
		Columns: []string{
			col("id"), col("airport_id"), col("number"), col("width"), col("length"),
			col("surface_type"), col("in_service"), col("created_at"), col("updated_at"),
		},
		Writable: []string{"airport_id", "number", "width", "length", "surface_type", "in_service"},
		Values: func(r models.Runway) []any {
			return []any{r.AirportID, r.Number, r.Width, r.Length, r.SurfaceType, r.InService}
		},
		Filters: map[string]Filter{
			"airportId":   {Column: col("airport_id"), Kind: FilterExact},
			"number":      {Column: col("number"), Kind: FilterSubstring},
			"surfaceType": {Column: col("surface_type"), Kind: FilterSubstring},
			"inService":   {Column: col("in_service"), Kind: FilterBool},
		},
		Search:      []string{col("number"), col("surface_type")},
		DefaultSort: col("created_at") + " DESC",
		Scan: func(row rowScanner) (models.Runway, error) {
			var r models.Runway
			err := row.Scan(&r.ID, &r.AirportID, &r.Number, &r.Width, &r.Length,
				&r.SurfaceType, &r.InService, &r.CreatedAt, &r.UpdatedAt)
			return r, err
		},
		NotFound: ErrEntityNotFound,
	}
}

var runwaysTable = surfaceTable("runways", "rw")

var taxiwaysTable = func() Table[models.Taxiway] {
	t := surfaceTable("taxiways", "tw")
	return Table[models.Taxiway]{
		Name:        t.Name,
		Alias:       t.Alias,
		Columns:     t.Columns,
		Writable:    t.Writable,
		Values:      func(tw models.Taxiway) []any { return t.Values(models.Runway(tw)) },
		Filters:     t.Filters,
		Search:      t.Search,
		DefaultSort: t.DefaultSort,
		Scan: func(row rowScanner) (models.Taxiway, error) {
			r, err := t.Scan(row)
			return models.Taxiway(r), err
		},
		NotFound: t.NotFound,
	}
}()

var airlinesTable = Table[models.Airline]{
	Name:  "airlines",
	Alias: "al",
	Columns: []string{
		"al.id", "al.name", "al.number_of_aircraft", "al.routes_flown", "al.total_passengers",
		"al.created_at", "al.updated_at",
	},
	Writable: []string{"name", "number_of_aircraft", "routes_flown", "total_passengers"},
	Values: func(a models.Airline) []any {
		return []any{a.Name, a.NumberOfAircraft, a.RoutesFlown, a.TotalPassengers}
	},
	Filters: map[string]Filter{
		"name": {Column: "al.name", Kind: FilterSubstring},
	},
	Search:      []string{"al.name"},
	DefaultSort: "al.created_at DESC",
	Scan: func(row rowScanner) (models.Airline, error) {
		var a models.Airline
		err := row.Scan(&a.ID, &a.Name, &a.NumberOfAircraft, &a.RoutesFlown, &a.TotalPassengers,
			&a.CreatedAt, &a.UpdatedAt)
		return a, err
	},
	NotFound: ErrEntityNotFound,
}

var ansStationsTable = Table[models.ANSStation]{
	Name:     "ans_stations",
	Alias:    "ans",
	Columns:  []string{"ans.id", "ans.name", "ans.services", "ans.created_at", "ans.updated_at"},
	Writable: []string{"name", "services"},
	Values: func(s models.ANSStation) []any {
		return []any{s.Name, s.Services}
	},
	Filters: map[string]Filter{
		"name": {Column: "ans.name", Kind: FilterSubstring},
	},
	Search:      []string{"ans.name"},
	DefaultSort: "ans.created_at DESC",
	Scan: func(row rowScanner) (models.ANSStation, error) {
		var s models.ANSStation
		err := row.Scan(&s.ID, &s.Name, &s.Services, &s.CreatedAt, &s.UpdatedAt)
		return s, err
	},
	NotFound: ErrEntityNotFound,
}

var maintenanceOrganizationsTable = Table[models.MaintenanceOrganization]{
	Name:  "maintenance_organizations",
	Alias: "mo",
	Columns: []string{
		"mo.id", "mo.name", "mo.location", "mo.aircraft_types", "mo.created_at", "mo.updated_at",
	},
	Writable: []string{"name", "location", "aircraft_types"},
	Values: func(o models.MaintenanceOrganization) []any {
		return []any{o.Name, o.Location, o.AircraftTypes}
	},
	Filters: map[string]Filter{
		"name":     {Column: "mo.name", Kind: FilterSubstring},
		"location": {Column: "mo.location", Kind: FilterSubstring},
	},
	Search:      []string{"mo.name", "mo.location"},
	DefaultSort: "mo.created_at DESC",
	Scan: func(row rowScanner) (models.MaintenanceOrganization, error) {
		var o models.MaintenanceOrganization
		err := row.Scan(&o.ID, &o.Name, &o.Location, &o.AircraftTypes, &o.CreatedAt, &o.UpdatedAt)
		return o, err
	},
	NotFound: ErrEntityNotFound,
}

var inspectionsTable = Table[models.Inspection]{
	Name:  "inspections",
	Alias: "i",
	Joins: []string{
		"LEFT JOIN airports ap ON ap.id = i.airport_id",
		"LEFT JOIN accounts u ON u.id = i.inspector_id",
	},
	Columns: []string{
		"i.id", "i.inspector_id", "i.airport_id", "i.airline_id", "i.ans_station_id",
		"i.maintenance_org_id", "i.is_complete", "i.deadline",
		"COALESCE(ap.name, '')", "COALESCE(u.first_name || ' ' || u.last_name, '')",
		"i.created_at", "i.updated_at",
	},
	Writable: []string{
		"inspector_id", "airport_id", "airline_id", "ans_station_id", "maintenance_org_id", "is_complete", "deadline",
	},
	Values: func(i models.Inspection) []any {
		return []any{i.InspectorID, i.AirportID, i.AirlineID, i.ANSStationID, i.MaintenanceOrgID, i.IsComplete, i.Deadline}
	},
	Filters: map[string]Filter{
		"inspectorId":      {Column: "i.inspector_id", Kind: FilterExact},
		"airportId":        {Column: "i.airport_id", Kind: FilterExact},
		"airlineId":        {Column: "i.airline_id", Kind: FilterExact},
		"ansStationId":     {Column: "i.ans_station_id", Kind: FilterExact},
		"maintenanceOrgId": {Column: "i.maintenance_org_id", Kind: FilterExact},
		"isComplete":       {Column: "i.is_complete", Kind: FilterBool},
		keyStartDate:       {Column: "i.created_at", Kind: FilterRangeFrom},
		keyEndDate:         {Column: "i.created_at", Kind: FilterRangeTo},
	},
	Search: []string{
		"ap.name", "ap.email", "ap.phone_number",
		"u.email", "u.first_name", "u.last_name", "u.phone_number", "u.id_number",
	},
	DefaultSort: "i.created_at DESC",
	Scan: func(row rowScanner) (models.Inspection, error) {
		var i models.Inspection
		err := row.Scan(&i.ID, &i.InspectorID, &i.AirportID, &i.AirlineID, &i.ANSStationID,
			&i.MaintenanceOrgID, &i.IsComplete, &i.Deadline, &i.AirportName, &i.InspectorName,
			&i.CreatedAt, &i.UpdatedAt)
		return i, err
	},
	NotFound: ErrEntityNotFound,
}

var issuesTable = Table[models.Issue]{
	Name:  "issues",
	Alias: "iss",
	Columns: []string{
		"iss.id", "iss.airport_id", "iss.runway_id", "iss.taxiway_id", "iss.airline_id",
		"iss.ans_station_id", "iss.maintenance_org_id", "iss.inspection_type", "iss.entity",
		"iss.comment", "iss.is_resolved", "iss.created_at", "iss.updated_at",
	},
	Writable: []string{
		"airport_id", "runway_id", "taxiway_id", "airline_id", "ans_station_id", "maintenance_org_id",
		"inspection_type", "entity", "comment", "is_resolved",
	},
	Values: func(i models.Issue) []any {
		return []any{i.AirportID, i.RunwayID, i.TaxiwayID, i.AirlineID, i.ANSStationID, i.MaintenanceOrgID,
			i.InspectionType, i.Entity, i.Comment, i.IsResolved}
	},
	Filters: map[string]Filter{
		"airportId":        {Column: "iss.airport_id", Kind: FilterExact},
		"runwayId":         {Column: "iss.runway_id", Kind: FilterExact},
		"taxiwayId":        {Column: "iss.taxiway_id", Kind: FilterExact},
		"airlineId":        {Column: "iss.airline_id", Kind: FilterExact},
		"ansStationId":     {Column: "iss.ans_station_id", Kind: FilterExact},
		"maintenanceOrgId": {Column: "iss.maintenance_org_id", Kind: FilterExact},
		"inspectionType":   {Column: "iss.inspection_type", Kind: FilterSubstring},
		"entity":           {Column: "iss.entity", Kind: FilterSubstring},
		"isResolved":       {Column: "iss.is_resolved", Kind: FilterBool},
		keyStartDate:       {Column: "iss.created_at", Kind: FilterRangeFrom},
		keyEndDate:         {Column: "iss.created_at", Kind: FilterRangeTo},
	},
	Search:      []string{"iss.inspection_type", "iss.entity", "iss.comment"},
	DefaultSort: "iss.created_at DESC",
	Scan: func(row rowScanner) (models.Issue, error) {
		var i models.Issue
		err := row.Scan(&i.ID, &i.AirportID, &i.RunwayID, &i.TaxiwayID, &i.AirlineID,
			&i.ANSStationID, &i.MaintenanceOrgID, &i.InspectionType, &i.Entity,
			&i.Comment, &i.IsResolved, &i.CreatedAt, &i.UpdatedAt)
		return i, err
	},
	NotFound: ErrEntityNotFound,
}
