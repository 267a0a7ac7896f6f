package store

import (
	"time"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/MKhiriev/flight-guardian/models"
)

// Repositories groups every repository built over one [DB] handle.
type Repositories struct {
	Accounts    AccountRepository
	Credentials CredentialRepository

	Airports                 EntityRepository[models.Airport]
	Runways                  EntityRepository[models.Runway]
	Taxiways                 EntityRepository[models.Taxiway]
	Airlines                 EntityRepository[models.Airline]
	ANSStations              EntityRepository[models.ANSStation]
	MaintenanceOrganizations EntityRepository[models.MaintenanceOrganization]
	Inspections              EntityRepository[models.Inspection]
	Issues                   EntityRepository[models.Issue]

	Reports   ReportRepository
	Dashboard DashboardRepository
}

// NewRepositories wires all repositories. ids issues record identifiers and
// now stamps created_at and updated_at.
func NewRepositories(db *DB, ids utils.IDGenerator, now func() time.Time, log *logger.Logger) *Repositories {
	return &Repositories{
		Accounts:    NewAccountRepository(db, ids, now, log),
		Credentials: NewCredentialRepository(db, now, log),

		Airports:                 NewEntityRepository(db, airportsTable, ids, now, log),
		Runways:                  NewEntityRepository(db, runwaysTable, ids, now, log),
		Taxiways:                 NewEntityRepository(db, taxiwaysTable, ids, now, log),
		Airlines:                 NewEntityRepository(db, airlinesTable, ids, now, log),
		ANSStations:              NewEntityRepository(db, ansStationsTable, ids, now, log),
		MaintenanceOrganizations: NewEntityRepository(db, maintenanceOrganizationsTable, ids, now, log),
		Inspections:              NewEntityRepository(db, inspectionsTable, ids, now, log),
		Issues:                   NewEntityRepository(db, issuesTable, ids, now, log),

		Reports:   NewReportRepository(db, log),
		Dashboard: NewDashboardRepository(db, log),
	}
}
