package service

import (
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/notify"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/validators"
	"github.com/MKhiriev/flight-guardian/models"
)

// Services groups every service the transport layer depends on.
type Services struct {
	AuthService AuthService

	UserService                    EntityService[models.Account]
	AirportService                 EntityService[models.Airport]
	RunwayService                  EntityService[models.Runway]
	TaxiwayService                 EntityService[models.Taxiway]
	AirlineService                 EntityService[models.Airline]
	ANSStationService              EntityService[models.ANSStation]
	MaintenanceOrganizationService EntityService[models.MaintenanceOrganization]
	InspectionService              EntityService[models.Inspection]
	IssueService                   EntityService[models.Issue]

	ReportService    ReportService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

// NewServices wires all services over the repositories and the notification
// sink. now is the clock used for reset token expiry.
func NewServices(
	repositories *store.Repositories,
	sink notify.Sink,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	now func() time.Time,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	entities := validators.NewEntityValidator()
	maxPageSize := cfg.App.MaxPageSize

	return &Services{
		AuthService: NewAuthService(repositories.Accounts, repositories.Credentials, sink, cfg.App, now, logger),

		UserService:                    NewEntityService[models.Account]("user", repositories.Accounts, validators.NewAuthValidator(), maxPageSize, logger),
		AirportService:                 NewEntityService("airport", repositories.Airports, entities, maxPageSize, logger),
		RunwayService:                  NewEntityService("runway", repositories.Runways, entities, maxPageSize, logger),
		TaxiwayService:                 NewEntityService("taxiway", repositories.Taxiways, entities, maxPageSize, logger),
		AirlineService:                 NewEntityService("airline", repositories.Airlines, entities, maxPageSize, logger),
		ANSStationService:              NewEntityService("ans station", repositories.ANSStations, entities, maxPageSize, logger),
		MaintenanceOrganizationService: NewEntityService("maintenance organization", repositories.MaintenanceOrganizations, entities, maxPageSize, logger),
		InspectionService:              NewEntityService("inspection", repositories.Inspections, entities, maxPageSize, logger),
		IssueService:                   NewEntityService("issue", repositories.Issues, entities, maxPageSize, logger),

		ReportService:    NewReportService(repositories.Reports, sink, logger),
		DashboardService: NewDashboardService(repositories.Dashboard, logger),
		AppInfoService:   appInfo,
	}, nil
}
