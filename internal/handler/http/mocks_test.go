package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/MKhiriev/flight-guardian/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	sendInviteFn    func(ctx context.Context, req models.InviteRequest) (models.EmailPayload, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	requestResetFn  func(ctx context.Context, req models.ResetRequestPayload) (models.EmailPayload, error)
	resetPasswordFn func(ctx context.Context, req models.PasswordResetRequest) (models.EmailPayload, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.SessionClaims, error)
}

func (m *mockAuthService) SendInvite(ctx context.Context, req models.InviteRequest) (models.EmailPayload, error) {
	if m.sendInviteFn == nil {
		return models.EmailPayload{Email: req.Email}, nil
	}
	return m.sendInviteFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if m.loginFn == nil {
		return models.LoginResult{}, nil
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, req models.ResetRequestPayload) (models.EmailPayload, error) {
	if m.requestResetFn == nil {
		return models.EmailPayload{Email: req.Email}, nil
	}
	return m.requestResetFn(ctx, req)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.PasswordResetRequest) (models.EmailPayload, error) {
	if m.resetPasswordFn == nil {
		return models.EmailPayload{Email: req.Email}, nil
	}
	return m.resetPasswordFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error) {
	if m.parseTokenFn == nil {
		return models.SessionClaims{}, service.ErrTokenIsInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockEntityService[T any] struct {
	createFn func(ctx context.Context, entity T) (T, error)
	getFn    func(ctx context.Context, id string) (T, error)
	listFn   func(ctx context.Context, query models.ListQuery) (models.ListResult[T], error)
	updateFn func(ctx context.Context, id string, entity T) (T, error)
	deleteFn func(ctx context.Context, id string) (T, error)
}

func (m *mockEntityService[T]) Create(ctx context.Context, entity T) (T, error) {
	if m.createFn == nil {
		return entity, nil
	}
	return m.createFn(ctx, entity)
}

func (m *mockEntityService[T]) Get(ctx context.Context, id string) (T, error) {
	if m.getFn == nil {
		var zero T
		return zero, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockEntityService[T]) List(ctx context.Context, query models.ListQuery) (models.ListResult[T], error) {
	if m.listFn == nil {
		return models.ListResult[T]{Results: []T{}, Page: query.Page, Limit: query.Limit}, nil
	}
	return m.listFn(ctx, query)
}

func (m *mockEntityService[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	if m.updateFn == nil {
		return entity, nil
	}
	return m.updateFn(ctx, id, entity)
}

func (m *mockEntityService[T]) Delete(ctx context.Context, id string) (T, error) {
	if m.deleteFn == nil {
		var zero T
		return zero, nil
	}
	return m.deleteFn(ctx, id)
}

type mockReportService struct {
	inspectionFn func(ctx context.Context, req models.ReportRequest) error
	issueFn      func(ctx context.Context, req models.ReportRequest) error
}

func (m *mockReportService) SendInspectionReport(ctx context.Context, req models.ReportRequest) error {
	if m.inspectionFn == nil {
		return nil
	}
	return m.inspectionFn(ctx, req)
}

func (m *mockReportService) SendIssueReport(ctx context.Context, req models.ReportRequest) error {
	if m.issueFn == nil {
		return nil
	}
	return m.issueFn(ctx, req)
}

type mockDashboardService struct {
	summary         models.DashboardSummary
	usersByRole     models.RoleCounts
	inspectionStats models.InspectionStats
	issueStats      models.IssueStats
	err             error
}

func (m *mockDashboardService) Summary(context.Context) (models.DashboardSummary, error) {
	return m.summary, m.err
}

func (m *mockDashboardService) UsersByRole(context.Context) (models.RoleCounts, error) {
	return m.usersByRole, m.err
}

func (m *mockDashboardService) InspectionStats(context.Context) (models.InspectionStats, error) {
	return m.inspectionStats, m.err
}

func (m *mockDashboardService) IssueStats(context.Context) (models.IssueStats, error) {
	return m.issueStats, m.err
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken     = "valid-session-token"
	testAccountID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
)

var testOrigin = "https://admin.example.com"

// newTestServices returns services backed by default mocks. The auth mock
// accepts testToken as a valid session.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.SessionClaims, error) {
				if tokenString != testToken {
					return models.SessionClaims{}, service.ErrTokenIsInvalid
				}
				claims := models.SessionClaims{Email: "admin@example.com", Role: models.RoleAdmin}
				claims.Subject = testAccountID
				return claims, nil
			},
		},
		UserService:                    &mockEntityService[models.Account]{},
		AirportService:                 &mockEntityService[models.Airport]{},
		RunwayService:                  &mockEntityService[models.Runway]{},
		TaxiwayService:                 &mockEntityService[models.Taxiway]{},
		AirlineService:                 &mockEntityService[models.Airline]{},
		ANSStationService:              &mockEntityService[models.ANSStation]{},
		MaintenanceOrganizationService: &mockEntityService[models.MaintenanceOrganization]{},
		InspectionService:              &mockEntityService[models.Inspection]{},
		IssueService:                   &mockEntityService[models.Issue]{},
		ReportService:                  &mockReportService{},
		DashboardService:               &mockDashboardService{},
		AppInfoService:                 &mockAppInfoService{version: "v1.2.3"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.StructuredConfig{
		App: config.App{CORSAllowedOrigins: []string{testOrigin}},
	}, logger.Nop())
}

// injectNopLogger puts a no-op logger into the request context so that
// handlers called without the trace middleware can log.
func injectNopLogger(r *http.Request) *http.Request {
	nop := zerolog.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

// doRequest serves one request through the full router.
func doRequest(t *testing.T, router http.Handler, method, target string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.Envelope with a raw payload for typed decoding.
type envelope struct {
	Status  int             `json:"Status"`
	Message string          `json:"Message"`
	Payload json.RawMessage `json:"Payload"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func decodePayload[T any](t *testing.T, env envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(env.Payload, &v))
	return v
}
