package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/mock"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/validators"
	"github.com/MKhiriev/flight-guardian/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var validAirport = models.Airport{
	Name:            "Jomo Kenyatta International",
	Email:           "ops@jkia.example.com",
	PhoneNumber:     "+254 20 6822111",
	PostalCode:      "00501",
	PostalAddress:   "P.O. Box 19001",
	PhysicalAddress: "Embakasi, Nairobi",
}

func newTestAirportSvc(t *testing.T, maxPageSize int) (EntityService[models.Airport], *mock.MockEntityRepository[models.Airport]) {
	t.Helper()
	repo := mock.NewMockEntityRepository[models.Airport](gomock.NewController(t))
	return NewEntityService("airport", repo, validators.NewEntityValidator(), maxPageSize, logger.Nop()), repo
}

// ─────────────────────────────────────────────
// Create / Update
// ─────────────────────────────────────────────

func TestEntityService_Create_Success(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	stored := validAirport
	stored.ID = "ap-1"
	repo.EXPECT().Create(ctx, validAirport).Return(stored, nil)

	got, err := svc.Create(ctx, validAirport)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestEntityService_Create_InvalidEntity_RepositoryNotCalled(t *testing.T) {
	svc, _ := newTestAirportSvc(t, 0)

	invalid := validAirport
	invalid.Email = "nope"
	invalid.Name = " "

	_, err := svc.Create(context.Background(), invalid)

	require.ErrorIs(t, err, validators.ErrValidation)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"name should not be empty", "email must be an email"}, vErr.Messages)
}

func TestEntityService_Create_DuplicateKey(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, validAirport).Return(models.Airport{}, store.ErrDuplicateKey)

	_, err := svc.Create(ctx, validAirport)

	require.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestEntityService_Update_NotFound(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, "missing", validAirport).Return(models.Airport{}, store.ErrEntityNotFound)

	_, err := svc.Update(ctx, "missing", validAirport)

	require.ErrorIs(t, err, store.ErrEntityNotFound)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestEntityService_List_PassesQueryThrough(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	query := models.ListQuery{Page: 3, Limit: 500, Search: "nairobi", Filters: map[string]string{"name": "jomo"}}
	want := models.ListResult[models.Airport]{Results: []models.Airport{}, Total: 0, Page: 3, Limit: 500}
	repo.EXPECT().List(ctx, query).Return(want, nil)

	got, err := svc.List(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEntityService_List_AppliesPagePolicy(t *testing.T) {
	tests := []struct {
		name        string
		maxPageSize int
		in          models.ListQuery
		wantPage    int
		wantLimit   int
	}{
		{name: "zero values default", in: models.ListQuery{}, wantPage: 1, wantLimit: 10},
		{name: "negative values default", in: models.ListQuery{Page: -2, Limit: -5}, wantPage: 1, wantLimit: 10},
		{name: "cap applied", maxPageSize: 50, in: models.ListQuery{Page: 2, Limit: 80}, wantPage: 2, wantLimit: 50},
		{name: "under cap untouched", maxPageSize: 50, in: models.ListQuery{Page: 2, Limit: 20}, wantPage: 2, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAirportSvc(t, tt.maxPageSize)
			ctx := context.Background()

			repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, q models.ListQuery) (models.ListResult[models.Airport], error) {
					assert.Equal(t, tt.wantPage, q.Page)
					assert.Equal(t, tt.wantLimit, q.Limit)
					return models.ListResult[models.Airport]{Page: q.Page, Limit: q.Limit}, nil
				},
			)

			got, err := svc.List(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, got.Limit, "effective limit is echoed")
		})
	}
}

func TestEntityService_List_InvalidFilter(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	repo.EXPECT().List(ctx, gomock.Any()).Return(models.ListResult[models.Airport]{}, store.ErrInvalidFilter)

	_, err := svc.List(ctx, models.ListQuery{Page: 1, Limit: 10})

	require.ErrorIs(t, err, store.ErrInvalidFilter)
}

// ─────────────────────────────────────────────
// Get / Delete
// ─────────────────────────────────────────────

func TestEntityService_Get_Delegates(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "ap-1").Return(models.Airport{ID: "ap-1"}, nil)

	got, err := svc.Get(ctx, "ap-1")

	require.NoError(t, err)
	assert.Equal(t, "ap-1", got.ID)
}

func TestEntityService_Delete_ReturnsRemovedRecord(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "ap-1").Return(models.Airport{ID: "ap-1", Name: "JKIA"}, nil)

	got, err := svc.Delete(ctx, "ap-1")

	require.NoError(t, err)
	assert.Equal(t, "JKIA", got.Name)
}

func TestEntityService_Delete_Error(t *testing.T) {
	svc, repo := newTestAirportSvc(t, 0)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "ap-1").Return(models.Airport{}, errors.New("boom"))

	_, err := svc.Delete(ctx, "ap-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "airport deletion ended with error")
}

func TestEntityService_UserUpdate_UsesAccountRules(t *testing.T) {
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	svc := NewEntityService[models.Account]("user", repo, validators.NewAuthValidator(), 0, logger.Nop())

	_, err := svc.Update(context.Background(), "acc-1", models.Account{Email: "jane@example.com", Role: "Pilot"})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "role must be one of Inspector, Supervisor, Admin")
}
