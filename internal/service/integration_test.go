//go:build integration

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/notify"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/MKhiriev/flight-guardian/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// recordingSink keeps every message instead of delivering it.
type recordingSink struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (s *recordingSink) Send(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *recordingSink) last(t *testing.T) notify.Message {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.messages)
	return s.messages[len(s.messages)-1]
}

func startPostgres(t *testing.T) *store.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("flight_guardian"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := store.NewConnectPostgres(ctx, config.DB{DSN: dsn, MaxOpenConns: 4}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, db.Migrate())
	return db
}

func TestIntegration_CredentialLifecycle(t *testing.T) {
	db := startPostgres(t)
	repos := store.NewRepositories(db, utils.NewUUIDGenerator(), time.Now, logger.Nop())
	sink := &recordingSink{}
	ctx := context.Background()

	var (
		clockMu sync.Mutex
		now     = time.Now()
	)
	clock := func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		clockMu.Lock()
		defer clockMu.Unlock()
		now = now.Add(d)
	}

	auth := NewAuthService(repos.Accounts, repos.Credentials, sink, testAppConfig, clock, logger.Nop())

	// invite
	_, err := auth.SendInvite(ctx, models.InviteRequest{
		Email:       "amina@kcaa.or.ke",
		FirstName:   "Amina",
		LastName:    "Odhiambo",
		PhoneNumber: "+254700000002",
		IDNumber:    "22334455",
		Role:        models.RoleInspector,
	})
	require.NoError(t, err)

	invite := sink.last(t)
	tempPassword, _ := invite.Context["generatedPassword"].(string)
	inviteURL, _ := invite.Context["url"].(string)
	require.NotEmpty(t, tempPassword)

	// login with the temporary password
	result, err := auth.Login(ctx, models.LoginRequest{Email: "amina@kcaa.or.ke", Password: tempPassword})
	require.NoError(t, err)
	claims, err := auth.ParseToken(ctx, result.User.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.AccountID())
	assert.Equal(t, models.RoleInspector, claims.Role)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "amina@kcaa.or.ke", Password: "guess"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// the invitation link sets the first real password, once
	token, email := tokenFromURL(t, inviteURL)
	reset := models.PasswordResetRequest{Email: email, NewPassword: "runway-09L", Token: token}

	_, err = auth.ResetPassword(ctx, reset)
	require.NoError(t, err)
	_, err = auth.ResetPassword(ctx, reset)
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "amina@kcaa.or.ke", Password: tempPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, models.LoginRequest{Email: "amina@kcaa.or.ke", Password: "runway-09L"})
	require.NoError(t, err)

	// forgot-password token past its lifetime
	_, err = auth.RequestPasswordReset(ctx, models.ResetRequestPayload{Email: "amina@kcaa.or.ke"})
	require.NoError(t, err)
	token, email = tokenFromURL(t, sink.last(t).Context["url"].(string))

	advance(testAppConfig.ResetTokenTTL + time.Minute)

	_, err = auth.ResetPassword(ctx, models.PasswordResetRequest{Email: email, NewPassword: "taxiway-B", Token: token})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	// a fresh request supersedes the expired token
	_, err = auth.RequestPasswordReset(ctx, models.ResetRequestPayload{Email: "amina@kcaa.or.ke"})
	require.NoError(t, err)
	token, email = tokenFromURL(t, sink.last(t).Context["url"].(string))

	_, err = auth.ResetPassword(ctx, models.PasswordResetRequest{Email: email, NewPassword: "taxiway-B", Token: token})
	require.NoError(t, err)
	_, err = auth.Login(ctx, models.LoginRequest{Email: "amina@kcaa.or.ke", Password: "taxiway-B"})
	require.NoError(t, err)

	// duplicate invitation
	_, err = auth.SendInvite(ctx, models.InviteRequest{
		Email:       "amina@kcaa.or.ke",
		FirstName:   "Amina",
		LastName:    "Odhiambo",
		PhoneNumber: "+254700000003",
		IDNumber:    "99887766",
		Role:        models.RoleAdmin,
	})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}
