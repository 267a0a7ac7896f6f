// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/robfig/cron/v3"
)

// TokenSweeper periodically clears reset tokens that expired more than one
// token lifetime ago. Expired tokens are already rejected on use; the sweep
// only keeps stale hashes from lingering in storage.
type TokenSweeper struct {
	cron        *cron.Cron
	credentials store.CredentialRepository

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

// NewTokenSweeper schedules the sweep with a standard cron expression or a
// descriptor such as "@every 15m".
func NewTokenSweeper(credentials store.CredentialRepository, schedule string, ttl time.Duration, now func() time.Time, logger *logger.Logger) (*TokenSweeper, error) {
	s := &TokenSweeper{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		credentials: credentials,
		ttl:         ttl,
		now:         now,
		logger:      logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *TokenSweeper) Run() {
	s.logger.Info().Msg("token sweeper started")
	s.cron.Start()
}

func (s *TokenSweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("token sweeper stopped")
}

// Sweep clears every reset token whose expiry lies before now minus the
// token lifetime and returns the number of credentials touched.
func (s *TokenSweeper) Sweep(ctx context.Context) (int64, error) {
	before := s.now().Add(-s.ttl).UnixMilli()

	cleared, err := s.credentials.ClearExpiredResetTokens(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("clearing expired reset tokens: %w", err)
	}

	return cleared, nil
}

func (s *TokenSweeper) run() {
	ctx := s.logger.WithContext(context.Background())

	cleared, err := s.Sweep(ctx)
	if err != nil {
		s.logger.Err(err).Msg("token sweep failed")
		return
	}

	s.logger.Debug().Int64("cleared", cleared).Msg("token sweep finished")
}
