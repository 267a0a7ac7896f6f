package workers

import (
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every scheduled job of the server.
func NewWorkers(repositories *store.Repositories, cfg config.StructuredConfig, now func() time.Time, logger *logger.Logger) (*Workers, error) {
	sweeper, err := NewTokenSweeper(repositories.Credentials, cfg.Workers.TokenSweepSchedule, cfg.App.ResetTokenTTL, now, logger)
	if err != nil {
		return nil, fmt.Errorf("create token sweeper: %w", err)
	}

	return &Workers{workers: []Worker{sweeper}}, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
