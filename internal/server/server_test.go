package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/handler"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBackground struct {
	runs  atomic.Int32
	stops atomic.Int32
}

func (m *mockBackground) Run()  { m.runs.Add(1) }
func (m *mockBackground) Stop() { m.stops.Add(1) }

func newTestHandlers(t *testing.T, cfg config.StructuredConfig) *handler.Handlers {
	t.Helper()

	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := newTestHandlers(t, config.StructuredConfig{Server: config.Server{HTTPAddress: ":0"}})

	s, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	handlers := newTestHandlers(t, config.StructuredConfig{Server: cfg})
	job := &mockBackground{}

	s, err := NewServer(handlers, cfg, logger.Nop(), job)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}

	assert.EqualValues(t, 1, job.runs.Load())
	assert.EqualValues(t, 1, job.stops.Load())
}

func TestHTTPServer_ServesHandler(t *testing.T) {
	handlers := newTestHandlers(t, config.StructuredConfig{Server: config.Server{HTTPAddress: ":0"}})
	srv := newHTTPServer(handlers.HTTP.Init(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
}
