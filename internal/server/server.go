package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/handler"
	"github.com/MKhiriev/flight-guardian/internal/logger"
)

type server struct {
	httpServer *httpServer
	background []Background
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. Background jobs are started
// by RunServer and stopped on shutdown.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, background ...Background) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{background: background, logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server first so no request starts new work
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	for _, job := range s.background {
		job.Stop()
	}
}

// run serves until ctx is cancelled, then shuts everything down.
func (s *server) run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	for _, job := range s.background {
		job.Run()
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
