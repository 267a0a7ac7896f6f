package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/handler"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/notify"
	"github.com/MKhiriev/flight-guardian/internal/server"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/MKhiriev/flight-guardian/internal/workers"
	"github.com/MKhiriev/flight-guardian/models"
)

// connectTimeout bounds the initial database ping.
const connectTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("flight-guardian-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, utils.NewUUIDGenerator(), time.Now, log)

	sink, err := notify.NewSink(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notification sink")
	}

	services, err := service.NewServices(repositories, sink, *cfg, buildInfo, time.Now, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs, err := workers.NewWorkers(repositories, *cfg, time.Now, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, jobs)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
