package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/case-mirror/internal/adapter"
	"github.com/MKhiriev/case-mirror/internal/config"
	"github.com/MKhiriev/case-mirror/internal/handler"
	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/server"
	"github.com/MKhiriev/case-mirror/internal/service"
	"github.com/MKhiriev/case-mirror/internal/store"
	"github.com/MKhiriev/case-mirror/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("case-mirror")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	gateway := adapter.NewHTTPCaseGateway(adapter.HTTPGatewayConfig{
		BaseURI:   cfg.Remote.BaseURI,
		APIUser:   cfg.Remote.APIUser,
		APIKey:    cfg.Remote.APIKey,
		Timeout:   cfg.Remote.Timeout,
		PageLimit: cfg.Remote.PageLimit,
	})

	services := service.NewServices(*storages, gateway, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	syncWorkers := workers.NewWorkers(services, cfg.Workers, log)
	syncWorkers.Start(ctx)
	defer syncWorkers.Stop()

	// blocks until SIGTERM/SIGINT/SIGQUIT, then shuts down gracefully
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
