package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/client"
	"github.com/MKhiriev/go-career-path/internal/config"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/service"
	"github.com/MKhiriev/go-career-path/internal/store"
	"github.com/MKhiriev/go-career-path/internal/tui"
	"github.com/MKhiriev/go-career-path/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewClientLogger("career-path-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	generator, err := adapter.NewGenerator(context.Background(), cfg.Generator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create generator")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, generator, cfg.App, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
