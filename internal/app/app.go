// Package app assembles the catalog server from its layers: storage,
// services, HTTP handlers and the server lifecycle.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/handler"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/server"
	"github.com/MKhiriev/series-catalog/internal/service"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/MKhiriev/series-catalog/models"
)

type App struct {
	storages *store.Storages
	handlers *handler.Handlers
	server   server.Server

	logger *logger.Logger
}

// New connects to the database, applies migrations and wires every layer.
// An unset application version falls back to the build version.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	appCfg := cfg.App
	if appCfg.Version == "" {
		appCfg.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, appCfg, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		storages: storages,
		handlers: handlers,
		server:   srv,
		logger:   logger,
	}, nil
}

// Router returns the fully wired HTTP handler without starting a listener.
func (a *App) Router() http.Handler {
	return a.handlers.HTTP.Init()
}

// Run serves until SIGTERM, SIGINT or SIGQUIT and then closes the database.
func (a *App) Run() {
	a.server.RunServer()
	a.Close()
}

func (a *App) Close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storages")
	}
}
