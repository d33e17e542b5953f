package handler

import (
	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/handler/http"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, logger),
	}, nil
}
