package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/series-catalog/internal/app"
	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("series-catalog")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	application, err := app.New(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	application.Run()
}
