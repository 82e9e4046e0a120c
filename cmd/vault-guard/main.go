package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-vault-guard/internal/client"
	"github.com/MKhiriev/go-vault-guard/internal/config"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("vault-guard").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("vault-guard", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	app := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "vault-guard:", err)
		os.Exit(1)
	}
}
