package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/cli"
	"github.com/MKhiriev/go-vault-guard/internal/config"
	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/strength"
	"github.com/MKhiriev/go-vault-guard/internal/workers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// pwcheck owns its flags; settings come from the environment only.
	cfg, err := config.Load(nil)
	if err != nil {
		logger.NewLogger("pwcheck").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewFileLogger("pwcheck", cfg.App.LogFile)

	breach, err := adapter.NewBreachChecker(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create breach checker")
	}

	scheduler := workers.NewScheduler(ctx, log)
	defer scheduler.Shutdown()
	calculator := strength.NewCalculator(strength.LoadDictionaries(cfg.Dictionary, log), scheduler)

	checker := cli.NewChecker(calculator, breach, generator.New(), os.Stdin, os.Stdout, log)
	if err = checker.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pwcheck:", err)
		os.Exit(1)
	}
}
