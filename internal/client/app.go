package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/config"
	"github.com/MKhiriev/go-vault-guard/internal/crypto"
	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/internal/icon"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/service"
	"github.com/MKhiriev/go-vault-guard/internal/store"
	"github.com/MKhiriev/go-vault-guard/internal/strength"
	"github.com/MKhiriev/go-vault-guard/internal/totp"
	"github.com/MKhiriev/go-vault-guard/internal/tui"
	"github.com/MKhiriev/go-vault-guard/internal/workers"
	"github.com/MKhiriev/go-vault-guard/models"
)

type app struct {
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) Client {
	return &app{cfg: cfg, buildInfo: buildInfo, logger: logger}
}

// Run wires the vault and blocks in the terminal UI. Leaving the UI or
// receiving SIGINT, SIGTERM or SIGQUIT returns nil.
func (a *app) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	scheduler := workers.NewScheduler(ctx, a.logger.GetChildLogger())
	defer scheduler.Shutdown()

	storages, err := store.NewStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("error closing storages")
		}
	}()

	breach, err := adapter.NewBreachChecker(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create breach checker: %w", err)
	}

	bus := events.NewBus()
	calculator := strength.NewCalculator(strength.LoadDictionaries(a.cfg.Dictionary, a.logger), scheduler)

	services := service.NewServices(service.ServiceDeps{
		Storage:   storages.VaultStorage,
		Cipher:    crypto.NewCipher(),
		Breach:    breach,
		Strength:  calculator,
		Icons:     icon.NewResolver(a.cfg.App.IconDir),
		Bus:       bus,
		Scheduler: scheduler,
		TOTP:      totp.NewGenerator(scheduler, a.cfg.Workers.TOTPInterval),
	}, a.logger)

	a.logger.Info().Msg("starting terminal ui")
	err = tui.New(services, bus, a.buildInfo, a.logger).Run(ctx)
	if err == nil || errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("vault closed")
		return nil
	}
	return err
}
