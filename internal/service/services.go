package service

import (
	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/crypto"
	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/icon"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/store"
	"github.com/MKhiriev/go-vault-guard/internal/strength"
	"github.com/MKhiriev/go-vault-guard/internal/totp"
	"github.com/MKhiriev/go-vault-guard/internal/validators"
	"github.com/MKhiriev/go-vault-guard/internal/workers"
)

type Services struct {
	Session   AccountSession
	Vault     *Vault
	Settings  AccountSettings
	Strength  *strength.Calculator
	Generator *generator.Generator
	TOTP      *totp.Generator
	Validator validators.Validator
	Sweep     *workers.Workers
}

// ServiceDeps are the infrastructure pieces the composition root builds
// before the services.
type ServiceDeps struct {
	Storage   store.VaultStorage
	Cipher    crypto.Cipher
	Breach    adapter.BreachChecker
	Strength  *strength.Calculator
	Icons     icon.Resolver
	Bus       *events.Bus
	Scheduler *workers.Scheduler
	TOTP      *totp.Generator
}

func NewServices(deps ServiceDeps, logger *logger.Logger) *Services {
	validator := validators.NewVaultValidator()

	session := NewAccountSession(deps.Storage, deps.Cipher, deps.Bus, logger.GetChildLogger())
	vault := NewVault(VaultDeps{
		Storage:   deps.Storage,
		Cipher:    deps.Cipher,
		Breach:    deps.Breach,
		Scorer:    deps.Strength,
		Icons:     deps.Icons,
		Publisher: deps.Bus,
		Scheduler: deps.Scheduler,
		Validator: validator,
	}, logger.GetChildLogger())

	return &Services{
		Session:   session,
		Vault:     vault,
		Settings:  NewAccountSettings(vault, session, deps.Storage, logger.GetChildLogger()),
		Strength:  deps.Strength,
		Generator: generator.New(),
		TOTP:      deps.TOTP,
		Validator: validator,
		Sweep:     workers.NewWorkers(NewCompromiseSweep(vault)),
	}
}
