package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-vault-guard/internal/workers"
)

// NewCompromiseSweep returns a worker that checks every entry of vault
// against the breach API and saves the result. The vault is saved even when
// some checks fail.
func NewCompromiseSweep(vault *Vault) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) error {
		if vault.AccountName() == "" {
			return nil
		}

		checkErr := vault.CheckAllCompromised(ctx)
		if ctx.Err() != nil {
			return errors.Join(checkErr, ctx.Err())
		}
		return errors.Join(checkErr, vault.Save(ctx))
	})
}
