package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/store"
	"github.com/MKhiriev/go-vault-guard/internal/validators"
	"github.com/MKhiriev/go-vault-guard/models"
)

type accountSettings struct {
	vault     *Vault
	session   AccountSession
	storage   store.VaultStorage
	validator validators.Validator
	logger    *logger.Logger
}

// NewAccountSettings returns the settings of the account open in vault.
func NewAccountSettings(vault *Vault, session AccountSession, storage store.VaultStorage, log *logger.Logger) AccountSettings {
	return &accountSettings{
		vault:     vault,
		session:   session,
		storage:   storage,
		validator: validators.NewVaultValidator(),
		logger:    log,
	}
}

// Rename saves the vault under newName before the old record is deleted, so
// a failed save leaves the old record intact.
func (s *accountSettings) Rename(ctx context.Context, newName, newPassword string) error {
	name, password := s.vault.account()
	if name == "" {
		return ErrNotLoggedIn
	}
	if newPassword == "" {
		newPassword = password
	}

	if newName == name {
		s.vault.setAccount(name, newPassword)
		if err := s.vault.Save(ctx); err != nil {
			s.vault.setAccount(name, password)
			return err
		}
		return nil
	}

	creds := models.Credentials{AccountName: newName, Passphrase: newPassword}
	if err := s.validator.Validate(ctx, creds); err != nil {
		return err
	}

	created, err := s.storage.Create(ctx, newName)
	if err != nil {
		return fmt.Errorf("failed to rename account: %w", err)
	}
	if !created {
		return ErrNameTaken
	}

	s.vault.setAccount(newName, newPassword)
	if err := s.vault.Save(ctx); err != nil {
		s.vault.setAccount(name, password)
		if delErr := s.storage.Delete(ctx, newName); delErr != nil {
			err = errors.Join(err, delErr)
		}
		return err
	}

	if err := s.storage.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to remove old account record: %w", err)
	}

	s.logger.Info().Msg("account renamed")
	return nil
}

func (s *accountSettings) ChangePassword(ctx context.Context, current, next string) error {
	name, password := s.vault.account()
	if name == "" {
		return ErrNotLoggedIn
	}
	if current != password {
		return ErrWrongPassphrase
	}

	creds := models.Credentials{AccountName: name, Passphrase: next}
	if err := s.validator.Validate(ctx, creds, validators.FieldPassphrase); err != nil {
		return err
	}

	s.vault.setAccount(name, next)
	if err := s.vault.Save(ctx); err != nil {
		s.vault.setAccount(name, password)
		return err
	}

	s.logger.Info().Msg("account password changed")
	return nil
}

func (s *accountSettings) DeleteAccount(ctx context.Context) error {
	name, _ := s.vault.account()
	if name == "" {
		return ErrNotLoggedIn
	}

	s.session.Logout()
	s.vault.Close()

	if err := s.storage.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info().Msg("account deleted")
	return nil
}
