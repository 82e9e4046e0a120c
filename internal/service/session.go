package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-vault-guard/internal/crypto"
	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/store"
	"github.com/MKhiriev/go-vault-guard/internal/utils"
	"github.com/MKhiriev/go-vault-guard/models"
)

type accountSession struct {
	storage   store.VaultStorage
	cipher    crypto.Cipher
	publisher events.Publisher
	ids       *utils.UUIDGenerator

	mu     sync.Mutex
	state  models.SessionState
	id     string
	logger *logger.Logger
	base   *logger.Logger
}

// NewAccountSession returns an AccountSession in the LOGGED_OUT state.
func NewAccountSession(storage store.VaultStorage, cipher crypto.Cipher, publisher events.Publisher, log *logger.Logger) AccountSession {
	return &accountSession{
		storage:   storage,
		cipher:    cipher,
		publisher: publisher,
		ids:       utils.NewUUIDGenerator(),
		state:     models.LoggedOut,
		logger:    log,
		base:      log,
	}
}

func (s *accountSession) Login(ctx context.Context, name, pass string) (models.SessionState, models.VaultDocument, error) {
	content, ok, err := s.storage.Read(ctx, name)
	if err != nil {
		return s.fail(fmt.Errorf("failed to read vault: %w", err))
	}
	if !ok {
		s.log().Info().Msg("login failed: no such account")
		return s.finish(models.AuthFailed), models.VaultDocument{}, nil
	}

	plain, ok, err := s.cipher.Decrypt(content, pass)
	if err != nil {
		return s.fail(fmt.Errorf("failed to decrypt vault: %w", err))
	}
	if !ok {
		s.log().Info().Msg("login failed: wrong passphrase")
		return s.finish(models.AuthFailed), models.VaultDocument{}, nil
	}

	doc, err := models.UnmarshalVaultDocument(plain)
	if err != nil {
		return s.fail(fmt.Errorf("%w: %w", ErrCorruptDocument, err))
	}

	s.startSession()
	s.log().Info().Int("entries", len(doc.Entries)).Msg("logged in")
	return s.finish(models.LoggedIn), doc, nil
}

func (s *accountSession) Signup(ctx context.Context, name, pass string) (models.SessionState, models.VaultDocument, error) {
	created, err := s.storage.Create(ctx, name)
	if err != nil {
		return s.fail(fmt.Errorf("failed to create vault: %w", err))
	}
	if !created {
		s.log().Info().Msg("signup failed: name taken")
		return s.finish(models.NameTaken), models.VaultDocument{}, nil
	}

	doc := models.NewVaultDocument(name, pass)
	if err := s.writeDocument(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, name); delErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to clean up vault: %w", delErr))
		}
		return s.fail(err)
	}

	s.startSession()
	s.log().Info().Msg("signed up")
	return s.finish(models.LoggedIn), doc, nil
}

func (s *accountSession) Logout() models.SessionState {
	s.mu.Lock()
	s.id = ""
	s.logger = s.base
	s.mu.Unlock()

	return s.finish(models.LoggedOut)
}

func (s *accountSession) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *accountSession) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *accountSession) writeDocument(ctx context.Context, doc models.VaultDocument) error {
	body, err := doc.Marshal()
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(body, doc.AccountPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptionFailure, err)
	}

	if err := s.storage.Write(ctx, encrypted, doc.AccountName); err != nil {
		return fmt.Errorf("failed to write vault: %w", err)
	}
	return nil
}

// startSession tags the session logger with a fresh correlation ID.
func (s *accountSession) startSession() {
	s.mu.Lock()
	s.id = s.ids.Generate()
	s.logger = s.base.WithSession(s.id)
	s.mu.Unlock()
}

func (s *accountSession) fail(err error) (models.SessionState, models.VaultDocument, error) {
	s.log().Err(err).Msg("session transition failed")
	return s.finish(models.SystemError), models.VaultDocument{}, err
}

// finish records outcome as the durable state when it is one and publishes it.
func (s *accountSession) finish(outcome models.SessionState) models.SessionState {
	if outcome.IsDurable() {
		s.mu.Lock()
		s.state = outcome
		s.mu.Unlock()
	}

	s.publisher.Publish(events.SessionStateChanged{State: outcome})
	return outcome
}

func (s *accountSession) log() *logger.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logger
}
