// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/crypto"
	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/internal/fuzzy"
	"github.com/MKhiriev/go-vault-guard/internal/icon"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/store"
	"github.com/MKhiriev/go-vault-guard/internal/utils"
	"github.com/MKhiriev/go-vault-guard/internal/validators"
	"github.com/MKhiriev/go-vault-guard/internal/workers"
	"github.com/MKhiriev/go-vault-guard/models"
)

// SearchThreshold is the minimum fuzzy score of a search hit.
const SearchThreshold = 85

// VaultDeps are the collaborators of a Vault.
type VaultDeps struct {
	Storage   store.VaultStorage
	Cipher    crypto.Cipher
	Breach    adapter.BreachChecker
	Scorer    Scorer
	Icons     icon.Resolver
	Publisher events.Publisher
	Scheduler *workers.Scheduler
	Validator validators.Validator
}

// Vault is the in-memory model of the open account. All methods are safe
// for concurrent use; returned entries are copies.
type Vault struct {
	deps   VaultDeps
	logger *logger.Logger

	mu              sync.RWMutex
	accountName     string
	accountPassword string
	entries         []models.Entry
}

// NewVault returns an empty vault. Open loads a document into it.
func NewVault(deps VaultDeps, log *logger.Logger) *Vault {
	if deps.Validator == nil {
		deps.Validator = validators.NewVaultValidator()
	}
	return &Vault{deps: deps, logger: log}
}

// Open replaces the vault contents with doc and resolves entry icons.
func (v *Vault) Open(doc models.VaultDocument) {
	entries := slices.Clone(doc.Entries)
	for i := range entries {
		v.resolveIcon(&entries[i])
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.accountName = doc.AccountName
	v.accountPassword = doc.AccountPassword
	v.entries = entries
}

// Close forgets the open account.
func (v *Vault) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.accountName = ""
	v.accountPassword = ""
	v.entries = nil
}

// AccountName returns the name of the open account.
func (v *Vault) AccountName() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.accountName
}

// Document returns a snapshot of the vault as a document.
func (v *Vault) Document() models.VaultDocument {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return models.VaultDocument{
		AccountName:     v.accountName,
		AccountPassword: v.accountPassword,
		Entries:         slices.Clone(v.entries),
	}
}

// SortedEntries returns the entries ordered by lowercase title. Entries
// with equal titles keep their stored order.
func (v *Vault) SortedEntries() []models.Entry {
	v.mu.RLock()
	entries := slices.Clone(v.entries)
	v.mu.RUnlock()

	return sortEntries(entries)
}

func sortEntries(entries []models.Entry) []models.Entry {
	slices.SortStableFunc(entries, func(a, b models.Entry) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
	return entries
}

// Favourites returns the sorted entries marked as favourite.
func (v *Vault) Favourites() []models.Entry {
	return v.filter(models.ScopeFavourites)
}

// Compromised returns the sorted entries found in a breach.
func (v *Vault) Compromised() []models.Entry {
	return v.filter(models.ScopeCompromised)
}

func (v *Vault) filter(scope models.SearchScope) []models.Entry {
	sorted := v.SortedEntries()
	if scope == models.ScopeAll {
		return sorted
	}

	out := make([]models.Entry, 0, len(sorted))
	for _, e := range sorted {
		switch {
		case scope == models.ScopeFavourites && e.Favourite,
			scope == models.ScopeCompromised && e.Compromised:
			out = append(out, e)
		}
	}
	return out
}

// Search returns the entries of scope whose website or title scores at least
// SearchThreshold against query, best score first. A blank query returns
// the whole scope.
func (v *Vault) Search(query string, scope models.SearchScope) []models.Entry {
	candidates := v.filter(scope)
	if strings.TrimSpace(query) == "" {
		return candidates
	}

	websites := make([]string, len(candidates))
	titles := make([]string, len(candidates))
	for i, e := range candidates {
		websites[i] = e.Website
		titles[i] = e.Title
	}

	best := make(map[int]int)
	var order []int
	for _, matches := range [][]fuzzy.Match{
		fuzzy.ExtractAll(query, websites),
		fuzzy.ExtractAll(query, titles),
	} {
		for _, m := range matches {
			if m.Score < SearchThreshold {
				break
			}
			prev, seen := best[m.Index]
			if !seen {
				order = append(order, m.Index)
			}
			if !seen || m.Score > prev {
				best[m.Index] = m.Score
			}
		}
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return best[b] - best[a]
	})

	out := make([]models.Entry, len(order))
	for i, idx := range order {
		out[i] = candidates[idx]
	}
	return out
}

// SearchAsync runs Search on the scheduler. The channel is closed without a
// value when the scheduler is shut down.
func (v *Vault) SearchAsync(query string, scope models.SearchScope) <-chan []models.Entry {
	return workers.Submit(v.deps.Scheduler, func(context.Context) []models.Entry {
		return v.Search(query, scope)
	})
}

// AddEntry appends entry without saving.
func (v *Vault) AddEntry(entry models.Entry) {
	v.resolveIcon(&entry)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = append(v.entries, entry)
}

// Entry returns the first entry titled title.
func (v *Vault) Entry(title string) (models.Entry, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	i := v.indexOf(title)
	if i < 0 {
		return models.Entry{}, false
	}
	return v.entries[i], true
}

// UpdateEntry replaces the first entry titled title with edited. The
// compromised flag is reset, the strength is recomputed and the password is
// checked against the breach API before the vault is saved.
func (v *Vault) UpdateEntry(ctx context.Context, title string, edited models.Entry) error {
	if err := v.deps.Validator.Validate(ctx, edited, validators.FieldTitle); err != nil {
		return err
	}

	edited.Compromised = false
	edited.StrengthCategory = v.deps.Scorer.Score(edited.Password)

	v.mu.Lock()
	i := v.indexOf(title)
	if i < 0 {
		v.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrEntryNotFound, title)
	}
	websiteChanged := v.entries[i].Website != edited.Website
	edited.Icon = v.entries[i].Icon
	v.entries[i] = edited
	v.mu.Unlock()

	if err := v.CheckEntryCompromised(ctx, &edited); err != nil {
		v.logger.Warn().Err(err).Msg("breach check after update failed")
	}

	if err := v.Save(ctx); err != nil {
		return err
	}

	if websiteChanged {
		v.resolveIcon(&edited)
		v.mu.Lock()
		if i < len(v.entries) && v.entries[i].Title == edited.Title {
			v.entries[i].Icon = edited.Icon
		}
		v.mu.Unlock()
	}
	return nil
}

// DeleteEntry removes the first entry titled title, saves and publishes
// events.EntryDeleted. A missing title still saves and publishes.
func (v *Vault) DeleteEntry(ctx context.Context, title string) error {
	v.mu.Lock()
	if i := v.indexOf(title); i >= 0 {
		v.entries = slices.Delete(v.entries, i, i+1)
	}
	v.mu.Unlock()

	if err := v.Save(ctx); err != nil {
		return err
	}

	v.deps.Publisher.Publish(events.EntryDeleted{Key: "", Title: title})
	return nil
}

// CheckEntryCompromised sets entry.Compromised when its password appears in
// a breach and marks the stored entry with the same title and password. The
// flag is never cleared here. An empty password is not checked.
func (v *Vault) CheckEntryCompromised(ctx context.Context, entry *models.Entry) error {
	if entry == nil || entry.Password == "" {
		return nil
	}

	count, err := v.deps.Breach.Count(ctx, entry.Password)
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", entry.Title, err)
	}
	if count == 0 {
		return nil
	}

	entry.Compromised = true

	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.entries {
		if v.entries[i].Title == entry.Title && v.entries[i].Password == entry.Password {
			v.entries[i].Compromised = true
			break
		}
	}
	return nil
}

// CheckAllCompromised checks every entry. Failures do not stop the sweep;
// they are joined into the returned error.
func (v *Vault) CheckAllCompromised(ctx context.Context) error {
	v.mu.RLock()
	entries := slices.Clone(v.entries)
	v.mu.RUnlock()

	var errs []error
	for i := range entries {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := v.CheckEntryCompromised(ctx, &entries[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Save encrypts the document with the account passphrase, writes it and
// publishes events.VaultSaved with the sorted entries.
func (v *Vault) Save(ctx context.Context) error {
	doc := v.Document()
	if doc.AccountName == "" {
		return ErrNotLoggedIn
	}

	body, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	encrypted, err := v.deps.Cipher.Encrypt(body, doc.AccountPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptionFailure, err)
	}

	if err := v.deps.Storage.Write(ctx, encrypted, doc.AccountName); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	event := v.logger.Debug().Int("entries", len(doc.Entries))
	if id, ok := utils.GetSessionIDFromContext(ctx); ok {
		event = event.Str("session_id", id)
	}
	event.Msg("vault saved")
	v.deps.Publisher.Publish(events.VaultSaved{Entries: sortEntries(doc.Entries)})
	return nil
}

// setAccount changes the identity used by the next Save.
func (v *Vault) setAccount(name, password string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.accountName = name
	v.accountPassword = password
}

func (v *Vault) account() (string, string) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.accountName, v.accountPassword
}

// indexOf returns the index of the first entry titled title or -1. The
// caller holds the lock.
func (v *Vault) indexOf(title string) int {
	return slices.IndexFunc(v.entries, func(e models.Entry) bool {
		return e.Title == title
	})
}

func (v *Vault) resolveIcon(entry *models.Entry) {
	entry.Icon = nil
	if v.deps.Icons == nil || entry.Website == "" {
		return
	}
	if path, ok := v.deps.Icons.Resolve(entry.Website); ok {
		entry.Icon = &path
	}
}
