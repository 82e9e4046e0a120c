// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events defines the notifications the vault core emits and a
// synchronous in-process bus that delivers them.
package events

import "github.com/MKhiriev/go-vault-guard/models"

//go:generate mockgen -source=events.go -destination=../mock/publisher_mock.go -package=mock

// Kind identifies an event type.
type Kind int

const (
	KindSessionStateChanged Kind = iota + 1
	KindEntryDeleted
	KindVaultSaved
)

var kindNames = map[Kind]string{
	KindSessionStateChanged: "SessionStateChanged",
	KindEntryDeleted:        "EntryDeleted",
	KindVaultSaved:          "VaultSaved",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is implemented by every notification.
type Event interface {
	Kind() Kind
}

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(event Event)
}

// SessionStateChanged carries the outcome of a login, signup or logout
// attempt, including outcomes that do not change the durable state.
type SessionStateChanged struct {
	State models.SessionState
}

func (SessionStateChanged) Kind() Kind { return KindSessionStateChanged }

// EntryDeleted is published after a delete has been persisted. Key is
// always empty.
type EntryDeleted struct {
	Key   string
	Title string
}

func (EntryDeleted) Kind() Kind { return KindEntryDeleted }

// VaultSaved carries the entries as persisted, sorted by title.
type VaultSaved struct {
	Entries []models.Entry
}

func (VaultSaved) Kind() Kind { return KindVaultSaved }
