package tui

import (
	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/models"
)

type sessionDoneMsg struct {
	state models.SessionState
	doc   models.VaultDocument
	err   error
}

// busEventMsg wraps a notification forwarded from the event bus.
type busEventMsg struct {
	event events.Event
}

type searchDoneMsg struct {
	query   string
	scope   models.SearchScope
	entries []models.Entry
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type sweepDoneMsg struct {
	err error
}

type totpTickMsg struct {
	title string
	tick  models.TOTPTick
}

type totpFailedMsg struct {
	err error
}

type strengthMsg struct {
	password string
	category models.StrengthCategory
}

type settingsDoneMsg struct {
	err     error
	deleted bool
}

type copiedMsg struct{}

type clearStatusMsg struct{}
