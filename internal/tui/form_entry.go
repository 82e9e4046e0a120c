package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-vault-guard/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldWebsite
	fieldEmail
	fieldPassword
	fieldSeed
)

type entryFormModel struct {
	inputs      []textinput.Model
	focus       int
	editing     bool
	original    models.Entry
	submitting  bool
	strength    models.StrengthCategory
	hasStrength bool
}

func newEntryFormModel(entry *models.Entry) entryFormModel {
	inputs := []textinput.Model{
		newInput("title", false),
		newInput("username", false),
		newInput("https://example.com", false),
		newInput("email", false),
		newInput("password", true),
		newInput("base32 seed", false),
	}
	inputs[fieldTitle].Focus()

	m := entryFormModel{inputs: inputs}
	if entry == nil {
		return m
	}

	m.editing = true
	m.original = *entry
	m.inputs[fieldTitle].SetValue(entry.Title)
	m.inputs[fieldUsername].SetValue(entry.Username)
	m.inputs[fieldWebsite].SetValue(entry.Website)
	m.inputs[fieldEmail].SetValue(entry.Email)
	m.inputs[fieldPassword].SetValue(entry.Password)
	m.inputs[fieldSeed].SetValue(entry.OneTimePasswordSeed)
	m.strength = entry.StrengthCategory
	m.hasStrength = entry.Password != ""
	return m
}

func (m entryFormModel) password() string {
	return m.inputs[fieldPassword].Value()
}

// toEntry builds the edited entry. Flags of the original entry are kept.
func (m entryFormModel) toEntry() models.Entry {
	e := models.NewEntry(strings.TrimSpace(m.inputs[fieldTitle].Value()))
	if m.editing {
		e = m.original
		e.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	}

	e.Username = m.inputs[fieldUsername].Value()
	e.Website = strings.TrimSpace(m.inputs[fieldWebsite].Value())
	e.Email = m.inputs[fieldEmail].Value()
	e.Password = m.inputs[fieldPassword].Value()
	e.OneTimePasswordSeed = strings.TrimSpace(m.inputs[fieldSeed].Value())
	if m.hasStrength {
		e.StrengthCategory = m.strength
	}
	return e
}

func (m entryFormModel) View() string {
	title := "NEW ENTRY"
	if m.editing {
		title = "EDIT: " + strings.ToUpper(m.original.Title)
	}

	strength := "-"
	if m.hasStrength {
		strength = strengthBadge(m.strength)
	}

	out := "Title:     [" + m.inputs[fieldTitle].View() + "]\n"
	out += "Username:  [" + m.inputs[fieldUsername].View() + "]\n"
	out += "Website:   [" + m.inputs[fieldWebsite].View() + "]\n"
	out += "Email:     [" + m.inputs[fieldEmail].View() + "]\n"
	out += "Password:  [" + m.inputs[fieldPassword].View() + "]  " + strength + "\n"
	out += "TOTP seed: [" + m.inputs[fieldSeed].View() + "]"
	if m.submitting {
		out += "\n\nSaving..."
	}

	return renderPage(title, out, "esc: cancel │ tab: next field │ ctrl+g: generate password │ enter: save")
}
