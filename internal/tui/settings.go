package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	settingsName = iota
	settingsCurrent
	settingsNext
)

type settingsModel struct {
	inputs     []textinput.Model
	focus      int
	account    string
	submitting bool
}

func newSettingsModel(account string) settingsModel {
	inputs := []textinput.Model{
		newInput("account name", false),
		newInput("current passphrase", true),
		newInput("new passphrase (optional)", true),
	}
	inputs[settingsName].SetValue(account)
	inputs[settingsName].Focus()

	return settingsModel{inputs: inputs, account: account}
}

func (m settingsModel) newName() string {
	return strings.TrimSpace(m.inputs[settingsName].Value())
}

func (m settingsModel) View() string {
	out := "Account:         [" + m.inputs[settingsName].View() + "]\n"
	out += "Current pass:    [" + m.inputs[settingsCurrent].View() + "]\n"
	out += "New passphrase:  [" + m.inputs[settingsNext].View() + "]"
	if m.submitting {
		out += "\n\nSaving..."
	}

	return renderPage("SETTINGS: "+strings.ToUpper(m.account), out,
		"enter: apply │ tab: next field │ ctrl+x: delete account │ esc: back")
}
