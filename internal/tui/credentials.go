package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-vault-guard/models"
)

// credentialsModel is the login form, and the signup form when confirm is
// set.
type credentialsModel struct {
	inputs     []textinput.Model
	focus      int
	confirm    bool
	submitting bool
	errMsg     string
}

func newCredentialsModel(confirm bool) credentialsModel {
	inputs := []textinput.Model{
		newInput("account name", false),
		newInput("passphrase", true),
	}
	if confirm {
		inputs = append(inputs, newInput("repeat passphrase", true))
	}
	inputs[0].Focus()

	return credentialsModel{inputs: inputs, confirm: confirm}
}

func (m credentialsModel) credentials() models.Credentials {
	return models.Credentials{
		AccountName: strings.TrimSpace(m.inputs[0].Value()),
		Passphrase:  m.inputs[1].Value(),
	}
}

func (m credentialsModel) repeatMatches() bool {
	return !m.confirm || m.inputs[1].Value() == m.inputs[2].Value()
}

func (m credentialsModel) View() string {
	title, action := "LOG IN", "Log in"
	if m.confirm {
		title, action = "SIGN UP", "Create vault"
	}

	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Account     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Passphrase  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	if m.confirm {
		b.WriteString("Repeat      │ [")
		b.WriteString(m.inputs[2].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
