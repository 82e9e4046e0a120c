package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-guard/models"
)

type detailModel struct {
	entry   models.Entry
	totp    *models.TOTPTick
	totpErr string
	status  string
}

func (m detailModel) View() string {
	var b strings.Builder

	for _, f := range m.entry.NonEmptyFields() {
		value := f.Value
		switch f.Label {
		case "Password":
			value = "••••••••"
		case "TOTP":
			value = "-"
			if m.totp != nil {
				value = m.totp.String()
			}
			if m.totpErr != "" {
				value = m.totpErr
			}
		}
		b.WriteString(fmt.Sprintf("%-10s %s\n", f.Label+":", value))
	}

	b.WriteString(fmt.Sprintf("%-10s %s\n", "Strength:", strengthBadge(m.entry.StrengthCategory)))
	if m.entry.Icon != nil {
		b.WriteString(fmt.Sprintf("%-10s %s\n", "Icon:", *m.entry.Icon))
	}
	if m.entry.Favourite {
		b.WriteString("★ favourite\n")
	}
	if m.entry.Compromised {
		b.WriteString(errorStyle.Render("! this password appears in a known breach") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(strings.ToUpper(m.entry.Title), strings.TrimRight(b.String(), "\n"),
		"e: edit │ d: delete │ f: favourite │ c: copy password │ u: copy username │ esc: back")
}
