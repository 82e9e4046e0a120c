package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-vault-guard/models"
)

type listModel struct {
	entries   []models.Entry
	idx       int
	scope     models.SearchScope
	query     textinput.Model
	searching bool
	checking  bool
	spinner   spinner.Model
	status    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{
		spinner: s,
		query:   newInput("search websites and titles", false),
	}
}

func (m listModel) current() (models.Entry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.Entry{}, false
	}
	return m.entries[m.idx], true
}

func (m *listModel) setEntries(entries []models.Entry) {
	m.entries = entries
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func entryMarks(e models.Entry) string {
	marks := ""
	if e.Favourite {
		marks += "★"
	}
	if e.Compromised {
		marks += "!"
	}
	if marks == "" {
		return "  "
	}
	return fmt.Sprintf("%-2s", marks)
}

func (m listModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Scope: %s", m.scope)
	if m.checking {
		header += "  " + m.spinner.View() + " checking breaches"
	}
	b.WriteString(header + "\n")
	if m.searching || m.query.Value() != "" {
		b.WriteString("Search: " + m.query.View() + "\n")
	}
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString("No entries\n")
	}
	for i, e := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %-28s %-24s %s\n",
			cursor, entryMarks(e), fitText(e.Title, 28), fitText(e.Website, 24), strengthBadge(e.StrengthCategory)))
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	hotKeys := "enter: open │ n: new │ /: search │ s: scope │ g: generator │ x: breach check │ o: settings │ l: log out │ q: quit"
	if m.searching {
		hotKeys = "type to search │ enter: keep results │ esc: clear"
	}
	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}
