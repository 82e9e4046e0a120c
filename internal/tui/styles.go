package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-vault-guard/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// strengthBadge renders the category label in its display colour.
func strengthBadge(c models.StrengthCategory) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color())).Render(c.Label())
}
