package tui

import (
	"fmt"

	"github.com/MKhiriev/go-vault-guard/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	data := fmt.Sprintf("%-12s vault-guard\n%-12s %s\n%-12s %s\n%-12s %s",
		"Application:",
		"Version:", info.BuildVersion(),
		"Date:", info.BuildDate(),
		"Commit:", info.BuildCommit(),
	)
	return renderPage("ABOUT", data, "esc: back")
}
