package tui

// errorOverlayModel is drawn under the current screen until dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render("Something went wrong") + "\n\n" +
		m.message + "\n\n" + helpStyle.Render("enter / esc: dismiss"))
}
