package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteEntry
	confirmDeleteAccount
)

type confirmModel struct {
	action  confirmAction
	subject string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.subject + "\"?\n\n"
	if m.action == confirmDeleteAccount {
		content = "Delete the account \"" + m.subject + "\" and all its entries?\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
