package tui

type welcomeModel struct {
	items  []string
	idx    int
	status string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Sign up"}}
}

func (m welcomeModel) View() string {
	out := ""
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	return renderPage("VAULT GUARD", out, "enter: choose │ v: version │ q: quit")
}
