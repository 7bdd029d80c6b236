package tui

import (
	"fmt"
	"strings"
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{
		items: []string{"Sign in", "Create account"},
	}
}

func (m welcomeModel) View() string {
	var b strings.Builder

	b.WriteString("Track your fixed-term bank deposits.\n\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("DEPOSITO", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ q: quit")
}
