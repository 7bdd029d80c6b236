package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render("Delete " + m.message + "?\n\ny: yes │ n/esc: no")
}
