package tui

import (
	"fmt"
	"strings"

	"github.com/adiwinata/deposito/models"
)

type listModel struct {
	deposits []models.Deposit
	idx      int
	loading  bool
	status   string
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.Deposit, bool) {
	if len(m.deposits) == 0 || m.idx < 0 || m.idx >= len(m.deposits) {
		return models.Deposit{}, false
	}
	return m.deposits[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n\n")
	}

	if m.loading {
		b.WriteString("Loading deposits...\n")
		return renderPage("DEPOSITS", strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	if len(m.deposits) == 0 {
		b.WriteString("No deposits yet. Press n to add one.\n")
		return renderPage("DEPOSITS", strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	b.WriteString("ID      │ Holder               │ Bank             │ Principal          │ Maturity   │ State\n")
	b.WriteString("────────┼──────────────────────┼──────────────────┼────────────────────┼────────────┼────────\n")
	for i, dep := range m.deposits {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-6s│ %-20s │ %-16s │ %18s │ %s │ %s\n",
			cursor,
			dep.DepositID,
			fitText(dep.AccountHolder, 20),
			fitText(dep.BankName, 16),
			dep.PrincipalAmount.StringFixed(2),
			dep.MaturityDate.String(),
			maturedLabel(dep.IsMatured),
		))
	}

	return renderPage("DEPOSITS", strings.TrimRight(b.String(), "\n"), listHotKeys)
}

const listHotKeys = "n: new │ s: summary │ enter: open │ e: edit │ d: delete │ r: refresh │ l: logout"
