package tui

import (
	"fmt"
	"strings"

	"github.com/adiwinata/deposito/models"
)

type summaryModel struct {
	stats   models.SummaryStats
	loading bool
}

func (m summaryModel) View() string {
	if m.loading {
		return renderPage("PORTFOLIO SUMMARY", "Loading summary...", "esc: back")
	}

	stats := m.stats
	sym := stats.CurrencySymbol

	var b strings.Builder
	row := func(name, value string) {
		b.WriteString(fmt.Sprintf("%-24s │ %s\n", name, value))
	}

	row("Total deposits", fmt.Sprintf("%d", stats.TotalDeposits))
	row("Total principal", formatMoney(sym, stats.TotalPrincipal))
	row("Interest before tax", formatMoney(sym, stats.TotalInterestBeforeTax))
	row("Interest after tax", formatMoney(sym, stats.TotalInterestAfterTax))
	row("Tax paid", formatMoney(sym, stats.TotalTaxPaid))
	row("Total at maturity", formatMoney(sym, stats.TotalMaturityAmount))
	row("Average rate", stats.AverageInterestRate.String()+" %")
	row("Matured", fmt.Sprintf("%d", stats.MaturedDeposits))
	row("Active", fmt.Sprintf("%d", stats.ActiveDeposits))

	return renderPage("PORTFOLIO SUMMARY", strings.TrimRight(b.String(), "\n"), "esc: back │ r: refresh")
}
