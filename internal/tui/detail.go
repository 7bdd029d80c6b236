package tui

import (
	"fmt"
	"strings"

	"github.com/adiwinata/deposito/models"
)

type detailModel struct {
	deposit        models.Deposit
	currencySymbol string
	status         string
}

func (m detailModel) View() string {
	dep := m.deposit
	sym := m.currencySymbol

	var b strings.Builder

	b.WriteString("Field                  │ Value\n")
	b.WriteString("───────────────────────┼──────────────────────────────────\n")
	row := func(name, value string) {
		b.WriteString(fmt.Sprintf("%-22s │ %s\n", name, value))
	}

	row("Deposit ID", dep.DepositID)
	row("Account holder", dep.AccountHolder)
	row("Account number", dep.AccountNumber)
	row("Bank", dep.BankName)
	row("Principal", formatMoney(sym, dep.PrincipalAmount))
	row("Interest rate", dep.InterestRate.String()+" %")
	row("Deposit date", dep.DepositDate.String())
	row("Maturity date", dep.MaturityDate.String())
	row("Tax rate", dep.TaxRate.String()+" %")
	row("Period (days)", fmt.Sprintf("%d", dep.DaysPeriod))
	row("Period (years)", dep.TimePeriodYears.String())
	row("Interest before tax", formatMoney(sym, dep.InterestBeforeTax))
	row("Tax amount", formatMoney(sym, dep.TaxAmount))
	row("Interest after tax", formatMoney(sym, dep.InterestAfterTax))
	row("Total at maturity", formatMoney(sym, dep.TotalMaturityAmount))
	row("Daily interest (brut)", formatMoney(sym, dep.DailyInterestBeforeTax))
	row("Daily interest (net)", formatMoney(sym, dep.DailyInterestAfterTax))
	row("State", maturedLabel(dep.IsMatured))

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"DEPOSIT "+dep.DepositID,
		strings.TrimRight(b.String(), "\n"),
		"e: edit │ d: delete │ c: copy account number │ esc: back",
	)
}
