package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/adiwinata/deposito/models"
)

// Input order in the deposit form.
const (
	formFieldHolder = iota
	formFieldAccountNumber
	formFieldBank
	formFieldPrincipal
	formFieldRate
	formFieldDepositDate
	formFieldMaturityDate
	formFieldTaxRate
)

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	depositID  string
	submitting bool
	errMsg     string
}

func newFormModel(dep *models.Deposit) formModel {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 64
		in.Width = 34
		return in
	}

	holder := mk("account holder")
	holder.Focus()
	number := mk("account number")
	bank := mk("bank name")
	principal := mk("10000000")
	rate := mk("6.0")
	depositDate := mk("YYYY-MM-DD")
	maturityDate := mk("YYYY-MM-DD")
	taxRate := mk("blank for default")

	m := formModel{inputs: []textinput.Model{
		holder, number, bank, principal, rate, depositDate, maturityDate, taxRate,
	}}

	if dep != nil {
		m.editing = true
		m.depositID = dep.DepositID
		m.inputs[formFieldHolder].SetValue(dep.AccountHolder)
		m.inputs[formFieldAccountNumber].SetValue(dep.AccountNumber)
		m.inputs[formFieldBank].SetValue(dep.BankName)
		m.inputs[formFieldPrincipal].SetValue(dep.PrincipalAmount.String())
		m.inputs[formFieldRate].SetValue(dep.InterestRate.String())
		m.inputs[formFieldDepositDate].SetValue(dep.DepositDate.String())
		m.inputs[formFieldMaturityDate].SetValue(dep.MaturityDate.String())
		m.inputs[formFieldTaxRate].SetValue(dep.TaxRate.String())
	}

	return m
}

// toInput parses the form fields into a DepositInput. An empty tax rate
// leaves TaxRate nil so the server applies the effective default.
func (m formModel) toInput() (models.DepositInput, error) {
	var input models.DepositInput

	input.AccountHolder = strings.TrimSpace(m.inputs[formFieldHolder].Value())
	input.AccountNumber = strings.TrimSpace(m.inputs[formFieldAccountNumber].Value())
	input.BankName = strings.TrimSpace(m.inputs[formFieldBank].Value())

	if input.AccountHolder == "" || input.AccountNumber == "" || input.BankName == "" {
		return input, fmt.Errorf("holder, account number and bank are required")
	}

	principal, err := decimal.NewFromString(strings.TrimSpace(m.inputs[formFieldPrincipal].Value()))
	if err != nil {
		return input, fmt.Errorf("principal amount must be a number")
	}
	input.PrincipalAmount = principal

	rate, err := decimal.NewFromString(strings.TrimSpace(m.inputs[formFieldRate].Value()))
	if err != nil {
		return input, fmt.Errorf("interest rate must be a number")
	}
	input.InterestRate = rate

	depositDate, err := models.ParseDate(strings.TrimSpace(m.inputs[formFieldDepositDate].Value()))
	if err != nil {
		return input, fmt.Errorf("deposit date must be YYYY-MM-DD")
	}
	input.DepositDate = depositDate

	maturityDate, err := models.ParseDate(strings.TrimSpace(m.inputs[formFieldMaturityDate].Value()))
	if err != nil {
		return input, fmt.Errorf("maturity date must be YYYY-MM-DD")
	}
	input.MaturityDate = maturityDate

	if raw := strings.TrimSpace(m.inputs[formFieldTaxRate].Value()); raw != "" {
		taxRate, err := decimal.NewFromString(raw)
		if err != nil {
			return input, fmt.Errorf("tax rate must be a number")
		}
		input.TaxRate = &taxRate
	}

	return input, nil
}

func (m formModel) View() string {
	var b strings.Builder

	row := func(name string, idx int) {
		b.WriteString(fmt.Sprintf("%-16s: [ %s ]\n", name, m.inputs[idx].View()))
	}

	row("Account holder", formFieldHolder)
	row("Account number", formFieldAccountNumber)
	row("Bank", formFieldBank)
	row("Principal", formFieldPrincipal)
	row("Rate % p.a.", formFieldRate)
	row("Deposit date", formFieldDepositDate)
	row("Maturity date", formFieldMaturityDate)
	row("Tax rate %", formFieldTaxRate)

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...\n")
	}

	title := "NEW DEPOSIT"
	if m.editing {
		title = "EDIT " + m.depositID
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: cancel")
}
