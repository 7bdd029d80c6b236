package models

import "github.com/shopspring/decimal"

// SummaryStats is the portfolio-level reduction over a deposit set.
//
// Sums are rounded to 2 decimal places, the average rate to 4. Matured and
// active counts are derived from the stored is_matured flag, frozen at each
// deposit's last write, not re-evaluated at summary time.
type SummaryStats struct {
	TotalDeposits          int64           `json:"total_deposits"`
	TotalPrincipal         decimal.Decimal `json:"total_principal"`
	TotalInterestBeforeTax decimal.Decimal `json:"total_interest_before_tax"`
	TotalInterestAfterTax  decimal.Decimal `json:"total_interest_after_tax"`
	TotalTaxPaid           decimal.Decimal `json:"total_tax_paid"`
	TotalMaturityAmount    decimal.Decimal `json:"total_maturity_amount"`
	AverageInterestRate    decimal.Decimal `json:"average_interest_rate"`
	MaturedDeposits        int64           `json:"matured_deposits"`
	ActiveDeposits         int64           `json:"active_deposits"`

	// CurrencySymbol is presentation-only and plays no part in calculation.
	CurrencySymbol string `json:"currency_symbol"`
}

// ZeroSummary returns the all-zero stats record used for an empty deposit
// set. Decimal fields are explicit zeros so JSON output stays numeric.
func ZeroSummary(currencySymbol string) SummaryStats {
	return SummaryStats{
		TotalPrincipal:         decimal.Zero,
		TotalInterestBeforeTax: decimal.Zero,
		TotalInterestAfterTax:  decimal.Zero,
		TotalTaxPaid:           decimal.Zero,
		TotalMaturityAmount:    decimal.Zero,
		AverageInterestRate:    decimal.Zero,
		CurrencySymbol:         currencySymbol,
	}
}
