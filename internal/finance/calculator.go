// Package finance implements the deterministic financial core of the
// application: derivation of interest, tax and maturity figures from raw
// deposit terms, and allocation of sequential human-readable deposit
// identifiers.
//
// All functions in this package are pure: no I/O, no clock access (the
// evaluation instant is always an explicit argument), no errors. Economically
// nonsensical inputs (negative principal, maturity before deposit date)
// propagate as negative values downstream rather than being rejected;
// validation belongs to the request-handling boundary.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adiwinata/deposito/models"
)

var (
	hundred = decimal.NewFromInt(100)

	// daysPerYear is the fixed 365-day interest basis. Leap years are
	// deliberately ignored: the daily rate is annual/365 regardless of
	// the calendar the term spans.
	daysPerYear = decimal.NewFromInt(365)

	// yearBasis is 100 * 365, so that principal*rate/yearBasis yields the
	// daily interest in one division.
	yearBasis = decimal.NewFromInt(36500)
)

// Terms is the raw input set of the deposit calculator.
type Terms struct {
	Principal    decimal.Decimal
	AnnualRate   decimal.Decimal
	DepositDate  models.Date
	MaturityDate models.Date
	TaxRate      decimal.Decimal
}

// Derived is the calculator output: every field the system publishes about a
// deposit beyond its raw terms. Monetary fields carry 2 decimal places,
// TimePeriodYears 4.
type Derived struct {
	DaysPeriod             int64
	TimePeriodYears        decimal.Decimal
	InterestBeforeTax      decimal.Decimal
	TaxAmount              decimal.Decimal
	InterestAfterTax       decimal.Decimal
	TotalMaturityAmount    decimal.Decimal
	DailyInterestBeforeTax decimal.Decimal
	DailyInterestAfterTax  decimal.Decimal
	IsMatured              bool
}

// Calculate derives the financial fields for the given terms at the
// evaluation instant now.
//
// Simple interest, no compounding: interest = principal * rate% / 365 * days.
// The chain is computed unrounded; every published field is then rounded
// independently at its own boundary (2 decimal places for money, 4 for the
// year fraction). Rounding is never propagated from one published field into
// the next, so e.g. InterestAfterTax is the rounded difference of the
// unrounded interest and tax, not of their rounded forms.
func Calculate(t Terms, now time.Time) Derived {
	days := t.DepositDate.DaysUntil(t.MaturityDate)
	daysDec := decimal.NewFromInt(days)

	interestBeforeTax := t.Principal.Mul(t.AnnualRate).Mul(daysDec).Div(yearBasis)
	taxAmount := interestBeforeTax.Mul(t.TaxRate).Div(hundred)
	interestAfterTax := interestBeforeTax.Sub(taxAmount)

	dailyBeforeTax := t.Principal.Mul(t.AnnualRate).Div(yearBasis)
	dailyAfterTax := dailyBeforeTax.Mul(hundred.Sub(t.TaxRate)).Div(hundred)

	return Derived{
		DaysPeriod:             days,
		TimePeriodYears:        daysDec.Div(daysPerYear).Round(4),
		InterestBeforeTax:      interestBeforeTax.Round(2),
		TaxAmount:              taxAmount.Round(2),
		InterestAfterTax:       interestAfterTax.Round(2),
		TotalMaturityAmount:    t.Principal.Add(interestAfterTax).Round(2),
		DailyInterestBeforeTax: dailyBeforeTax.Round(2),
		DailyInterestAfterTax:  dailyAfterTax.Round(2),
		IsMatured:              !now.Before(t.MaturityDate.Time),
	}
}

// Recalculate re-derives all computed fields of dep in place from its raw
// terms, using now as the evaluation instant. Raw fields, identity and
// timestamps are left untouched.
func Recalculate(dep *models.Deposit, now time.Time) {
	derived := Calculate(Terms{
		Principal:    dep.PrincipalAmount,
		AnnualRate:   dep.InterestRate,
		DepositDate:  dep.DepositDate,
		MaturityDate: dep.MaturityDate,
		TaxRate:      dep.TaxRate,
	}, now)

	dep.DaysPeriod = derived.DaysPeriod
	dep.TimePeriodYears = derived.TimePeriodYears
	dep.InterestBeforeTax = derived.InterestBeforeTax
	dep.TaxAmount = derived.TaxAmount
	dep.InterestAfterTax = derived.InterestAfterTax
	dep.TotalMaturityAmount = derived.TotalMaturityAmount
	dep.DailyInterestBeforeTax = derived.DailyInterestBeforeTax
	dep.DailyInterestAfterTax = derived.DailyInterestAfterTax
	dep.IsMatured = derived.IsMatured
}
