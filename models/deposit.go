package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit is the central entity of the tracker: a fixed-term bank deposit
// with caller-supplied terms and server-derived financial fields.
//
// Raw fields (AccountHolder through TaxRate) are replaced wholesale on every
// update. Derived fields (DaysPeriod through IsMatured) are recomputed from
// the raw fields on every write and are never independently settable.
type Deposit struct {
	// DepositID is the human-readable sequential identifier ("DEP001").
	// Immutable after creation.
	DepositID string `json:"deposit_id"`

	// UserID is the owning user. A deposit belongs to exactly one user
	// for its lifetime.
	UserID int64 `json:"user_id"`

	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`

	// PrincipalAmount is the deposited amount before interest.
	PrincipalAmount decimal.Decimal `json:"principal_amount"`

	// InterestRate is the annual simple-interest rate in percent.
	InterestRate decimal.Decimal `json:"interest_rate"`

	DepositDate  Date `json:"deposit_date"`
	MaturityDate Date `json:"maturity_date"`

	// TaxRate is the percentage withheld from accrued interest.
	TaxRate decimal.Decimal `json:"tax_rate"`

	// Derived fields. Pure function of the raw fields and the evaluation
	// instant of the last write.
	DaysPeriod             int64           `json:"days_period"`
	TimePeriodYears        decimal.Decimal `json:"time_period_years"`
	InterestBeforeTax      decimal.Decimal `json:"interest_before_tax"`
	TaxAmount              decimal.Decimal `json:"tax_amount"`
	InterestAfterTax       decimal.Decimal `json:"interest_after_tax"`
	TotalMaturityAmount    decimal.Decimal `json:"total_maturity_amount"`
	DailyInterestBeforeTax decimal.Decimal `json:"daily_interest_before_tax"`
	DailyInterestAfterTax  decimal.Decimal `json:"daily_interest_after_tax"`

	// IsMatured is frozen at last write time, not re-evaluated on read.
	IsMatured bool `json:"is_matured"`

	// CreatedAt is set once at creation and preserved across edits.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every write.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Deposit model.
func (d Deposit) TableName() string {
	return "deposits"
}

// DepositInput is the caller-supplied raw field set used to create or fully
// replace a deposit. TaxRate is optional: when nil, the effective default tax
// rate for the owner is applied.
type DepositInput struct {
	AccountHolder   string           `json:"account_holder"`
	AccountNumber   string           `json:"account_number"`
	BankName        string           `json:"bank_name"`
	PrincipalAmount decimal.Decimal  `json:"principal_amount"`
	InterestRate    decimal.Decimal  `json:"interest_rate"`
	DepositDate     Date             `json:"deposit_date"`
	MaturityDate    Date             `json:"maturity_date"`
	TaxRate         *decimal.Decimal `json:"tax_rate,omitempty"`
}
