package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is a named institution with a default interest rate offered to new
// deposits. Banks exist in a global list; a user may shadow an entry with a
// personal override (stored in the user_banks table).
type Bank struct {
	Name                string          `json:"name"`
	DefaultInterestRate decimal.Decimal `json:"default_interest_rate"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (b Bank) TableName() string {
	return "banks"
}

// UserBank is a per-user bank override. When a user has any UserBank rows,
// they shadow the global bank list entirely for that user.
type UserBank struct {
	UserID              int64           `json:"user_id"`
	BankName            string          `json:"bank_name"`
	DefaultInterestRate decimal.Decimal `json:"default_interest_rate"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (b UserBank) TableName() string {
	return "user_banks"
}
