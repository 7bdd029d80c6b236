package validators

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/adiwinata/deposito/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldAccountHolder   = "account_holder"
	FieldAccountNumber   = "account_number"
	FieldBankName        = "bank_name"
	FieldPrincipalAmount = "principal_amount"
	FieldInterestRate    = "interest_rate"
	FieldDepositDate     = "deposit_date"
	FieldMaturityDate    = "maturity_date"
	FieldTaxRate         = "tax_rate"
)

var oneHundred = decimal.NewFromInt(100)

// DepositInputValidator enforces the structural rules on caller-supplied
// deposit fields before they reach the calculator.
//
// A maturity date earlier than the deposit date is deliberately allowed: the
// calculator handles negative periods, and back-dated records are valid data.
type DepositInputValidator struct {
}

func NewDepositInputValidator() Validator {
	return &DepositInputValidator{}
}

func (v *DepositInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DepositInput:
		return v.validateDepositInput(ctx, value, fields...)
	case *models.DepositInput:
		return v.validateDepositInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DepositInputValidator) validateDepositInput(_ context.Context, input models.DepositInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldAccountHolder, FieldAccountNumber, FieldBankName,
			FieldPrincipalAmount, FieldInterestRate,
			FieldDepositDate, FieldMaturityDate, FieldTaxRate,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountHolder:
			if input.AccountHolder == "" {
				return ErrEmptyAccountHolder
			}
		case FieldAccountNumber:
			if input.AccountNumber == "" {
				return ErrEmptyAccountNumber
			}
		case FieldBankName:
			if input.BankName == "" {
				return ErrEmptyBankName
			}
		case FieldPrincipalAmount:
			if !input.PrincipalAmount.IsPositive() {
				return ErrNonPositivePrincipal
			}
		case FieldInterestRate:
			if input.InterestRate.IsNegative() {
				return ErrNegativeInterestRate
			}
		case FieldDepositDate:
			if input.DepositDate.IsZero() {
				return ErrMissingDepositDate
			}
		case FieldMaturityDate:
			if input.MaturityDate.IsZero() {
				return ErrMissingMaturityDate
			}
		case FieldTaxRate:
			if input.TaxRate == nil {
				continue
			}
			if input.TaxRate.IsNegative() {
				return ErrNegativeTaxRate
			}
			if input.TaxRate.GreaterThan(oneHundred) {
				return ErrTaxRateExceedsOneHundred
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
