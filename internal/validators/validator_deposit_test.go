package validators

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adiwinata/deposito/models"
)

func validInput() models.DepositInput {
	return models.DepositInput{
		AccountHolder:   "Adi Winata",
		AccountNumber:   "1234567890",
		BankName:        "BCA",
		PrincipalAmount: decimal.RequireFromString("10000000"),
		InterestRate:    decimal.RequireFromString("5.5"),
		DepositDate:     models.NewDate(2025, time.January, 10),
		MaturityDate:    models.NewDate(2026, time.January, 10),
	}
}

func TestDepositInputValidator_Valid(t *testing.T) {
	v := NewDepositInputValidator()

	assert.NoError(t, v.Validate(context.Background(), validInput()))
}

func TestDepositInputValidator_PointerInput(t *testing.T) {
	v := NewDepositInputValidator()
	input := validInput()

	assert.NoError(t, v.Validate(context.Background(), &input))
}

func TestDepositInputValidator_UnsupportedType(t *testing.T) {
	v := NewDepositInputValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "not a deposit"), ErrUnsupportedType)
}

func TestDepositInputValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *models.DepositInput)
		wantErr error
	}{
		{
			name:    "empty account holder",
			mutate:  func(input *models.DepositInput) { input.AccountHolder = "" },
			wantErr: ErrEmptyAccountHolder,
		},
		{
			name:    "empty account number",
			mutate:  func(input *models.DepositInput) { input.AccountNumber = "" },
			wantErr: ErrEmptyAccountNumber,
		},
		{
			name:    "empty bank name",
			mutate:  func(input *models.DepositInput) { input.BankName = "" },
			wantErr: ErrEmptyBankName,
		},
		{
			name:    "zero principal",
			mutate:  func(input *models.DepositInput) { input.PrincipalAmount = decimal.Zero },
			wantErr: ErrNonPositivePrincipal,
		},
		{
			name:    "negative principal",
			mutate:  func(input *models.DepositInput) { input.PrincipalAmount = decimal.NewFromInt(-1) },
			wantErr: ErrNonPositivePrincipal,
		},
		{
			name:    "negative interest rate",
			mutate:  func(input *models.DepositInput) { input.InterestRate = decimal.NewFromInt(-1) },
			wantErr: ErrNegativeInterestRate,
		},
		{
			name:    "missing deposit date",
			mutate:  func(input *models.DepositInput) { input.DepositDate = models.Date{} },
			wantErr: ErrMissingDepositDate,
		},
		{
			name:    "missing maturity date",
			mutate:  func(input *models.DepositInput) { input.MaturityDate = models.Date{} },
			wantErr: ErrMissingMaturityDate,
		},
		{
			name: "negative tax rate",
			mutate: func(input *models.DepositInput) {
				rate := decimal.NewFromInt(-5)
				input.TaxRate = &rate
			},
			wantErr: ErrNegativeTaxRate,
		},
		{
			name: "tax rate above 100",
			mutate: func(input *models.DepositInput) {
				rate := decimal.NewFromInt(101)
				input.TaxRate = &rate
			},
			wantErr: ErrTaxRateExceedsOneHundred,
		},
	}

	v := NewDepositInputValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			assert.ErrorIs(t, v.Validate(context.Background(), input), tt.wantErr)
		})
	}
}

// Zero interest is unusual but legal; the derived interest fields come out zero.
func TestDepositInputValidator_ZeroInterestRate(t *testing.T) {
	v := NewDepositInputValidator()
	input := validInput()
	input.InterestRate = decimal.Zero

	assert.NoError(t, v.Validate(context.Background(), input))
}

// Nil tax rate means "apply the effective default", not an error.
func TestDepositInputValidator_NilTaxRate(t *testing.T) {
	v := NewDepositInputValidator()
	input := validInput()
	input.TaxRate = nil

	assert.NoError(t, v.Validate(context.Background(), input))
}

// Back-dated records with maturity before the deposit date are accepted.
func TestDepositInputValidator_InvertedDates(t *testing.T) {
	v := NewDepositInputValidator()
	input := validInput()
	input.DepositDate = models.NewDate(2026, time.January, 10)
	input.MaturityDate = models.NewDate(2025, time.January, 10)

	assert.NoError(t, v.Validate(context.Background(), input))
}

func TestDepositInputValidator_ScopedFields(t *testing.T) {
	v := NewDepositInputValidator()
	input := models.DepositInput{BankName: "BCA"}

	// Only the named field is checked; everything else may be empty.
	assert.NoError(t, v.Validate(context.Background(), input, FieldBankName))
	assert.ErrorIs(t, v.Validate(context.Background(), input, FieldAccountHolder), ErrEmptyAccountHolder)
}

func TestDepositInputValidator_UnknownField(t *testing.T) {
	v := NewDepositInputValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), validInput(), "no_such_field"), ErrUnknownField)
}
