package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccountHolder      = errors.New("account holder is required")
	ErrEmptyAccountNumber      = errors.New("account number is required")
	ErrEmptyBankName           = errors.New("bank name is required")
	ErrNonPositivePrincipal    = errors.New("principal amount must be positive")
	ErrNegativeInterestRate    = errors.New("interest rate cannot be negative")
	ErrMissingDepositDate      = errors.New("deposit date is required")
	ErrMissingMaturityDate     = errors.New("maturity date is required")
	ErrNegativeTaxRate         = errors.New("tax rate cannot be negative")
	ErrTaxRateExceedsOneHundred = errors.New("tax rate cannot exceed 100")
)
