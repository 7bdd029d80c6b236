package http

import (
	"errors"
	"net/http"

	"github.com/adiwinata/deposito/internal/service"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrCannotDeleteSelf:        http.StatusConflict,
	service.ErrAdminRequired:           http.StatusForbidden,

	validators.ErrEmptyAccountHolder:       http.StatusBadRequest,
	validators.ErrEmptyAccountNumber:       http.StatusBadRequest,
	validators.ErrEmptyBankName:            http.StatusBadRequest,
	validators.ErrNonPositivePrincipal:     http.StatusBadRequest,
	validators.ErrNegativeInterestRate:     http.StatusBadRequest,
	validators.ErrMissingDepositDate:       http.StatusBadRequest,
	validators.ErrMissingMaturityDate:      http.StatusBadRequest,
	validators.ErrNegativeTaxRate:          http.StatusBadRequest,
	validators.ErrTaxRateExceedsOneHundred: http.StatusBadRequest,

	store.ErrUsernameTaken:     http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrDepositNotFound:   http.StatusNotFound,
	store.ErrDepositIDTaken:    http.StatusConflict,
	store.ErrBankNotFound:      http.StatusNotFound,
	store.ErrBankAlreadyExists: http.StatusConflict,
	store.ErrSettingNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
