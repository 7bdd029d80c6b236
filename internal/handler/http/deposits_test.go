package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwinata/deposito/internal/service"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

// mockDepositService implements service.DepositService for unit tests.
type mockDepositService struct {
	createFn    func(ctx context.Context, input models.DepositInput, ownerID int64) (models.Deposit, error)
	getFn       func(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error)
	listFn      func(ctx context.Context, ownerID int64) ([]models.Deposit, error)
	updateFn    func(ctx context.Context, depositID string, input models.DepositInput, ownerID int64) (models.Deposit, error)
	deleteFn    func(ctx context.Context, depositID string, ownerID int64) error
	summarizeFn func(ctx context.Context, ownerID int64) (models.SummaryStats, error)
}

func (m *mockDepositService) Create(ctx context.Context, input models.DepositInput, ownerID int64) (models.Deposit, error) {
	return m.createFn(ctx, input, ownerID)
}

func (m *mockDepositService) Get(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error) {
	return m.getFn(ctx, depositID, ownerID)
}

func (m *mockDepositService) List(ctx context.Context, ownerID int64) ([]models.Deposit, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockDepositService) Update(ctx context.Context, depositID string, input models.DepositInput, ownerID int64) (models.Deposit, error) {
	return m.updateFn(ctx, depositID, input, ownerID)
}

func (m *mockDepositService) Delete(ctx context.Context, depositID string, ownerID int64) error {
	return m.deleteFn(ctx, depositID, ownerID)
}

func (m *mockDepositService) Summarize(ctx context.Context, ownerID int64) (models.SummaryStats, error) {
	return m.summarizeFn(ctx, ownerID)
}

// authAsUser returns an AuthService mock that accepts any bearer token as
// the given user.
func authAsUser(userID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
	}
}

func depositInputBody(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(models.DepositInput{
		AccountHolder:   "Adi Winata",
		AccountNumber:   "1234567890",
		BankName:        "BCA",
		PrincipalAmount: decimal.RequireFromString("10000000"),
		InterestRate:    decimal.RequireFromString("5.5"),
		DepositDate:     models.NewDate(2025, time.January, 10),
		MaturityDate:    models.NewDate(2026, time.January, 10),
	})
	require.NoError(t, err)
	return string(b)
}

func TestCreateDeposit_Success(t *testing.T) {
	deposits := &mockDepositService{
		createFn: func(_ context.Context, input models.DepositInput, ownerID int64) (models.Deposit, error) {
			assert.Equal(t, int64(7), ownerID)
			assert.Equal(t, "BCA", input.BankName)
			return models.Deposit{DepositID: "DEP001", UserID: ownerID, BankName: input.BankName}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/deposits/", strings.NewReader(depositInputBody(t)))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Deposit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "DEP001", created.DepositID)
}

func TestCreateDeposit_ValidationFailure(t *testing.T) {
	deposits := &mockDepositService{
		createFn: func(_ context.Context, _ models.DepositInput, _ int64) (models.Deposit, error) {
			t.Fatal("invalid input must not reach the service")
			return models.Deposit{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/deposits/", strings.NewReader(`{"account_holder":""}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "account holder is required")
}

func TestCreateDeposit_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/deposits/", strings.NewReader(depositInputBody(t)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetDeposit_Success(t *testing.T) {
	deposits := &mockDepositService{
		getFn: func(_ context.Context, depositID string, ownerID int64) (models.Deposit, error) {
			assert.Equal(t, "DEP003", depositID)
			assert.Equal(t, int64(7), ownerID)
			return models.Deposit{DepositID: depositID, UserID: ownerID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/deposits/DEP003", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var deposit models.Deposit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deposit))
	assert.Equal(t, "DEP003", deposit.DepositID)
}

func TestGetDeposit_NotFound(t *testing.T) {
	deposits := &mockDepositService{
		getFn: func(_ context.Context, _ string, _ int64) (models.Deposit, error) {
			return models.Deposit{}, store.ErrDepositNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/deposits/DEP404", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDeposit_Success(t *testing.T) {
	var deletedID string
	deposits := &mockDepositService{
		deleteFn: func(_ context.Context, depositID string, ownerID int64) error {
			deletedID = depositID
			assert.Equal(t, int64(7), ownerID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/deposits/DEP003", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "DEP003", deletedID)
}

func TestUpdateDeposit_NotFound(t *testing.T) {
	deposits := &mockDepositService{
		updateFn: func(_ context.Context, _ string, _ models.DepositInput, _ int64) (models.Deposit, error) {
			return models.Deposit{}, store.ErrDepositNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPut, "/api/deposits/DEP404", strings.NewReader(depositInputBody(t)))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDepositSummary_Success(t *testing.T) {
	deposits := &mockDepositService{
		summarizeFn: func(_ context.Context, ownerID int64) (models.SummaryStats, error) {
			assert.Equal(t, int64(7), ownerID)
			return models.SummaryStats{
				TotalDeposits:  2,
				TotalPrincipal: decimal.RequireFromString("15000000"),
				CurrencySymbol: "Rp",
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/deposits/summary", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.SummaryStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalDeposits)
	assert.Equal(t, "Rp", stats.CurrencySymbol)
}

func TestListDeposits_Empty(t *testing.T) {
	deposits := &mockDepositService{
		listFn: func(_ context.Context, _ int64) ([]models.Deposit, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAsUser(7), DepositService: deposits})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/deposits/", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
