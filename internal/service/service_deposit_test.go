package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

type mockDepositRepository struct {
	insertFn    func(ctx context.Context, deposit models.Deposit) error
	listIDsFn   func(ctx context.Context) ([]string, error)
	getFn       func(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error)
	listFn      func(ctx context.Context, ownerID int64) ([]models.Deposit, error)
	updateFn    func(ctx context.Context, deposit models.Deposit, ownerID int64) error
	deleteFn    func(ctx context.Context, depositID string, ownerID int64) error
	summarizeFn func(ctx context.Context, ownerID int64) (models.SummaryStats, error)
}

func (m *mockDepositRepository) Insert(ctx context.Context, deposit models.Deposit) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, deposit)
	}
	return nil
}

func (m *mockDepositRepository) ListIDs(ctx context.Context) ([]string, error) {
	if m.listIDsFn != nil {
		return m.listIDsFn(ctx)
	}
	return nil, nil
}

func (m *mockDepositRepository) Get(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error) {
	if m.getFn != nil {
		return m.getFn(ctx, depositID, ownerID)
	}
	return models.Deposit{}, nil
}

func (m *mockDepositRepository) List(ctx context.Context, ownerID int64) ([]models.Deposit, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockDepositRepository) Update(ctx context.Context, deposit models.Deposit, ownerID int64) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, deposit, ownerID)
	}
	return nil
}

func (m *mockDepositRepository) Delete(ctx context.Context, depositID string, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, depositID, ownerID)
	}
	return nil
}

func (m *mockDepositRepository) Summarize(ctx context.Context, ownerID int64) (models.SummaryStats, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, ownerID)
	}
	return models.SummaryStats{}, nil
}

// stubSettings returns fixed values without touching storage.
type stubSettings struct {
	taxRate decimal.Decimal
	symbol  string
}

func (s *stubSettings) DefaultTaxRate(context.Context, int64) decimal.Decimal { return s.taxRate }
func (s *stubSettings) CurrencySymbol(context.Context, int64) string          { return s.symbol }
func (s *stubSettings) Currency(context.Context, int64) string                { return "IDR" }
func (s *stubSettings) SetUserSetting(context.Context, int64, string, string) error {
	return nil
}
func (s *stubSettings) SetGlobalSetting(context.Context, string, string) error { return nil }
func (s *stubSettings) UserSettings(context.Context, int64) (map[string]string, error) {
	return nil, nil
}

var testClock = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestDepositService(repo *mockDepositRepository) *depositService {
	return &depositService{
		depositRepository: repo,
		settings:          &stubSettings{taxRate: decimal.NewFromFloat(20.0), symbol: "Rp"},
		logger:            logger.Nop(),
		now:               func() time.Time { return testClock },
	}
}

func testInput() models.DepositInput {
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

func TestDepositService_Create_AllocatesNextID(t *testing.T) {
	var inserted models.Deposit
	repo := &mockDepositRepository{
		listIDsFn: func(_ context.Context) ([]string, error) {
			return []string{"DEP001", "DEP005", "DEP002"}, nil
		},
		insertFn: func(_ context.Context, deposit models.Deposit) error {
			inserted = deposit
			return nil
		},
	}
	svc := newTestDepositService(repo)

	created, err := svc.Create(context.Background(), testInput(), 7)
	require.NoError(t, err)
	assert.Equal(t, "DEP006", created.DepositID)
	assert.Equal(t, "DEP006", inserted.DepositID)
	assert.Equal(t, int64(7), inserted.UserID)
}

func TestDepositService_Create_FirstID(t *testing.T) {
	repo := &mockDepositRepository{
		listIDsFn: func(_ context.Context) ([]string, error) { return nil, nil },
	}
	svc := newTestDepositService(repo)

	created, err := svc.Create(context.Background(), testInput(), 7)
	require.NoError(t, err)
	assert.Equal(t, "DEP001", created.DepositID)
}

func TestDepositService_Create_DerivesFinancialFields(t *testing.T) {
	svc := newTestDepositService(&mockDepositRepository{})

	created, err := svc.Create(context.Background(), testInput(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(365), created.DaysPeriod)
	assert.Equal(t, "550000", created.InterestBeforeTax.String())
	assert.Equal(t, "110000", created.TaxAmount.String())
	assert.Equal(t, "440000", created.InterestAfterTax.String())
	assert.Equal(t, "10440000", created.TotalMaturityAmount.String())
	assert.Equal(t, "1506.85", created.DailyInterestBeforeTax.String())
	assert.Equal(t, "1205.48", created.DailyInterestAfterTax.String())
	assert.False(t, created.IsMatured)
	assert.Equal(t, testClock, created.CreatedAt)
	assert.Equal(t, testClock, created.UpdatedAt)
}

func TestDepositService_Create_DefaultTaxRate(t *testing.T) {
	svc := newTestDepositService(&mockDepositRepository{})

	created, err := svc.Create(context.Background(), testInput(), 7)
	require.NoError(t, err)
	assert.Equal(t, "20", created.TaxRate.String())
}

func TestDepositService_Create_ExplicitTaxRate(t *testing.T) {
	svc := newTestDepositService(&mockDepositRepository{})

	input := testInput()
	rate := decimal.RequireFromString("15")
	input.TaxRate = &rate

	created, err := svc.Create(context.Background(), input, 7)
	require.NoError(t, err)
	assert.Equal(t, "15", created.TaxRate.String())
}

func TestDepositService_Create_IDCollision(t *testing.T) {
	repo := &mockDepositRepository{
		insertFn: func(_ context.Context, _ models.Deposit) error {
			return store.ErrDepositIDTaken
		},
	}
	svc := newTestDepositService(repo)

	_, err := svc.Create(context.Background(), testInput(), 7)
	assert.ErrorIs(t, err, store.ErrDepositIDTaken)
}

func TestDepositService_Update_PreservesIdentity(t *testing.T) {
	createdAt := time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)
	current := models.Deposit{
		DepositID: "DEP003",
		UserID:    7,
		CreatedAt: createdAt,
	}

	var updated models.Deposit
	repo := &mockDepositRepository{
		getFn: func(_ context.Context, depositID string, ownerID int64) (models.Deposit, error) {
			assert.Equal(t, "DEP003", depositID)
			assert.Equal(t, int64(7), ownerID)
			return current, nil
		},
		updateFn: func(_ context.Context, deposit models.Deposit, ownerID int64) error {
			updated = deposit
			assert.Equal(t, int64(7), ownerID)
			return nil
		},
	}
	svc := newTestDepositService(repo)

	input := testInput()
	input.BankName = "Mandiri"

	result, err := svc.Update(context.Background(), "DEP003", input, 7)
	require.NoError(t, err)
	assert.Equal(t, "DEP003", result.DepositID)
	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, createdAt, result.CreatedAt)
	assert.Equal(t, testClock, result.UpdatedAt)
	assert.Equal(t, "Mandiri", updated.BankName)
}

func TestDepositService_Update_NotFound(t *testing.T) {
	repo := &mockDepositRepository{
		getFn: func(_ context.Context, _ string, _ int64) (models.Deposit, error) {
			return models.Deposit{}, store.ErrDepositNotFound
		},
	}
	svc := newTestDepositService(repo)

	_, err := svc.Update(context.Background(), "DEP404", testInput(), 7)
	assert.ErrorIs(t, err, store.ErrDepositNotFound)
}

func TestDepositService_Summarize_AttachesCurrencySymbol(t *testing.T) {
	repo := &mockDepositRepository{
		summarizeFn: func(_ context.Context, ownerID int64) (models.SummaryStats, error) {
			assert.Equal(t, int64(7), ownerID)
			return models.SummaryStats{TotalDeposits: 2}, nil
		},
	}
	svc := newTestDepositService(repo)

	stats, err := svc.Summarize(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalDeposits)
	assert.Equal(t, "Rp", stats.CurrencySymbol)
}

func TestDepositService_Delete_NotFound(t *testing.T) {
	repo := &mockDepositRepository{
		deleteFn: func(_ context.Context, _ string, _ int64) error {
			return store.ErrDepositNotFound
		},
	}
	svc := newTestDepositService(repo)

	err := svc.Delete(context.Background(), "DEP404", 7)
	assert.ErrorIs(t, err, store.ErrDepositNotFound)
}

// A deposit whose maturity date is behind the clock is written matured.
func TestDepositService_Create_MaturedAtWrite(t *testing.T) {
	svc := newTestDepositService(&mockDepositRepository{})

	input := testInput()
	input.DepositDate = models.NewDate(2024, time.January, 10)
	input.MaturityDate = models.NewDate(2025, time.January, 10)

	created, err := svc.Create(context.Background(), input, 7)
	require.NoError(t, err)
	assert.True(t, created.IsMatured)
	assert.Equal(t, int64(366), created.DaysPeriod)
}
