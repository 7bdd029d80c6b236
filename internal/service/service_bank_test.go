package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

type mockBankRepository struct {
	listBanksFn      func(ctx context.Context) ([]models.Bank, error)
	addBankFn        func(ctx context.Context, bank models.Bank) error
	updateBankFn     func(ctx context.Context, bank models.Bank) error
	deleteBankFn     func(ctx context.Context, name string) error
	listUserBanksFn  func(ctx context.Context, userID int64) ([]models.UserBank, error)
	upsertUserBankFn func(ctx context.Context, bank models.UserBank) error
	deleteUserBankFn func(ctx context.Context, userID int64, name string) error
}

func (m *mockBankRepository) ListBanks(ctx context.Context) ([]models.Bank, error) {
	if m.listBanksFn != nil {
		return m.listBanksFn(ctx)
	}
	return nil, nil
}

func (m *mockBankRepository) AddBank(ctx context.Context, bank models.Bank) error {
	if m.addBankFn != nil {
		return m.addBankFn(ctx, bank)
	}
	return nil
}

func (m *mockBankRepository) UpdateBank(ctx context.Context, bank models.Bank) error {
	if m.updateBankFn != nil {
		return m.updateBankFn(ctx, bank)
	}
	return nil
}

func (m *mockBankRepository) DeleteBank(ctx context.Context, name string) error {
	if m.deleteBankFn != nil {
		return m.deleteBankFn(ctx, name)
	}
	return nil
}

func (m *mockBankRepository) ListUserBanks(ctx context.Context, userID int64) ([]models.UserBank, error) {
	if m.listUserBanksFn != nil {
		return m.listUserBanksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockBankRepository) UpsertUserBank(ctx context.Context, bank models.UserBank) error {
	if m.upsertUserBankFn != nil {
		return m.upsertUserBankFn(ctx, bank)
	}
	return nil
}

func (m *mockBankRepository) DeleteUserBank(ctx context.Context, userID int64, name string) error {
	if m.deleteUserBankFn != nil {
		return m.deleteUserBankFn(ctx, userID, name)
	}
	return nil
}

func newTestBankService(repo *mockBankRepository) BankService {
	return NewBankService(repo, logger.Nop())
}

func TestBankService_EffectiveBanks_PersonalWins(t *testing.T) {
	repo := &mockBankRepository{
		listUserBanksFn: func(_ context.Context, userID int64) ([]models.UserBank, error) {
			assert.Equal(t, int64(7), userID)
			return []models.UserBank{{UserID: 7, BankName: "BNI"}}, nil
		},
		listBanksFn: func(_ context.Context) ([]models.Bank, error) {
			t.Fatal("global list must not be consulted when overrides exist")
			return nil, nil
		},
	}
	svc := newTestBankService(repo)

	banks, err := svc.EffectiveBanks(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "BNI", banks[0].Name)
}

func TestBankService_EffectiveBanks_FallsBackToGlobal(t *testing.T) {
	repo := &mockBankRepository{
		listUserBanksFn: func(_ context.Context, _ int64) ([]models.UserBank, error) {
			return nil, nil
		},
		listBanksFn: func(_ context.Context) ([]models.Bank, error) {
			return []models.Bank{{Name: "BCA"}, {Name: "Mandiri"}}, nil
		},
	}
	svc := newTestBankService(repo)

	banks, err := svc.EffectiveBanks(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "BCA", banks[0].Name)
}

func TestBankService_AddUserBank_EmptyName(t *testing.T) {
	svc := newTestBankService(&mockBankRepository{})

	err := svc.AddUserBank(context.Background(), 7, models.Bank{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestBankService_AddUserBank_Upserts(t *testing.T) {
	var upserted models.UserBank
	repo := &mockBankRepository{
		upsertUserBankFn: func(_ context.Context, bank models.UserBank) error {
			upserted = bank
			return nil
		},
	}
	svc := newTestBankService(repo)

	rate := decimal.RequireFromString("4.75")
	err := svc.AddUserBank(context.Background(), 7, models.Bank{Name: "BNI", DefaultInterestRate: rate})
	require.NoError(t, err)
	assert.Equal(t, int64(7), upserted.UserID)
	assert.Equal(t, "BNI", upserted.BankName)
	assert.True(t, upserted.DefaultInterestRate.Equal(rate))
}

func TestBankService_AddGlobalBank_Conflict(t *testing.T) {
	repo := &mockBankRepository{
		addBankFn: func(_ context.Context, _ models.Bank) error {
			return store.ErrBankAlreadyExists
		},
	}
	svc := newTestBankService(repo)

	err := svc.AddGlobalBank(context.Background(), models.Bank{Name: "BCA"})
	assert.ErrorIs(t, err, store.ErrBankAlreadyExists)
}

func TestBankService_DeleteGlobalBank_NotFound(t *testing.T) {
	repo := &mockBankRepository{
		deleteBankFn: func(_ context.Context, _ string) error {
			return store.ErrBankNotFound
		},
	}
	svc := newTestBankService(repo)

	err := svc.DeleteGlobalBank(context.Background(), "Ghost Bank")
	assert.ErrorIs(t, err, store.ErrBankNotFound)
}

func TestBankService_UpdateGlobalBank_EmptyName(t *testing.T) {
	svc := newTestBankService(&mockBankRepository{})

	err := svc.UpdateGlobalBank(context.Background(), models.Bank{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
