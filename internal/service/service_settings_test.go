package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

type mockSettingsRepository struct {
	getSettingFn     func(ctx context.Context, key string) (string, error)
	setSettingFn     func(ctx context.Context, key, value string) error
	getUserSettingFn func(ctx context.Context, userID int64, key string) (string, error)
	setUserSettingFn func(ctx context.Context, userID int64, key, value string) error
}

func (m *mockSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.getSettingFn != nil {
		return m.getSettingFn(ctx, key)
	}
	return "", store.ErrSettingNotFound
}

func (m *mockSettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	if m.setSettingFn != nil {
		return m.setSettingFn(ctx, key, value)
	}
	return nil
}

func (m *mockSettingsRepository) GetUserSetting(ctx context.Context, userID int64, key string) (string, error) {
	if m.getUserSettingFn != nil {
		return m.getUserSettingFn(ctx, userID, key)
	}
	return "", store.ErrSettingNotFound
}

func (m *mockSettingsRepository) SetUserSetting(ctx context.Context, userID int64, key, value string) error {
	if m.setUserSettingFn != nil {
		return m.setUserSettingFn(ctx, userID, key, value)
	}
	return nil
}

func newTestSettingsService(repo *mockSettingsRepository) SettingsService {
	return NewSettingsService(repo, logger.Nop())
}

func TestSettingsService_UserOverrideWins(t *testing.T) {
	repo := &mockSettingsRepository{
		getUserSettingFn: func(_ context.Context, userID int64, key string) (string, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.SettingCurrencySymbol, key)
			return "$", nil
		},
		getSettingFn: func(_ context.Context, _ string) (string, error) {
			t.Fatal("global setting must not be consulted when an override exists")
			return "", nil
		},
	}
	svc := newTestSettingsService(repo)

	assert.Equal(t, "$", svc.CurrencySymbol(context.Background(), 7))
}

func TestSettingsService_GlobalWhenNoOverride(t *testing.T) {
	repo := &mockSettingsRepository{
		getSettingFn: func(_ context.Context, key string) (string, error) {
			assert.Equal(t, models.SettingCurrency, key)
			return "USD", nil
		},
	}
	svc := newTestSettingsService(repo)

	assert.Equal(t, "USD", svc.Currency(context.Background(), 7))
}

func TestSettingsService_FallbackWhenUnset(t *testing.T) {
	svc := newTestSettingsService(&mockSettingsRepository{})
	ctx := context.Background()

	assert.Equal(t, "IDR", svc.Currency(ctx, 7))
	assert.Equal(t, "Rp", svc.CurrencySymbol(ctx, 7))
	assert.Equal(t, "20", svc.DefaultTaxRate(ctx, 7).String())
}

// userID 0 must not hit the per-user layer at all.
func TestSettingsService_UnscopedSkipsUserLayer(t *testing.T) {
	repo := &mockSettingsRepository{
		getUserSettingFn: func(_ context.Context, _ int64, _ string) (string, error) {
			t.Fatal("user layer must be skipped for userID 0")
			return "", nil
		},
		getSettingFn: func(_ context.Context, _ string) (string, error) {
			return "EUR", nil
		},
	}
	svc := newTestSettingsService(repo)

	assert.Equal(t, "EUR", svc.Currency(context.Background(), 0))
}

func TestSettingsService_DefaultTaxRate_NonNumericFallsBack(t *testing.T) {
	repo := &mockSettingsRepository{
		getSettingFn: func(_ context.Context, _ string) (string, error) {
			return "not a number", nil
		},
	}
	svc := newTestSettingsService(repo)

	assert.Equal(t, "20", svc.DefaultTaxRate(context.Background(), 7).String())
}

// Storage failures degrade to the fallback instead of surfacing.
func TestSettingsService_ResolutionNeverFails(t *testing.T) {
	repo := &mockSettingsRepository{
		getUserSettingFn: func(_ context.Context, _ int64, _ string) (string, error) {
			return "", assert.AnError
		},
		getSettingFn: func(_ context.Context, _ string) (string, error) {
			return "", assert.AnError
		},
	}
	svc := newTestSettingsService(repo)

	assert.Equal(t, "Rp", svc.CurrencySymbol(context.Background(), 7))
}

func TestSettingsService_SetUserSetting_EmptyKey(t *testing.T) {
	svc := newTestSettingsService(&mockSettingsRepository{})

	err := svc.SetUserSetting(context.Background(), 7, "", "x")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSettingsService_SetGlobalSetting_Writes(t *testing.T) {
	var wroteKey, wroteValue string
	repo := &mockSettingsRepository{
		setSettingFn: func(_ context.Context, key, value string) error {
			wroteKey, wroteValue = key, value
			return nil
		},
	}
	svc := newTestSettingsService(repo)

	require.NoError(t, svc.SetGlobalSetting(context.Background(), models.SettingDefaultTaxRate, "15.0"))
	assert.Equal(t, models.SettingDefaultTaxRate, wroteKey)
	assert.Equal(t, "15.0", wroteValue)
}

func TestSettingsService_UserSettings_EffectiveValues(t *testing.T) {
	repo := &mockSettingsRepository{
		getUserSettingFn: func(_ context.Context, _ int64, key string) (string, error) {
			if key == models.SettingDefaultTaxRate {
				return "12.5", nil
			}
			return "", store.ErrSettingNotFound
		},
	}
	svc := newTestSettingsService(repo)

	settings, err := svc.UserSettings(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "12.5", settings[models.SettingDefaultTaxRate])
	assert.Equal(t, "IDR", settings[models.SettingCurrency])
	assert.Equal(t, "Rp", settings[models.SettingCurrencySymbol])
}
