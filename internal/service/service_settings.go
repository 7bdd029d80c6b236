package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

// Hard-coded fallbacks used when neither a user override nor a global
// setting exists for a key.
var (
	fallbackDefaultTaxRate = decimal.NewFromFloat(20.0)

	fallbackCurrency       = "IDR"
	fallbackCurrencySymbol = "Rp"
)

// settingsService is the concrete implementation of SettingsService.
//
// Resolution order for every key: user override, then global setting, then
// hard-coded fallback. Resolution never fails; storage errors are logged and
// the fallback is returned.
type settingsService struct {
	settingsRepository store.SettingsRepository
	logger             *logger.Logger
}

// NewSettingsService constructs a SettingsService wired to the given
// repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// DefaultTaxRate returns the effective tax rate percentage applied to new
// deposits that do not carry an explicit rate.
func (s *settingsService) DefaultTaxRate(ctx context.Context, userID int64) decimal.Decimal {
	raw := s.resolve(ctx, userID, models.SettingDefaultTaxRate, fallbackDefaultTaxRate.String())

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("value", raw).Msg("stored tax rate is not numeric")
		return fallbackDefaultTaxRate
	}

	return rate
}

// CurrencySymbol returns the effective display symbol ("Rp").
func (s *settingsService) CurrencySymbol(ctx context.Context, userID int64) string {
	return s.resolve(ctx, userID, models.SettingCurrencySymbol, fallbackCurrencySymbol)
}

// Currency returns the effective ISO currency code ("IDR").
func (s *settingsService) Currency(ctx context.Context, userID int64) string {
	return s.resolve(ctx, userID, models.SettingCurrency, fallbackCurrency)
}

// SetUserSetting stores a per-user override for the given key.
func (s *settingsService) SetUserSetting(ctx context.Context, userID int64, key, value string) error {
	if key == "" {
		return ErrInvalidDataProvided
	}

	if err := s.settingsRepository.SetUserSetting(ctx, userID, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("user setting update ended with error")
		return fmt.Errorf("user setting update ended with error: %w", err)
	}

	return nil
}

// SetGlobalSetting stores a global value for the given key. Admin only.
func (s *settingsService) SetGlobalSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrInvalidDataProvided
	}

	if err := s.settingsRepository.SetSetting(ctx, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("setting update ended with error")
		return fmt.Errorf("setting update ended with error: %w", err)
	}

	return nil
}

// UserSettings returns the effective value of every well-known key for the
// given user.
func (s *settingsService) UserSettings(ctx context.Context, userID int64) (map[string]string, error) {
	return map[string]string{
		models.SettingCurrency:       s.Currency(ctx, userID),
		models.SettingCurrencySymbol: s.CurrencySymbol(ctx, userID),
		models.SettingDefaultTaxRate: s.DefaultTaxRate(ctx, userID).String(),
	}, nil
}

// resolve walks the user override, global setting, fallback chain for key.
// userID 0 skips the user layer.
func (s *settingsService) resolve(ctx context.Context, userID int64, key, fallback string) string {
	log := logger.FromContext(ctx)

	if userID != 0 {
		value, err := s.settingsRepository.GetUserSetting(ctx, userID, key)
		if err == nil {
			return value
		}
		if !errors.Is(err, store.ErrSettingNotFound) {
			log.Err(err).Str("key", key).Msg("user setting lookup ended with error")
		}
	}

	value, err := s.settingsRepository.GetSetting(ctx, key)
	if err == nil {
		return value
	}
	if !errors.Is(err, store.ErrSettingNotFound) {
		log.Err(err).Str("key", key).Msg("setting lookup ended with error")
	}

	return fallback
}
