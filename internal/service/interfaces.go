package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/adiwinata/deposito/models"
)

// AuthService handles registration, login, token lifecycle and user management.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// EnsureBootstrapAdmin creates the initial admin account when the user
	// table is empty, so a fresh installation is usable immediately.
	EnsureBootstrapAdmin(ctx context.Context) error

	CreateUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserPassword(ctx context.Context, userID int64, newPassword string) error
	DeleteUser(ctx context.Context, actorID, userID int64) error
}

// DepositService orchestrates deposit CRUD, identifier allocation and the
// derived-field recalculation around the store.
//
// ownerID scopes every operation to one user's deposits; ownerID 0 lifts the
// scope for administrative access.
type DepositService interface {
	Create(ctx context.Context, input models.DepositInput, ownerID int64) (models.Deposit, error)
	Get(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error)
	List(ctx context.Context, ownerID int64) ([]models.Deposit, error)
	Update(ctx context.Context, depositID string, input models.DepositInput, ownerID int64) (models.Deposit, error)
	Delete(ctx context.Context, depositID string, ownerID int64) error
	Summarize(ctx context.Context, ownerID int64) (models.SummaryStats, error)
}

// BankService resolves the bank list shown to a user and manages both the
// per-user overrides and the global defaults.
type BankService interface {
	// EffectiveBanks returns the user's own bank list when present,
	// falling back to the global list otherwise.
	EffectiveBanks(ctx context.Context, userID int64) ([]models.Bank, error)

	UserBanks(ctx context.Context, userID int64) ([]models.Bank, error)
	AddUserBank(ctx context.Context, userID int64, bank models.Bank) error
	DeleteUserBank(ctx context.Context, userID int64, bankName string) error

	GlobalBanks(ctx context.Context) ([]models.Bank, error)
	AddGlobalBank(ctx context.Context, bank models.Bank) error
	UpdateGlobalBank(ctx context.Context, bank models.Bank) error
	DeleteGlobalBank(ctx context.Context, bankName string) error
}

// SettingsService resolves effective settings with per-user overrides on top
// of global defaults, and hard-coded fallbacks beneath both.
type SettingsService interface {
	DefaultTaxRate(ctx context.Context, userID int64) decimal.Decimal
	CurrencySymbol(ctx context.Context, userID int64) string
	Currency(ctx context.Context, userID int64) string

	SetUserSetting(ctx context.Context, userID int64, key, value string) error
	SetGlobalSetting(ctx context.Context, key, value string) error
	UserSettings(ctx context.Context, userID int64) (map[string]string, error)
}
