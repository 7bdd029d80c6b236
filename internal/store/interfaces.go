package store

import (
	"context"

	"github.com/adiwinata/deposito/models"
)

// UserRepository owns persistence of user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// DepositRepository owns persistence of deposit records. Methods taking an
// ownerID treat 0 as "unscoped": no owner filter is applied (global/admin
// paths). Any other value restricts the operation to deposits owned by that
// user; a deposit owned by someone else behaves as if it did not exist.
type DepositRepository interface {
	// Insert persists a fully calculated deposit record. A primary key
	// collision (allocator race) is reported as [ErrDepositIDTaken].
	Insert(ctx context.Context, deposit models.Deposit) error

	// ListIDs returns every persisted deposit id, owner-agnostic. The id
	// allocator recomputes its maximum from this set on every create.
	ListIDs(ctx context.Context) ([]string, error)

	Get(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error)

	// List returns deposits ordered by creation time descending.
	List(ctx context.Context, ownerID int64) ([]models.Deposit, error)

	// Update replaces all mutable columns of the scoped record.
	// [ErrDepositNotFound] when no row matches.
	Update(ctx context.Context, deposit models.Deposit, ownerID int64) error

	// Delete removes the scoped record. [ErrDepositNotFound] when no row
	// matches; the store is left unchanged in that case.
	Delete(ctx context.Context, depositID string, ownerID int64) error

	// Summarize reduces the scoped deposit set to portfolio statistics
	// using SQL SUM/AVG/COUNT. An empty set yields all-zero stats.
	Summarize(ctx context.Context, ownerID int64) (models.SummaryStats, error)
}

// BankRepository owns the global bank list and the per-user overrides.
type BankRepository interface {
	ListBanks(ctx context.Context) ([]models.Bank, error)
	AddBank(ctx context.Context, bank models.Bank) error
	UpdateBank(ctx context.Context, bank models.Bank) error
	DeleteBank(ctx context.Context, name string) error

	ListUserBanks(ctx context.Context, userID int64) ([]models.UserBank, error)
	UpsertUserBank(ctx context.Context, bank models.UserBank) error
	DeleteUserBank(ctx context.Context, userID int64, name string) error
}

// SettingsRepository owns the global and per-user key/value settings.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetUserSetting(ctx context.Context, userID int64, key string) (string, error)
	SetUserSetting(ctx context.Context, userID int64, key, value string) error
}
