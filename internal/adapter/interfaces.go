// Package adapter provides the transport layer used by the TUI client to talk
// to the deposito server.
//
// The primary abstraction is [ServerAdapter], which decouples the client from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/adiwinata/deposito/models"
)

// ServerAdapter defines transport-agnostic communication with the deposito
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)

	CreateDeposit(ctx context.Context, input models.DepositInput) (models.Deposit, error)
	ListDeposits(ctx context.Context) ([]models.Deposit, error)
	GetDeposit(ctx context.Context, depositID string) (models.Deposit, error)
	UpdateDeposit(ctx context.Context, depositID string, input models.DepositInput) (models.Deposit, error)
	DeleteDeposit(ctx context.Context, depositID string) error
	Summary(ctx context.Context) (models.SummaryStats, error)

	ListBanks(ctx context.Context) ([]models.Bank, error)

	Settings(ctx context.Context) (map[string]string, error)
}
