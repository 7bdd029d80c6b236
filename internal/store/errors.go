package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when creating a user fails because the
	// username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup by id or username
	// matches no record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrDepositNotFound is returned when a get, update or delete targets
	// a deposit id that does not exist within the requested owner scope.
	// A deposit owned by a different user is indistinguishable from an
	// absent one at this boundary.
	ErrDepositNotFound = errors.New("deposit was not found")

	// ErrDepositIDTaken is returned when inserting a deposit violates the
	// primary key constraint. This is how a lost allocation race surfaces:
	// two concurrent creates observing the same maximum suffix collide
	// here instead of silently overwriting each other.
	ErrDepositIDTaken = errors.New("deposit id already exists")

	// ErrBankNotFound is returned when an update or delete of a bank row
	// (global or per-user) affects zero rows.
	ErrBankNotFound = errors.New("bank was not found")

	// ErrBankAlreadyExists is returned when inserting a global bank whose
	// name is already registered.
	ErrBankAlreadyExists = errors.New("bank already exists")

	// ErrSettingNotFound is returned when a requested setting key has no
	// row at the queried scope. Providers treat it as "fall back".
	ErrSettingNotFound = errors.New("setting was not found")
)

// Low-level database operation errors. These wrap driver failures that occur
// before any domain meaning can be attached.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a
	// statement into SQL and arguments.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
