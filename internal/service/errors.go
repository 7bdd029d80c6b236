package service

import "errors"

// Sentinel errors returned by the service layer. Handlers match on these to
// choose HTTP status codes.
var (
	// ErrInvalidDataProvided is returned when required request fields are
	// empty or malformed before any storage call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when login credentials do not match the
	// stored bcrypt hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when JWT generation fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure,
	// so callers never need to inspect low-level jwt errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrCannotDeleteSelf is returned when an admin attempts to delete
	// their own account.
	ErrCannotDeleteSelf = errors.New("cannot delete own account")

	// ErrAdminRequired is returned when a non-admin user reaches an
	// admin-only operation.
	ErrAdminRequired = errors.New("admin access required")
)
