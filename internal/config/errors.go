package config

import "errors"

var (
	// ErrMissingTokenSignKey is returned by validation when no JWT signing
	// key was provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither "pgx" nor "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
