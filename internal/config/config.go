// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The main entry point is [GetStructuredConfig]. Sources are merged in
// priority order (env over flags over JSON) using mergo, then validated and
// defaulted.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and bootstrap settings.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Client holds settings for the TUI client binary.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration controlling authentication
// tokens and first-run bootstrap.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid ("24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BootstrapAdminPassword is the password given to the initial admin
	// account created when the users table is empty at startup.
	// Env: APP_BOOTSTRAP_ADMIN_PASSWORD
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps the duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence backend configuration.
type Storage struct {
	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds connection settings for the relational database.
type DBConfig struct {
	// Driver selects the backend: "pgx" (PostgreSQL) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name: a postgres:// URI for pgx or a file
	// path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Client holds settings used by the TUI client only.
type Client struct {
	// BaseURL is the server address the client talks to.
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout caps every client HTTP call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied after merging when the corresponding value is unset.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultDriver         = "sqlite3"
	defaultDSN            = "data/deposito.db"
	defaultTokenIssuer    = "deposito"
	defaultTokenDuration  = 24 * time.Hour
	defaultClientBaseURL  = "http://localhost:8080"
	defaultClientTimeout  = 15 * time.Second
	defaultAdminPassword  = "admin123"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BootstrapAdminPassword == "" {
		cfg.App.BootstrapAdminPassword = defaultAdminPassword
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = defaultClientBaseURL
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultClientTimeout
	}
}

// validate checks that the final merged config satisfies the invariants the
// server cannot start without.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDriver
	}

	return nil
}

// GetStructuredConfig loads, merges, defaults, and validates the application
// configuration from all supported sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
