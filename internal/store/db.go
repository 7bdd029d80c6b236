// Package store implements the persistence layer on top of database/sql.
// It supports two backends: PostgreSQL via the pgx stdlib driver and a local
// SQLite file database. Repositories are thin, deterministic mappers between
// SQL rows and the models package; all domain decisions live in the service
// layer.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/adiwinata/deposito/internal/config"
	"github.com/adiwinata/deposito/internal/logger"
)

// DB wraps *sql.DB with the dialect-specific pieces repositories need: a
// squirrel statement builder with the right placeholder format and the driver
// name used to pick per-dialect SQL where unavoidable.
type DB struct {
	*sql.DB

	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens a connection to the configured database, pings it, and
// returns a dialect-aware DB handle.
//
// cfg.Driver selects the backend: "pgx" for PostgreSQL, "sqlite3" for a local
// file database. The connection pool is used with scoped acquisition: each
// repository call borrows a connection for the duration of the call only.
func NewConnect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		driver:  cfg.Driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholderFormat(cfg.Driver)),
		logger:  log,
	}, nil
}

func placeholderFormat(driver string) sq.PlaceholderFormat {
	if driver == "pgx" {
		return sq.Dollar
	}
	return sq.Question
}

// Builder returns the dialect-aware squirrel statement builder.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// IsPostgres reports whether the underlying driver is pgx. Used for the few
// statements whose syntax differs between the two supported dialects.
func (db *DB) IsPostgres() bool {
	return db.driver == "pgx"
}
