package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/models"
)

// settingsRepository is the SQL-backed implementation of [SettingsRepository].
// Global settings live in "settings", per-user overrides in "user_settings".
type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	query, args, err := r.db.Builder().
		Select("value").
		From(models.Setting{}.TableName()).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryValue(ctx, query, args)
}

func (r *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(models.Setting{}.TableName()).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.SetSetting").Msg("error writing setting")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *settingsRepository) GetUserSetting(ctx context.Context, userID int64, key string) (string, error) {
	query, args, err := r.db.Builder().
		Select("value").
		From(models.UserSetting{}.TableName()).
		Where(sq.Eq{"user_id": userID, "key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryValue(ctx, query, args)
}

func (r *settingsRepository) SetUserSetting(ctx context.Context, userID int64, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(models.UserSetting{}.TableName()).
		Columns("user_id", "key", "value", "updated_at").
		Values(userID, key, value, time.Now()).
		Suffix("ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.SetUserSetting").Msg("error writing user setting")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *settingsRepository) queryValue(ctx context.Context, query string, args []any) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.queryValue").Msg("error reading setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}
