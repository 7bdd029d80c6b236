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

var userColumns = []string{"id", "username", "password_hash", "is_admin", "created_at", "updated_at"}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - uniqueness violation on username → [ErrUsernameTaken]
//   - any other driver-level error → wrapped as "unexpected DB error"
//
// The id retrieval differs per dialect: PostgreSQL uses a RETURNING clause,
// SQLite the driver's LastInsertId.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	builder := r.db.Builder().
		Insert(user.TableName()).
		Columns("username", "password_hash", "is_admin", "created_at", "updated_at").
		Values(user.Username, user.PasswordHash, user.IsAdmin, user.CreatedAt, user.UpdatedAt)

	if r.db.IsPostgres() {
		query, args, err := builder.Suffix("RETURNING id").ToSql()
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			if isUniqueViolation(err) {
				return models.User{}, ErrUsernameTaken
			}
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}

		return user, nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if user.UserID, err = result.LastInsertId(); err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, pred sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(pred).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	query, args, err := r.db.Builder().
		Select("COUNT(*)").
		From(models.User{}.TableName()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Msg("error updating password")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
