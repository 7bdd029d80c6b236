package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/models"
)

// bankRepository is the SQL-backed implementation of [BankRepository],
// covering both the global banks table and the per-user user_banks overrides.
type bankRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewBankRepository(db *DB, logger *logger.Logger) BankRepository {
	logger.Debug().Msg("creating bank repository")
	return &bankRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bankRepository) ListBanks(ctx context.Context) ([]models.Bank, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("name", "default_interest_rate", "created_at", "updated_at").
		From(models.Bank{}.TableName()).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bankRepository.ListBanks").Msg("error listing banks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var banks []models.Bank
	for rows.Next() {
		var bank models.Bank
		if err = rows.Scan(&bank.Name, &bank.DefaultInterestRate, &bank.CreatedAt, &bank.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		banks = append(banks, bank)
	}

	return banks, rows.Err()
}

func (r *bankRepository) AddBank(ctx context.Context, bank models.Bank) error {
	log := logger.FromContext(ctx)

	now := time.Now()
	query, args, err := r.db.Builder().
		Insert(bank.TableName()).
		Columns("name", "default_interest_rate", "created_at", "updated_at").
		Values(bank.Name, bank.DefaultInterestRate, now, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bank %q: %w", bank.Name, ErrBankAlreadyExists)
		}
		log.Err(err).Str("func", "*bankRepository.AddBank").Msg("error adding bank")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *bankRepository) UpdateBank(ctx context.Context, bank models.Bank) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(bank.TableName()).
		Set("default_interest_rate", bank.DefaultInterestRate).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"name": bank.Name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingMatch(ctx, log, query, args, "*bankRepository.UpdateBank")
}

func (r *bankRepository) DeleteBank(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Bank{}.TableName()).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingMatch(ctx, log, query, args, "*bankRepository.DeleteBank")
}

func (r *bankRepository) ListUserBanks(ctx context.Context, userID int64) ([]models.UserBank, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("user_id", "bank_name", "default_interest_rate", "created_at", "updated_at").
		From(models.UserBank{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("bank_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bankRepository.ListUserBanks").Msg("error listing user banks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var banks []models.UserBank
	for rows.Next() {
		var bank models.UserBank
		if err = rows.Scan(&bank.UserID, &bank.BankName, &bank.DefaultInterestRate, &bank.CreatedAt, &bank.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		banks = append(banks, bank)
	}

	return banks, rows.Err()
}

// UpsertUserBank inserts or replaces a per-user bank override. Both dialects
// support the ON CONFLICT clause used here.
func (r *bankRepository) UpsertUserBank(ctx context.Context, bank models.UserBank) error {
	log := logger.FromContext(ctx)

	now := time.Now()
	query, args, err := r.db.Builder().
		Insert(bank.TableName()).
		Columns("user_id", "bank_name", "default_interest_rate", "created_at", "updated_at").
		Values(bank.UserID, bank.BankName, bank.DefaultInterestRate, now, now).
		Suffix("ON CONFLICT (user_id, bank_name) DO UPDATE SET default_interest_rate = excluded.default_interest_rate, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bankRepository.UpsertUserBank").Msg("error upserting user bank")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *bankRepository) DeleteUserBank(ctx context.Context, userID int64, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.UserBank{}.TableName()).
		Where(sq.Eq{"user_id": userID, "bank_name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingMatch(ctx, log, query, args, "*bankRepository.DeleteUserBank")
}

func (r *bankRepository) execExpectingMatch(ctx context.Context, log *logger.Logger, query string, args []any, caller string) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBankNotFound
	}

	return nil
}
