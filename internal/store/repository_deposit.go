package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/models"
)

// depositColumns is the canonical column order of the deposits table. Insert
// and scan code must stay in sync with it.
var depositColumns = []string{
	"deposit_id",
	"user_id",
	"account_holder",
	"account_number",
	"bank_name",
	"principal_amount",
	"interest_rate",
	"deposit_date",
	"maturity_date",
	"tax_rate",
	"days_period",
	"time_period_years",
	"interest_before_tax",
	"tax_amount",
	"interest_after_tax",
	"total_maturity_amount",
	"daily_interest_before_tax",
	"daily_interest_after_tax",
	"is_matured",
	"created_at",
	"updated_at",
}

// depositRepository is the SQL-backed implementation of [DepositRepository].
//
// Owner scoping is applied uniformly through scoped(): an ownerID of 0 leaves
// the statement unfiltered, anything else appends a user_id predicate so that
// other users' deposits are indistinguishable from absent ones.
type depositRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDepositRepository constructs a [DepositRepository] backed by the
// provided database connection and logger.
func NewDepositRepository(db *DB, logger *logger.Logger) DepositRepository {
	logger.Debug().Msg("creating deposit repository")
	return &depositRepository{
		db:     db,
		logger: logger,
	}
}

func scoped(pred sq.Eq, ownerID int64) sq.Eq {
	if ownerID != 0 {
		pred["user_id"] = ownerID
	}
	return pred
}

func (r *depositRepository) Insert(ctx context.Context, deposit models.Deposit) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(deposit.TableName()).
		Columns(depositColumns...).
		Values(
			deposit.DepositID,
			deposit.UserID,
			deposit.AccountHolder,
			deposit.AccountNumber,
			deposit.BankName,
			deposit.PrincipalAmount,
			deposit.InterestRate,
			deposit.DepositDate,
			deposit.MaturityDate,
			deposit.TaxRate,
			deposit.DaysPeriod,
			deposit.TimePeriodYears,
			deposit.InterestBeforeTax,
			deposit.TaxAmount,
			deposit.InterestAfterTax,
			deposit.TotalMaturityAmount,
			deposit.DailyInterestBeforeTax,
			deposit.DailyInterestAfterTax,
			deposit.IsMatured,
			deposit.CreatedAt,
			deposit.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Err(err).Str("deposit_id", deposit.DepositID).Msg("deposit id collision")
			return ErrDepositIDTaken
		}
		log.Err(err).Str("func", "*depositRepository.Insert").Msg("error inserting deposit")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *depositRepository) ListIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("deposit_id").
		From(models.Deposit{}.TableName()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*depositRepository.ListIDs").Msg("error listing deposit ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *depositRepository) Get(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(depositColumns...).
		From(models.Deposit{}.TableName()).
		Where(scoped(sq.Eq{"deposit_id": depositID}, ownerID)).
		ToSql()
	if err != nil {
		return models.Deposit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deposit, err := scanDeposit(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deposit{}, ErrDepositNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*depositRepository.Get").Msg("error getting deposit")
		return models.Deposit{}, err
	}

	return deposit, nil
}

func (r *depositRepository) List(ctx context.Context, ownerID int64) ([]models.Deposit, error) {
	log := logger.FromContext(ctx)

	builder := r.db.Builder().
		Select(depositColumns...).
		From(models.Deposit{}.TableName()).
		OrderBy("created_at DESC")
	if ownerID != 0 {
		builder = builder.Where(sq.Eq{"user_id": ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*depositRepository.List").Msg("error listing deposits")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var deposits []models.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}

	return deposits, rows.Err()
}

func (r *depositRepository) Update(ctx context.Context, deposit models.Deposit, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(deposit.TableName()).
		SetMap(map[string]any{
			"account_holder":            deposit.AccountHolder,
			"account_number":            deposit.AccountNumber,
			"bank_name":                 deposit.BankName,
			"principal_amount":          deposit.PrincipalAmount,
			"interest_rate":             deposit.InterestRate,
			"deposit_date":              deposit.DepositDate,
			"maturity_date":             deposit.MaturityDate,
			"tax_rate":                  deposit.TaxRate,
			"days_period":               deposit.DaysPeriod,
			"time_period_years":         deposit.TimePeriodYears,
			"interest_before_tax":       deposit.InterestBeforeTax,
			"tax_amount":                deposit.TaxAmount,
			"interest_after_tax":        deposit.InterestAfterTax,
			"total_maturity_amount":     deposit.TotalMaturityAmount,
			"daily_interest_before_tax": deposit.DailyInterestBeforeTax,
			"daily_interest_after_tax":  deposit.DailyInterestAfterTax,
			"is_matured":                deposit.IsMatured,
			"updated_at":                deposit.UpdatedAt,
		}).
		Where(scoped(sq.Eq{"deposit_id": deposit.DepositID}, ownerID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*depositRepository.Update").Msg("error updating deposit")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDepositNotFound
	}

	return nil
}

func (r *depositRepository) Delete(ctx context.Context, depositID string, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Deposit{}.TableName()).
		Where(scoped(sq.Eq{"deposit_id": depositID}, ownerID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*depositRepository.Delete").Msg("error deleting deposit")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDepositNotFound
	}

	return nil
}

// Summarize reduces the scoped deposit set in SQL.
//
// The count is queried first and an empty set short-circuits to all-zero
// stats, so the AVG aggregate never runs over zero rows. Matured and active
// counts come from the stored is_matured flag as written at each deposit's
// last calculation, deliberately not re-evaluated against the current time.
func (r *depositRepository) Summarize(ctx context.Context, ownerID int64) (models.SummaryStats, error) {
	log := logger.FromContext(ctx)

	countBuilder := r.db.Builder().
		Select("COUNT(*)").
		From(models.Deposit{}.TableName())
	if ownerID != 0 {
		countBuilder = countBuilder.Where(sq.Eq{"user_id": ownerID})
	}

	query, args, err := countBuilder.ToSql()
	if err != nil {
		return models.SummaryStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*depositRepository.Summarize").Msg("error counting deposits")
		return models.SummaryStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 {
		return models.ZeroSummary(""), nil
	}

	aggBuilder := r.db.Builder().
		Select(
			"SUM(principal_amount)",
			"SUM(interest_before_tax)",
			"SUM(interest_after_tax)",
			"SUM(tax_amount)",
			"SUM(total_maturity_amount)",
			"AVG(interest_rate)",
			"SUM(CASE WHEN is_matured THEN 1 ELSE 0 END)",
			"SUM(CASE WHEN is_matured THEN 0 ELSE 1 END)",
		).
		From(models.Deposit{}.TableName())
	if ownerID != 0 {
		aggBuilder = aggBuilder.Where(sq.Eq{"user_id": ownerID})
	}

	query, args, err = aggBuilder.ToSql()
	if err != nil {
		return models.SummaryStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stats := models.SummaryStats{TotalDeposits: total}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalPrincipal,
		&stats.TotalInterestBeforeTax,
		&stats.TotalInterestAfterTax,
		&stats.TotalTaxPaid,
		&stats.TotalMaturityAmount,
		&stats.AverageInterestRate,
		&stats.MaturedDeposits,
		&stats.ActiveDeposits,
	)
	if err != nil {
		log.Err(err).Str("func", "*depositRepository.Summarize").Msg("error aggregating deposits")
		return models.SummaryStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	stats.TotalPrincipal = stats.TotalPrincipal.Round(2)
	stats.TotalInterestBeforeTax = stats.TotalInterestBeforeTax.Round(2)
	stats.TotalInterestAfterTax = stats.TotalInterestAfterTax.Round(2)
	stats.TotalTaxPaid = stats.TotalTaxPaid.Round(2)
	stats.TotalMaturityAmount = stats.TotalMaturityAmount.Round(2)
	stats.AverageInterestRate = stats.AverageInterestRate.Round(4)

	return stats, nil
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanDeposit(row scannable) (models.Deposit, error) {
	var deposit models.Deposit
	err := row.Scan(
		&deposit.DepositID,
		&deposit.UserID,
		&deposit.AccountHolder,
		&deposit.AccountNumber,
		&deposit.BankName,
		&deposit.PrincipalAmount,
		&deposit.InterestRate,
		&deposit.DepositDate,
		&deposit.MaturityDate,
		&deposit.TaxRate,
		&deposit.DaysPeriod,
		&deposit.TimePeriodYears,
		&deposit.InterestBeforeTax,
		&deposit.TaxAmount,
		&deposit.InterestAfterTax,
		&deposit.TotalMaturityAmount,
		&deposit.DailyInterestBeforeTax,
		&deposit.DailyInterestAfterTax,
		&deposit.IsMatured,
		&deposit.CreatedAt,
		&deposit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Deposit{}, err
		}
		return models.Deposit{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deposit, nil
}
