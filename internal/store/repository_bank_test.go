package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"

	"github.com/adiwinata/deposito/models"
)

func newTestBankRepo(t *testing.T) (*bankRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	testDB, mock, db := newTestDB(t, "pgx")
	repo := &bankRepository{db: testDB, logger: testDB.logger}
	return repo, mock, db
}

func TestListBanks_Success(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"name", "default_interest_rate", "created_at", "updated_at"}).
		AddRow("BCA", "5.5", now, now).
		AddRow("Mandiri", "6.0", now, now)

	mock.ExpectQuery("SELECT (.+) FROM banks").
		WillReturnRows(rows)

	banks, err := repo.ListBanks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(banks) != 2 {
		t.Fatalf("expected 2 banks, got %d", len(banks))
	}
	if want := decimal.RequireFromString("6.0"); !banks[1].DefaultInterestRate.Equal(want) {
		t.Errorf("expected rate %s, got %s", want, banks[1].DefaultInterestRate)
	}
}

func TestAddBank_AlreadyExists(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO banks").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.AddBank(ctx, models.Bank{Name: "BCA"})
	if !errors.Is(err, ErrBankAlreadyExists) {
		t.Fatalf("expected ErrBankAlreadyExists, got %v", err)
	}
}

func TestUpdateBank_NotFound(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE banks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBank(ctx, models.Bank{Name: "Ghost Bank"})
	if !errors.Is(err, ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

func TestDeleteBank_Success(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM banks").
		WithArgs("BCA").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteBank(ctx, "BCA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListUserBanks_Scoped(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "bank_name", "default_interest_rate", "created_at", "updated_at"}).
		AddRow(7, "BNI", "4.75", now, now)

	mock.ExpectQuery("SELECT (.+) FROM user_banks").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	banks, err := repo.ListUserBanks(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(banks) != 1 || banks[0].BankName != "BNI" {
		t.Fatalf("unexpected user banks: %v", banks)
	}
}

func TestUpsertUserBank_Success(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO user_banks").
		WillReturnResult(sqlmock.NewResult(0, 1))

	bank := models.UserBank{UserID: 7, BankName: "BNI", DefaultInterestRate: decimal.RequireFromString("4.75")}
	if err := repo.UpsertUserBank(ctx, bank); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUserBank_NotFound(t *testing.T) {
	repo, mock, db := newTestBankRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM user_banks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUserBank(ctx, 7, "Ghost Bank")
	if !errors.Is(err, ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}
