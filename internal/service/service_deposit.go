package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adiwinata/deposito/internal/finance"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

// depositService is the concrete implementation of DepositService.
//
// It owns the write path of a deposit record: identifier allocation, default
// tax-rate resolution and derived-field recalculation all happen here before
// the record reaches the store.
type depositService struct {
	depositRepository store.DepositRepository
	settings          SettingsService
	logger            *logger.Logger

	// now is the clock used for derived-field evaluation. Swappable in tests.
	now func() time.Time
}

// NewDepositService constructs a DepositService wired to the given repository
// and settings resolver.
func NewDepositService(depositRepository store.DepositRepository, settings SettingsService, logger *logger.Logger) DepositService {
	return &depositService{
		depositRepository: depositRepository,
		settings:          settings,
		logger:            logger,
		now:               time.Now,
	}
}

// Create allocates the next sequential deposit id, resolves the effective tax
// rate when the input leaves it unset, computes all derived fields at the
// current instant and persists the record.
//
// The id allocator recomputes its maximum from the full persisted id set, so
// a concurrent create may race for the same id; the store reports the loser
// with store.ErrDepositIDTaken and the caller may simply retry.
func (d *depositService) Create(ctx context.Context, input models.DepositInput, ownerID int64) (models.Deposit, error) {
	log := logger.FromContext(ctx)

	existingIDs, err := d.depositRepository.ListIDs(ctx)
	if err != nil {
		log.Err(err).Msg("deposit id listing ended with error")
		return models.Deposit{}, fmt.Errorf("deposit id listing ended with error: %w", err)
	}

	now := d.now()
	deposit := d.fromInput(ctx, input, ownerID)
	deposit.DepositID = finance.NextDepositID(existingIDs)
	deposit.CreatedAt = now
	deposit.UpdatedAt = now
	finance.Recalculate(&deposit, now)

	if err := d.depositRepository.Insert(ctx, deposit); err != nil {
		log.Err(err).Str("deposit_id", deposit.DepositID).Msg("deposit creation ended with error")
		return models.Deposit{}, fmt.Errorf("deposit creation ended with error: %w", err)
	}

	return deposit, nil
}

// Get loads a single deposit scoped to ownerID.
func (d *depositService) Get(ctx context.Context, depositID string, ownerID int64) (models.Deposit, error) {
	deposit, err := d.depositRepository.Get(ctx, depositID, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("deposit_id", depositID).Msg("deposit lookup ended with error")
		return models.Deposit{}, fmt.Errorf("deposit lookup ended with error: %w", err)
	}

	return deposit, nil
}

// List returns the owner's deposits, newest first.
func (d *depositService) List(ctx context.Context, ownerID int64) ([]models.Deposit, error) {
	deposits, err := d.depositRepository.List(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("deposit listing ended with error")
		return nil, fmt.Errorf("deposit listing ended with error: %w", err)
	}

	return deposits, nil
}

// Update replaces every raw field of the scoped deposit with the input and
// recomputes the derived fields at the current instant. DepositID, UserID and
// CreatedAt survive the edit unchanged.
func (d *depositService) Update(ctx context.Context, depositID string, input models.DepositInput, ownerID int64) (models.Deposit, error) {
	log := logger.FromContext(ctx)

	current, err := d.depositRepository.Get(ctx, depositID, ownerID)
	if err != nil {
		log.Err(err).Str("deposit_id", depositID).Msg("deposit lookup ended with error")
		return models.Deposit{}, fmt.Errorf("deposit lookup ended with error: %w", err)
	}

	now := d.now()
	deposit := d.fromInput(ctx, input, current.UserID)
	deposit.DepositID = current.DepositID
	deposit.CreatedAt = current.CreatedAt
	deposit.UpdatedAt = now
	finance.Recalculate(&deposit, now)

	if err := d.depositRepository.Update(ctx, deposit, ownerID); err != nil {
		log.Err(err).Str("deposit_id", depositID).Msg("deposit update ended with error")
		return models.Deposit{}, fmt.Errorf("deposit update ended with error: %w", err)
	}

	return deposit, nil
}

// Delete removes the scoped deposit. The freed id is never reissued while a
// higher-numbered id exists.
func (d *depositService) Delete(ctx context.Context, depositID string, ownerID int64) error {
	if err := d.depositRepository.Delete(ctx, depositID, ownerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("deposit_id", depositID).Msg("deposit deletion ended with error")
		return fmt.Errorf("deposit deletion ended with error: %w", err)
	}

	return nil
}

// Summarize reduces the scoped deposit set to portfolio statistics and
// attaches the owner's effective currency symbol for presentation.
func (d *depositService) Summarize(ctx context.Context, ownerID int64) (models.SummaryStats, error) {
	stats, err := d.depositRepository.Summarize(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("deposit summary ended with error")
		return models.SummaryStats{}, fmt.Errorf("deposit summary ended with error: %w", err)
	}

	stats.CurrencySymbol = d.settings.CurrencySymbol(ctx, ownerID)
	return stats, nil
}

// fromInput builds a deposit from the raw input fields, resolving the
// effective default tax rate when the input leaves TaxRate unset.
func (d *depositService) fromInput(ctx context.Context, input models.DepositInput, ownerID int64) models.Deposit {
	taxRate := d.settings.DefaultTaxRate(ctx, ownerID)
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}

	return models.Deposit{
		UserID:          ownerID,
		AccountHolder:   input.AccountHolder,
		AccountNumber:   input.AccountNumber,
		BankName:        input.BankName,
		PrincipalAmount: input.PrincipalAmount,
		InterestRate:    input.InterestRate,
		DepositDate:     input.DepositDate,
		MaturityDate:    input.MaturityDate,
		TaxRate:         taxRate,
	}
}
