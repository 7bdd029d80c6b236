package service

import (
	"context"
	"fmt"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/models"
)

// bankService is the concrete implementation of BankService.
type bankService struct {
	bankRepository store.BankRepository
	logger         *logger.Logger
}

// NewBankService constructs a BankService wired to the given repository.
func NewBankService(bankRepository store.BankRepository, logger *logger.Logger) BankService {
	return &bankService{
		bankRepository: bankRepository,
		logger:         logger,
	}
}

// EffectiveBanks returns the bank list a user actually sees: their personal
// overrides when at least one exists, the global list otherwise. The two
// lists never mix.
func (b *bankService) EffectiveBanks(ctx context.Context, userID int64) ([]models.Bank, error) {
	personal, err := b.UserBanks(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(personal) > 0 {
		return personal, nil
	}

	return b.GlobalBanks(ctx)
}

// UserBanks returns the user's personal bank list, empty when the user has
// no overrides.
func (b *bankService) UserBanks(ctx context.Context, userID int64) ([]models.Bank, error) {
	userBanks, err := b.bankRepository.ListUserBanks(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user bank listing ended with error")
		return nil, fmt.Errorf("user bank listing ended with error: %w", err)
	}

	banks := make([]models.Bank, 0, len(userBanks))
	for _, ub := range userBanks {
		banks = append(banks, models.Bank{
			Name:                ub.BankName,
			DefaultInterestRate: ub.DefaultInterestRate,
			CreatedAt:           ub.CreatedAt,
			UpdatedAt:           ub.UpdatedAt,
		})
	}

	return banks, nil
}

// AddUserBank adds or replaces a personal bank entry for the user.
func (b *bankService) AddUserBank(ctx context.Context, userID int64, bank models.Bank) error {
	if bank.Name == "" {
		return ErrInvalidDataProvided
	}

	err := b.bankRepository.UpsertUserBank(ctx, models.UserBank{
		UserID:              userID,
		BankName:            bank.Name,
		DefaultInterestRate: bank.DefaultInterestRate,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("bank", bank.Name).Msg("user bank upsert ended with error")
		return fmt.Errorf("user bank upsert ended with error: %w", err)
	}

	return nil
}

// DeleteUserBank removes a personal bank entry.
func (b *bankService) DeleteUserBank(ctx context.Context, userID int64, bankName string) error {
	if err := b.bankRepository.DeleteUserBank(ctx, userID, bankName); err != nil {
		logger.FromContext(ctx).Err(err).Str("bank", bankName).Msg("user bank deletion ended with error")
		return fmt.Errorf("user bank deletion ended with error: %w", err)
	}

	return nil
}

// GlobalBanks returns the shared default bank list.
func (b *bankService) GlobalBanks(ctx context.Context) ([]models.Bank, error) {
	banks, err := b.bankRepository.ListBanks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("bank listing ended with error")
		return nil, fmt.Errorf("bank listing ended with error: %w", err)
	}

	return banks, nil
}

// AddGlobalBank appends a bank to the shared list. Admin only.
func (b *bankService) AddGlobalBank(ctx context.Context, bank models.Bank) error {
	if bank.Name == "" {
		return ErrInvalidDataProvided
	}

	if err := b.bankRepository.AddBank(ctx, bank); err != nil {
		logger.FromContext(ctx).Err(err).Str("bank", bank.Name).Msg("bank creation ended with error")
		return fmt.Errorf("bank creation ended with error: %w", err)
	}

	return nil
}

// UpdateGlobalBank replaces the default interest rate of a shared bank.
// Admin only.
func (b *bankService) UpdateGlobalBank(ctx context.Context, bank models.Bank) error {
	if bank.Name == "" {
		return ErrInvalidDataProvided
	}

	if err := b.bankRepository.UpdateBank(ctx, bank); err != nil {
		logger.FromContext(ctx).Err(err).Str("bank", bank.Name).Msg("bank update ended with error")
		return fmt.Errorf("bank update ended with error: %w", err)
	}

	return nil
}

// DeleteGlobalBank removes a bank from the shared list. Admin only.
func (b *bankService) DeleteGlobalBank(ctx context.Context, bankName string) error {
	if err := b.bankRepository.DeleteBank(ctx, bankName); err != nil {
		logger.FromContext(ctx).Err(err).Str("bank", bankName).Msg("bank deletion ended with error")
		return fmt.Errorf("bank deletion ended with error: %w", err)
	}

	return nil
}
