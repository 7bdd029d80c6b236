package service

import (
	"github.com/adiwinata/deposito/internal/config"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
)

// Services bundles every service behind its interface.
type Services struct {
	AuthService
	DepositService
	BankService
	SettingsService
}

// NewServices wires the service layer on top of the storage layer.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	settings := NewSettingsService(storages.SettingsRepository, log)
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, log),
		DepositService:  NewDepositService(storages.DepositRepository, settings, log),
		BankService:     NewBankService(storages.BankRepository, log),
		SettingsService: settings,
	}
}
