package store

import (
	"github.com/adiwinata/deposito/internal/logger"
)

// Storages aggregates every repository backed by the shared database handle.
type Storages struct {
	UserRepository     UserRepository
	DepositRepository  DepositRepository
	BankRepository     BankRepository
	SettingsRepository SettingsRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DepositRepository:  NewDepositRepository(db, logger),
		BankRepository:     NewBankRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
	}
}
