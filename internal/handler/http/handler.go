package http

import (
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/service"
	"github.com/adiwinata/deposito/internal/validators"
)

type Handler struct {
	services *service.Services

	depositValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		depositValidator: validators.NewDepositInputValidator(),
		logger:           logger,
	}
}
