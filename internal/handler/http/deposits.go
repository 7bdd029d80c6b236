package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/utils"
	"github.com/adiwinata/deposito/models"
)

func (h *Handler) createDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.DepositInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.depositValidator.Validate(ctx, input); err != nil {
		log.Err(err).Msg("deposit input validation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	created, err := h.services.DepositService.Create(ctx, input, userID)
	if err != nil {
		log.Err(err).Msg("deposit creation ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listDeposits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	deposits, err := h.services.DepositService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("deposit listing ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, deposits, http.StatusOK)
}

func (h *Handler) getDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	depositID := chi.URLParam(r, "depositID")

	deposit, err := h.services.DepositService.Get(ctx, depositID, userID)
	if err != nil {
		log.Err(err).Str("deposit_id", depositID).Msg("deposit lookup ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, deposit, http.StatusOK)
}

func (h *Handler) updateDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	depositID := chi.URLParam(r, "depositID")

	var input models.DepositInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.depositValidator.Validate(ctx, input); err != nil {
		log.Err(err).Msg("deposit input validation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	updated, err := h.services.DepositService.Update(ctx, depositID, input, userID)
	if err != nil {
		log.Err(err).Str("deposit_id", depositID).Msg("deposit update ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	depositID := chi.URLParam(r, "depositID")

	if err := h.services.DepositService.Delete(ctx, depositID, userID); err != nil {
		log.Err(err).Str("deposit_id", depositID).Msg("deposit deletion ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) depositSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stats, err := h.services.DepositService.Summarize(ctx, userID)
	if err != nil {
		log.Err(err).Msg("deposit summary ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
