package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/utils"
	"github.com/adiwinata/deposito/models"
)

// listBanks returns the effective bank list for the caller: personal
// overrides when any exist, the global defaults otherwise.
func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	banks, err := h.services.BankService.EffectiveBanks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("bank listing ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, banks, http.StatusOK)
}

// addUserBank creates or replaces a personal bank entry. Serves both the
// POST collection route and the PUT item route; for PUT the URL name wins
// over the body.
func (h *Handler) addUserBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var bank models.Bank
	if err := json.NewDecoder(r.Body).Decode(&bank); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if name := chi.URLParam(r, "name"); name != "" {
		bank.Name = name
	}

	if err := h.services.BankService.AddUserBank(ctx, userID, bank); err != nil {
		log.Err(err).Str("bank", bank.Name).Msg("user bank upsert ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUserBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")

	if err := h.services.BankService.DeleteUserBank(ctx, userID, name); err != nil {
		log.Err(err).Str("bank", name).Msg("user bank deletion ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listGlobalBanks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	banks, err := h.services.BankService.GlobalBanks(ctx)
	if err != nil {
		log.Err(err).Msg("bank listing ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, banks, http.StatusOK)
}

func (h *Handler) addGlobalBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var bank models.Bank
	if err := json.NewDecoder(r.Body).Decode(&bank); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.BankService.AddGlobalBank(ctx, bank); err != nil {
		log.Err(err).Str("bank", bank.Name).Msg("bank creation ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateGlobalBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var bank models.Bank
	if err := json.NewDecoder(r.Body).Decode(&bank); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	bank.Name = chi.URLParam(r, "name")

	if err := h.services.BankService.UpdateGlobalBank(ctx, bank); err != nil {
		log.Err(err).Str("bank", bank.Name).Msg("bank update ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteGlobalBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	if err := h.services.BankService.DeleteGlobalBank(ctx, name); err != nil {
		log.Err(err).Str("bank", name).Msg("bank deletion ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
