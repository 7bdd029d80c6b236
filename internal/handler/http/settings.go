package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/utils"
	"github.com/adiwinata/deposito/models"
)

// getSettings returns the caller's effective settings: per-user overrides
// layered over the global values.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	settings, err := h.services.SettingsService.UserSettings(ctx, userID)
	if err != nil {
		log.Err(err).Msg("settings lookup ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) setUserSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	key := chi.URLParam(r, "key")

	var setting models.Setting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SettingsService.SetUserSetting(ctx, userID, key, setting.Value); err != nil {
		log.Err(err).Str("key", key).Msg("user setting update ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setGlobalSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	var setting models.Setting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SettingsService.SetGlobalSetting(ctx, key, setting.Value); err != nil {
		log.Err(err).Str("key", key).Msg("setting update ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
