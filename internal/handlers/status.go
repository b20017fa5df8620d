package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pixelloop/agents-api/internal/models"
)

// CreateStatusCheck handles POST /api/status
func (h *Handler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req models.StatusCheckCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "client_name is required")
		return
	}

	check := &models.StatusCheck{
		ID:         uuid.New(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := h.statusStore.Create(r.Context(), check); err != nil {
		log.Error().Err(err).Str("endpoint", "create_status").Msg("Failed to store status check")
		writeJSONError(w, http.StatusInternalServerError, "failed to store status check")
		return
	}

	writeJSON(w, http.StatusOK, check)
}

// ListStatusChecks handles GET /api/status
func (h *Handler) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.statusStore.List(r.Context(), maxStatusChecks)
	if err != nil {
		log.Error().Err(err).Str("endpoint", "list_status").Msg("Failed to list status checks")
		writeJSONError(w, http.StatusInternalServerError, "failed to list status checks")
		return
	}
	if checks == nil {
		checks = []*models.StatusCheck{}
	}

	writeJSON(w, http.StatusOK, checks)
}
