package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pixelloop/agents-api/internal/agents"
	"github.com/pixelloop/agents-api/internal/models"
	"github.com/pixelloop/agents-api/internal/wallpaper"
)

const (
	// maxStatusChecks caps GET /api/status.
	maxStatusChecks = 1000
	// maxHistoryEntries caps GET /api/wallpaper/history.
	maxHistoryEntries = 50
)

// StatusStore persists the status-check log.
type StatusStore interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}

// WallpaperStore persists the wallpaper generation history.
type WallpaperStore interface {
	Create(ctx context.Context, wp *models.Wallpaper) error
	ListRecent(ctx context.Context, limit int) ([]*models.Wallpaper, error)
}

// AgentProvider hands out the lazily-created agent singletons.
type AgentProvider interface {
	Agent(agentType string) (agents.Agent, error)
	FreshCapabilities() (map[string][]string, error)
}

// Handler contains all HTTP handlers
type Handler struct {
	statusStore    StatusStore
	wallpaperStore WallpaperStore
	agents         AgentProvider
	validate       *validator.Validate

	// pick selects a wallpaper for a prompt; overridable in tests.
	pick func(prompt, aspectRatio, quality, format string) *wallpaper.Result
}

// NewHandler creates a new handler
func NewHandler(statusStore StatusStore, wallpaperStore WallpaperStore, agents AgentProvider) *Handler {
	return &Handler{
		statusStore:    statusStore,
		wallpaperStore: wallpaperStore,
		agents:         agents,
		validate:       validator.New(),
		pick:           wallpaper.Pick,
	}
}

// Root handles GET /api/
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
