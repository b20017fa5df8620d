package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pixelloop/agents-api/internal/models"
)

// GenerateWallpaper handles POST /api/wallpaper/generate
func (h *Handler) GenerateWallpaper(w http.ResponseWriter, r *http.Request) {
	var req models.WallpaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if req.Style == "" {
		req.Style = "modern"
	}
	if req.AspectRatio == "" {
		req.AspectRatio = "9:16"
	}
	if req.Quality == "" {
		req.Quality = "high"
	}

	enhancedPrompt := fmt.Sprintf(
		"%s, %s style, phone wallpaper, %s aspect ratio, high quality, detailed, vibrant colors",
		req.Prompt, req.Style, req.AspectRatio,
	)

	quality := "0.25"
	if req.Quality == "high" {
		quality = "1"
	}

	result := h.pick(enhancedPrompt, req.AspectRatio, quality, "webp")
	if !result.Success {
		log.Error().Str("endpoint", "generate_wallpaper").Str("error", result.Error).Msg("Wallpaper selection failed")
		errMsg := result.Error
		if errMsg == "" {
			errMsg = "Failed to generate image"
		}
		writeJSON(w, http.StatusOK, &models.WallpaperResponse{
			Success:      false,
			WallpaperURL: "",
			Prompt:       req.Prompt,
			Style:        req.Style,
			AspectRatio:  req.AspectRatio,
			Error:        errMsg,
		})
		return
	}

	wp := &models.Wallpaper{
		ID:             uuid.New(),
		Prompt:         req.Prompt,
		EnhancedPrompt: enhancedPrompt,
		Style:          req.Style,
		AspectRatio:    req.AspectRatio,
		Quality:        req.Quality,
		WallpaperURL:   result.URL,
		Timestamp:      time.Now().UTC(),
		Metadata:       result.Metadata,
	}
	if err := h.wallpaperStore.Create(r.Context(), wp); err != nil {
		log.Error().Err(err).Str("endpoint", "generate_wallpaper").Msg("Failed to store wallpaper record")
		writeJSON(w, http.StatusOK, &models.WallpaperResponse{
			Success:      false,
			WallpaperURL: "",
			Prompt:       req.Prompt,
			Style:        req.Style,
			AspectRatio:  req.AspectRatio,
			Error:        err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, &models.WallpaperResponse{
		Success:      true,
		WallpaperURL: result.URL,
		Prompt:       req.Prompt,
		Style:        req.Style,
		AspectRatio:  req.AspectRatio,
		Metadata:     result.Metadata,
	})
}

// WallpaperHistory handles GET /api/wallpaper/history
func (h *Handler) WallpaperHistory(w http.ResponseWriter, r *http.Request) {
	wallpapers, err := h.wallpaperStore.ListRecent(r.Context(), maxHistoryEntries)
	if err != nil {
		log.Error().Err(err).Str("endpoint", "wallpaper_history").Msg("Failed to list wallpaper history")
		writeJSON(w, http.StatusOK, &models.WallpaperHistoryResponse{
			Success:    false,
			Wallpapers: []*models.Wallpaper{},
			Error:      err.Error(),
		})
		return
	}
	if wallpapers == nil {
		wallpapers = []*models.Wallpaper{}
	}

	writeJSON(w, http.StatusOK, &models.WallpaperHistoryResponse{
		Success:    true,
		Wallpapers: wallpapers,
		Count:      len(wallpapers),
	})
}
