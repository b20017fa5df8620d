package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is one client ping in the append-only status log.
type StatusCheck struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the payload for POST /api/status.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required"`
}

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Message   string         `json:"message" validate:"required"`
	AgentType string         `json:"agent_type"` // "chat" or "search"
	Context   map[string]any `json:"context,omitempty"`
}

// ChatResponse is the envelope returned by POST /api/chat.
type ChatResponse struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata"`
	Error        string         `json:"error,omitempty"`
}

// SearchRequest is the payload for POST /api/search.
type SearchRequest struct {
	Query      string `json:"query" validate:"required"`
	MaxResults int    `json:"max_results"`
}

// SearchResponse is the envelope returned by POST /api/search.
type SearchResponse struct {
	Success       bool           `json:"success"`
	Query         string         `json:"query"`
	Summary       string         `json:"summary"`
	SearchResults map[string]any `json:"search_results,omitempty"`
	SourcesCount  int            `json:"sources_count"`
	Error         string         `json:"error,omitempty"`
}

// WallpaperRequest is the payload for POST /api/wallpaper/generate.
type WallpaperRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	Style       string `json:"style"`        // modern, abstract, nature, minimal, artistic
	AspectRatio string `json:"aspect_ratio"` // phone wallpaper ratio, e.g. 9:16
	Quality     string `json:"quality"`      // "high" or anything else
}

// WallpaperResponse is the envelope returned by POST /api/wallpaper/generate.
type WallpaperResponse struct {
	Success      bool              `json:"success"`
	WallpaperURL string            `json:"wallpaper_url"`
	Prompt       string            `json:"prompt"`
	Style        string            `json:"style"`
	AspectRatio  string            `json:"aspect_ratio"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// Wallpaper is one stored generation record. Seq is the storage-internal row
// id and never leaves the database layer.
type Wallpaper struct {
	Seq            int64             `json:"-"`
	ID             uuid.UUID         `json:"id"`
	Prompt         string            `json:"prompt"`
	EnhancedPrompt string            `json:"enhanced_prompt"`
	Style          string            `json:"style"`
	AspectRatio    string            `json:"aspect_ratio"`
	Quality        string            `json:"quality"`
	WallpaperURL   string            `json:"wallpaper_url"`
	Timestamp      time.Time         `json:"timestamp"`
	Metadata       map[string]string `json:"metadata"`
}

// WallpaperHistoryResponse is the envelope returned by GET /api/wallpaper/history.
type WallpaperHistoryResponse struct {
	Success    bool         `json:"success"`
	Wallpapers []*Wallpaper `json:"wallpapers"`
	Count      int          `json:"count"`
	Error      string       `json:"error,omitempty"`
}
