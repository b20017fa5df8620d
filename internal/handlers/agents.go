package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pixelloop/agents-api/internal/agents"
	"github.com/pixelloop/agents-api/internal/models"
)

// searchPromptTemplate wraps a user query into the instruction the search
// agent executes.
const searchPromptTemplate = "Search for information about: %s. Provide a comprehensive summary with key findings."

// Chat handles POST /api/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "message is required")
		return
	}

	// Agent initialization failure is the one protocol-level error.
	agent, err := h.agents.Agent(req.AgentType)
	if err != nil || agent == nil {
		log.Error().Err(err).Str("endpoint", "chat").Str("agent_type", req.AgentType).Msg("Failed to initialize agent")
		writeJSONError(w, http.StatusInternalServerError, "Failed to initialize agent")
		return
	}

	res := agent.Execute(r.Context(), req.Message)
	if !res.Success {
		log.Error().Str("endpoint", "chat").Str("agent_type", req.AgentType).Str("error", res.Error).Msg("Agent execution failed")
	}

	writeJSON(w, http.StatusOK, &models.ChatResponse{
		Success:      res.Success,
		Response:     res.Content,
		AgentType:    req.AgentType,
		Capabilities: agent.Capabilities(),
		Metadata:     res.Metadata,
		Error:        res.Error,
	})
}

// Search handles POST /api/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "query is required")
		return
	}

	agent, err := h.agents.Agent("search")
	if err != nil {
		log.Error().Err(err).Str("endpoint", "search").Msg("Failed to initialize search agent")
		writeJSON(w, http.StatusOK, &models.SearchResponse{
			Success: false,
			Query:   req.Query,
			Error:   err.Error(),
		})
		return
	}

	res := agent.Execute(r.Context(), fmt.Sprintf(searchPromptTemplate, req.Query))
	if !res.Success {
		log.Error().Str("endpoint", "search").Str("error", res.Error).Msg("Search agent execution failed")
		writeJSON(w, http.StatusOK, &models.SearchResponse{
			Success: false,
			Query:   req.Query,
			Error:   res.Error,
		})
		return
	}

	writeJSON(w, http.StatusOK, &models.SearchResponse{
		Success:       true,
		Query:         req.Query,
		Summary:       res.Content,
		SearchResults: res.Metadata,
		SourcesCount:  agents.ToolsUsed(res),
	})
}

// Capabilities handles GET /api/agents/capabilities
func (h *Handler) Capabilities(w http.ResponseWriter, r *http.Request) {
	caps, err := h.agents.FreshCapabilities()
	if err != nil {
		log.Error().Err(err).Str("endpoint", "capabilities").Msg("Failed to query agent capabilities")
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"capabilities": caps,
	})
}
