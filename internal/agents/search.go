package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/tools/duckduckgo"
)

const searchSystemPrompt = `You are a research assistant. Use the provided web search results to answer
the user's request with a comprehensive, well-organized summary. When no search
results are available, answer from your own knowledge and say that the answer
was not verified against live sources.`

// searchTool is the web search tool surface the agent needs. duckduckgo.Client
// satisfies it; tests substitute a fake.
type searchTool interface {
	Call(ctx context.Context, input string) (string, error)
}

// SearchAgent answers research prompts by running a web search tool and
// summarizing its output with a Gemini model.
type SearchAgent struct {
	llm   llms.Model
	tool  searchTool
	model string
}

// NewSearchAgent creates a search agent with a DuckDuckGo search tool.
func NewSearchAgent(cfg Config) (*SearchAgent, error) {
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.SearchModel),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize search model: %w", err)
	}

	tool, err := duckduckgo.New(cfg.SearchMaxResults, cfg.SearchUserAgent)
	if err != nil {
		return nil, fmt.Errorf("initialize search tool: %w", err)
	}

	log.Info().Str("model", cfg.SearchModel).Int("max_results", cfg.SearchMaxResults).Msg("Search agent initialized")

	return &SearchAgent{llm: llm, tool: tool, model: cfg.SearchModel}, nil
}

// Capabilities lists what this agent kind can do.
func (a *SearchAgent) Capabilities() []string {
	return []string{"web_search", "research", "summarization", "current_information"}
}

// Execute searches the web for the prompt, then summarizes the results with
// the model. A failing search tool degrades to a model-only answer with
// tools_used 0; faults become a failure Result, never an error.
func (a *SearchAgent) Execute(ctx context.Context, prompt string) *Result {
	toolsUsed := 0
	searchResults := ""
	if a.tool != nil {
		out, err := a.tool.Call(ctx, prompt)
		if err != nil {
			log.Warn().Err(err).Msg("Web search failed, answering without sources")
		} else if strings.TrimSpace(out) != "" {
			searchResults = out
			toolsUsed = 1
		}
	}

	userPrompt := prompt
	if searchResults != "" {
		userPrompt = fmt.Sprintf("%s\n\nWeb search results:\n%s", prompt, searchResults)
	}

	messages := []llms.MessageContent{
		{Role: llms.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextContent{Text: searchSystemPrompt}}},
		{Role: llms.ChatMessageTypeHuman, Parts: []llms.ContentPart{llms.TextContent{Text: userPrompt}}},
	}

	resp, err := a.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(0.3),
		llms.WithMaxTokens(1500),
	)
	if err != nil {
		log.Error().Err(err).Str("model", a.model).Msg("Search summarization failed")
		return &Result{Success: false, Error: err.Error(), Metadata: map[string]any{"model": a.model, "tools_used": toolsUsed}}
	}
	if len(resp.Choices) == 0 {
		return &Result{Success: false, Error: "model returned no choices", Metadata: map[string]any{"model": a.model, "tools_used": toolsUsed}}
	}

	return &Result{
		Success: true,
		Content: strings.TrimSpace(resp.Choices[0].Content),
		Metadata: map[string]any{
			"model":           a.model,
			"tools_used":      toolsUsed,
			"search_provider": "duckduckgo",
		},
	}
}
