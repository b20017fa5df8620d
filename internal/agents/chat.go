package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const chatSystemPrompt = `You are a helpful AI assistant. Answer the user's message clearly and concisely.
If you are not sure about something, say so instead of guessing.`

// ChatAgent is the conversational agent backed by a Gemini model.
type ChatAgent struct {
	llm   llms.Model
	model string
}

// NewChatAgent creates a chat agent over the configured Gemini model.
func NewChatAgent(cfg Config) (*ChatAgent, error) {
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.ChatModel),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize chat model: %w", err)
	}

	log.Info().Str("model", cfg.ChatModel).Msg("Chat agent initialized")

	return &ChatAgent{llm: llm, model: cfg.ChatModel}, nil
}

// Capabilities lists what this agent kind can do.
func (a *ChatAgent) Capabilities() []string {
	return []string{"conversation", "question_answering", "text_generation", "summarization"}
}

// Execute runs the prompt against the model. Faults become a failure Result,
// never an error.
func (a *ChatAgent) Execute(ctx context.Context, prompt string) *Result {
	messages := []llms.MessageContent{
		{Role: llms.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextContent{Text: chatSystemPrompt}}},
		{Role: llms.ChatMessageTypeHuman, Parts: []llms.ContentPart{llms.TextContent{Text: prompt}}},
	}

	resp, err := a.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(1000),
	)
	if err != nil {
		log.Error().Err(err).Str("model", a.model).Msg("Chat generation failed")
		return &Result{Success: false, Error: err.Error(), Metadata: map[string]any{"model": a.model}}
	}
	if len(resp.Choices) == 0 {
		return &Result{Success: false, Error: "model returned no choices", Metadata: map[string]any{"model": a.model}}
	}

	return &Result{
		Success: true,
		Content: strings.TrimSpace(resp.Choices[0].Content),
		Metadata: map[string]any{
			"model":      a.model,
			"tools_used": 0,
		},
	}
}
