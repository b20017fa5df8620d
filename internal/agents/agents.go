// Package agents adapts the LLM stack into the two agent kinds the API
// exposes: a conversational agent and a web-search agent. Agents never return
// Go errors from execution; faults are folded into the Result so callers can
// always shape a response envelope.
package agents

import "context"

// Config holds agent engine configuration.
type Config struct {
	APIKey           string
	ChatModel        string // e.g. gemini-2.5-flash
	SearchModel      string // e.g. gemini-2.5-flash-lite
	SearchMaxResults int
	SearchUserAgent  string
}

// Result is the normalized outcome of one agent execution.
type Result struct {
	Success  bool
	Content  string
	Metadata map[string]any
	Error    string
}

// Agent executes natural-language prompts and reports its capabilities.
type Agent interface {
	Execute(ctx context.Context, prompt string) *Result
	Capabilities() []string
}

// ToolsUsed reads the "tools_used" metadata entry, defaulting to 0 when the
// entry is absent or not a count.
func ToolsUsed(r *Result) int {
	if r == nil || r.Metadata == nil {
		return 0
	}
	switch v := r.Metadata["tools_used"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
