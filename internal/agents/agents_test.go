package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

// fakeModel is a minimal llms.Model for tests.
type fakeModel struct {
	content string
	err     error
	// lastPrompt records the human message of the most recent call.
	lastPrompt string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		if m.Role != llms.ChatMessageTypeHuman {
			continue
		}
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				f.lastPrompt = tc.Text
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

// fakeSearchTool is a searchTool for tests.
type fakeSearchTool struct {
	output string
	err    error
	calls  int
}

func (f *fakeSearchTool) Call(ctx context.Context, input string) (string, error) {
	f.calls++
	return f.output, f.err
}

func TestChatAgent_Execute(t *testing.T) {
	a := &ChatAgent{llm: &fakeModel{content: "  hello there  "}, model: "test-model"}

	res := a.Execute(context.Background(), "hi")
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if res.Content != "hello there" {
		t.Errorf("expected trimmed content, got %q", res.Content)
	}
	if res.Metadata["model"] != "test-model" {
		t.Errorf("expected model metadata, got %v", res.Metadata)
	}
	if ToolsUsed(res) != 0 {
		t.Errorf("chat agent should report 0 tools used, got %d", ToolsUsed(res))
	}
}

func TestChatAgent_Execute_ModelError(t *testing.T) {
	a := &ChatAgent{llm: &fakeModel{err: errors.New("quota exceeded")}, model: "test-model"}

	res := a.Execute(context.Background(), "hi")
	if res.Success {
		t.Fatal("expected failure result")
	}
	if res.Error != "quota exceeded" {
		t.Errorf("expected error text from the model, got %q", res.Error)
	}
}

func TestChatAgent_Execute_NoChoices(t *testing.T) {
	a := &ChatAgent{llm: noChoicesModel{}, model: "test-model"}

	res := a.Execute(context.Background(), "hi")
	if res.Success {
		t.Fatal("expected failure result")
	}
	if res.Error == "" {
		t.Error("expected a non-empty error")
	}
}

type noChoicesModel struct{}

func (noChoicesModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}

func (noChoicesModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}

func TestSearchAgent_Execute_WithSources(t *testing.T) {
	model := &fakeModel{content: "summary of findings"}
	tool := &fakeSearchTool{output: "1. result one\n2. result two"}
	a := &SearchAgent{llm: model, tool: tool, model: "test-model"}

	res := a.Execute(context.Background(), "Search for information about: Go generics. Provide a comprehensive summary with key findings.")
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if tool.calls != 1 {
		t.Errorf("expected one tool call, got %d", tool.calls)
	}
	if ToolsUsed(res) != 1 {
		t.Errorf("expected tools_used 1, got %d", ToolsUsed(res))
	}
	if !strings.Contains(model.lastPrompt, "result one") {
		t.Errorf("search results not forwarded to the model: %q", model.lastPrompt)
	}
	if res.Metadata["search_provider"] != "duckduckgo" {
		t.Errorf("expected search_provider metadata, got %v", res.Metadata)
	}
}

func TestSearchAgent_Execute_ToolFailureDegrades(t *testing.T) {
	model := &fakeModel{content: "unverified answer"}
	tool := &fakeSearchTool{err: fmt.Errorf("connection refused")}
	a := &SearchAgent{llm: model, tool: tool, model: "test-model"}

	res := a.Execute(context.Background(), "anything")
	if !res.Success {
		t.Fatalf("tool failure must not fail the execution, got error %q", res.Error)
	}
	if ToolsUsed(res) != 0 {
		t.Errorf("expected tools_used 0 after tool failure, got %d", ToolsUsed(res))
	}
}

func TestSearchAgent_Execute_ModelError(t *testing.T) {
	a := &SearchAgent{
		llm:   &fakeModel{err: errors.New("backend unavailable")},
		tool:  &fakeSearchTool{output: "some results"},
		model: "test-model",
	}

	res := a.Execute(context.Background(), "anything")
	if res.Success {
		t.Fatal("expected failure result")
	}
	if res.Error != "backend unavailable" {
		t.Errorf("expected model error text, got %q", res.Error)
	}
}

func TestRegistry_ReusesSingletons(t *testing.T) {
	r := NewRegistry(Config{})
	chat := &ChatAgent{llm: &fakeModel{}, model: "chat"}
	search := &SearchAgent{llm: &fakeModel{}, model: "search"}
	r.chat = chat
	r.search = search

	got, err := r.Agent("search")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Agent(search) {
		t.Error("expected the search singleton")
	}

	// Anything other than "search" takes the chat path.
	for _, agentType := range []string{"chat", "", "banana"} {
		got, err := r.Agent(agentType)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", agentType, err)
		}
		if got != Agent(chat) {
			t.Errorf("agent_type %q: expected the chat singleton", agentType)
		}
	}
}

func TestToolsUsed(t *testing.T) {
	tests := []struct {
		name string
		res  *Result
		want int
	}{
		{"nil result", nil, 0},
		{"nil metadata", &Result{}, 0},
		{"int", &Result{Metadata: map[string]any{"tools_used": 3}}, 3},
		{"float from json", &Result{Metadata: map[string]any{"tools_used": float64(2)}}, 2},
		{"wrong type", &Result{Metadata: map[string]any{"tools_used": "many"}}, 0},
	}
	for _, tt := range tests {
		if got := ToolsUsed(tt.res); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}
