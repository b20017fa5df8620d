package agents

import "sync"

// Registry holds the two lazily-created agent singletons for the process
// lifetime. Construction happens under the mutex so each kind is built at
// most once.
type Registry struct {
	cfg Config

	mu     sync.Mutex
	chat   *ChatAgent
	search *SearchAgent
}

// NewRegistry creates a registry; no agents are constructed until first use.
func NewRegistry(cfg Config) *Registry {
	return &Registry{cfg: cfg}
}

// Agent returns the singleton for the given agent type, constructing it on
// first use. Any value other than "search" takes the chat path.
func (r *Registry) Agent(agentType string) (Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agentType == "search" {
		if r.search == nil {
			search, err := NewSearchAgent(r.cfg)
			if err != nil {
				return nil, err
			}
			r.search = search
		}
		return r.search, nil
	}

	if r.chat == nil {
		chat, err := NewChatAgent(r.cfg)
		if err != nil {
			return nil, err
		}
		r.chat = chat
	}
	return r.chat, nil
}

// FreshCapabilities constructs throwaway instances of both agent kinds and
// returns their capability lists, keyed the way the API reports them.
func (r *Registry) FreshCapabilities() (map[string][]string, error) {
	chat, err := NewChatAgent(r.cfg)
	if err != nil {
		return nil, err
	}
	search, err := NewSearchAgent(r.cfg)
	if err != nil {
		return nil, err
	}
	return map[string][]string{
		"chat_agent":   chat.Capabilities(),
		"search_agent": search.Capabilities(),
	}, nil
}
