package agents

import (
	"fmt"
	"sync"
	"time"
)

// AgentSchema describes an agent's contract: what it accepts, what it
// produces, and examples for both. Schemas are served over the API so
// clients can discover agent capabilities.
type AgentSchema struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Input       InputSchema  `json:"input"`
	Output      OutputSchema `json:"output"`
	Version     string       `json:"version"`
}

// InputSchema defines the expected input fields for an agent
type InputSchema struct {
	Required []string          `json:"required"`
	Optional []string          `json:"optional,omitempty"`
	Types    map[string]string `json:"types"`
	Examples map[string]any    `json:"examples,omitempty"`
	Defaults map[string]any    `json:"defaults,omitempty"`
}

// OutputSchema defines the structure of an agent's output
type OutputSchema struct {
	Type        string            `json:"type"`
	Structure   map[string]string `json:"structure"`
	Description string            `json:"description,omitempty"`
}

// Capability describes one thing an agent can do
type Capability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgentResult represents the outcome of one agent operation
type AgentResult struct {
	Content    any            `json:"content"`
	Success    bool           `json:"success"`
	TokensUsed int            `json:"tokens_used"`
	Duration   time.Duration  `json:"duration"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// AgentStats tracks cumulative execution statistics for an agent
type AgentStats struct {
	TotalExecutions int           `json:"total_executions"`
	TotalTokens     int           `json:"total_tokens"`
	SuccessRate     float64       `json:"success_rate"`
	AverageDuration time.Duration `json:"average_duration"`
}

// ValidationError reports a rejected agent input
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s: %s", e.Code, e.Field, e.Message)
}

// NewValidationError creates a validation error
func NewValidationError(field, message, code string, value any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
		Value:   value,
	}
}

// Agent is implemented by every content-studio agent. Operations
// themselves are typed methods on the concrete agents; the interface
// covers what the registry and API need uniformly.
type Agent interface {
	Name() string
	Schema() AgentSchema
	Capabilities() []Capability
	Stats() AgentStats
}

// Registry holds the studio's agents by name
type Registry struct {
	agents map[string]Agent
	mu     sync.RWMutex
}

// NewRegistry creates a new agent registry
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[string]Agent),
	}
}

// Register adds an agent to the registry
func (r *Registry) Register(agent Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[agent.Name()] = agent
}

// Get retrieves an agent by name
func (r *Registry) Get(name string) (Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("agent not found: %s", name)
	}
	return agent, nil
}

// List returns all registered agents
func (r *Registry) List() []Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := make([]Agent, 0, len(r.agents))
	for _, agent := range r.agents {
		agents = append(agents, agent)
	}
	return agents
}
