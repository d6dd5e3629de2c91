package agents

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/your-org/content-studio/llm/providers/shared"
)

// BaseAgent carries the state and LLM plumbing shared by all studio
// agents: the system prompt, completion defaults, and statistics.
type BaseAgent struct {
	name         string
	model        string
	temperature  float32
	maxTokens    int
	systemPrompt *SystemPrompt

	statsMu sync.Mutex
	stats   AgentStats
}

// BaseConfig configures a BaseAgent
type BaseConfig struct {
	Name         string
	Model        string
	Temperature  float32
	MaxTokens    int
	SystemPrompt *SystemPrompt
}

// NewBaseAgent creates the shared agent core
func NewBaseAgent(cfg BaseConfig) *BaseAgent {
	if cfg.Model == "" {
		cfg.Model = "gpt-4"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	return &BaseAgent{
		name:         cfg.Name,
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		systemPrompt: cfg.SystemPrompt,
		stats: AgentStats{
			SuccessRate: 1.0,
		},
	}
}

// Name returns the agent name
func (b *BaseAgent) Name() string { return b.name }

// Model returns the configured completion model
func (b *BaseAgent) Model() string { return b.model }

// SystemPrompt returns the agent's system prompt
func (b *BaseAgent) SystemPrompt() *SystemPrompt { return b.systemPrompt }

// Stats returns a snapshot of the agent's statistics
func (b *BaseAgent) Stats() AgentStats {
	b.statsMu.Lock()
	defer b.statsMu.Unlock()
	return b.stats
}

// Complete runs one completion against the provider using the agent's
// system prompt and defaults, records stats, and returns the trimmed
// content together with token usage.
func (b *BaseAgent) Complete(ctx context.Context, llmProvider shared.LLMProvider, prompt string) (string, shared.TokenUsage, error) {
	start := time.Now()

	messages := []shared.Message{
		{Role: shared.RoleSystem, Content: b.systemPrompt.GetFullPrompt()},
		{Role: shared.RoleUser, Content: prompt},
	}

	req := &shared.CompletionRequest{
		Messages: messages,
		Options: shared.CompletionOptions{
			Model:       b.model,
			MaxTokens:   b.maxTokens,
			Temperature: b.temperature,
		},
	}

	resp, err := llmProvider.Complete(ctx, req)
	if err != nil {
		b.recordExecution(0, time.Since(start), false)
		return "", shared.TokenUsage{}, fmt.Errorf("%s completion failed: %w", b.name, err)
	}

	b.recordExecution(resp.Usage.TotalTokens, time.Since(start), true)
	return strings.TrimSpace(resp.Content), resp.Usage, nil
}

// recordExecution updates cumulative statistics after one operation
func (b *BaseAgent) recordExecution(tokens int, duration time.Duration, success bool) {
	b.statsMu.Lock()
	defer b.statsMu.Unlock()

	b.stats.TotalExecutions++
	b.stats.TotalTokens += tokens

	n := float64(b.stats.TotalExecutions)
	if success {
		b.stats.SuccessRate = (b.stats.SuccessRate*(n-1) + 1.0) / n
	} else {
		b.stats.SuccessRate = (b.stats.SuccessRate * (n - 1)) / n
	}

	b.stats.AverageDuration = time.Duration(
		(int64(b.stats.AverageDuration)*int64(b.stats.TotalExecutions-1) + int64(duration)) /
			int64(b.stats.TotalExecutions))
}

// RequireText validates that a text input is non-empty after trimming
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, fmt.Sprintf("%s cannot be empty", field), "MISSING_REQUIRED_FIELD", value)
	}
	return nil
}
