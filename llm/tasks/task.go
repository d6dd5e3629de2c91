// Package tasks composes the studio agents into the content workflows:
// creation, review, SEO optimization, research, and creative ideation.
package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/your-org/content-studio/internal/history"
)

// Result is the outcome of one task run
type Result struct {
	TaskName   string         `json:"task_name"`
	AgentUsed  string         `json:"agent_used"`
	Data       map[string]any `json:"data"`
	Status     string         `json:"status"`
	TokensUsed int            `json:"tokens_used"`
	Duration   time.Duration  `json:"duration"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Task carries the identity and plumbing shared by all workflows
type Task struct {
	name           string
	description    string
	expectedOutput string
	log            zerolog.Logger
	recorder       history.Recorder
}

// TaskConfig configures the shared task core
type TaskConfig struct {
	Name           string
	Description    string
	ExpectedOutput string
	Logger         zerolog.Logger
	Recorder       history.Recorder
}

func newTask(cfg TaskConfig) Task {
	return Task{
		name:           cfg.Name,
		description:    cfg.Description,
		expectedOutput: cfg.ExpectedOutput,
		log:            cfg.Logger.With().Str("task", cfg.Name).Logger(),
		recorder:       cfg.Recorder,
	}
}

// Name returns the task name
func (t *Task) Name() string { return t.name }

// Description returns the task description
func (t *Task) Description() string { return t.description }

// ExpectedOutput describes the output format the task produces
func (t *Task) ExpectedOutput() string { return t.expectedOutput }

// finish stamps the result and records it to back history. Recording
// failures are logged, not returned; the run itself succeeded.
func (t *Task) finish(ctx context.Context, result *Result, kind, agent, topic, input string) *Result {
	result.TaskName = t.name
	result.AgentUsed = agent
	result.Timestamp = time.Now().UTC()
	if result.Status == "" {
		result.Status = history.StatusCompleted
	}

	if t.recorder != nil {
		output, err := json.Marshal(result.Data)
		if err != nil {
			output = []byte(`{}`)
		}
		entry := &history.Entry{
			Kind:       kind,
			Agent:      agent,
			Task:       t.name,
			Topic:      topic,
			Input:      input,
			Output:     string(output),
			TokensUsed: result.TokensUsed,
			Duration:   result.Duration,
			Status:     result.Status,
		}
		if err := t.recorder.Record(ctx, entry); err != nil {
			t.log.Warn().Err(err).Msg("failed to record history entry")
		}
	}

	return result
}

// recordFailure appends a failed run to back history
func (t *Task) recordFailure(ctx context.Context, agent, topic, input string, runErr error) {
	if t.recorder == nil {
		return
	}
	entry := &history.Entry{
		Kind:   history.KindAction,
		Agent:  agent,
		Task:   t.name,
		Topic:  topic,
		Input:  input,
		Output: runErr.Error(),
		Status: history.StatusFailed,
	}
	if err := t.recorder.Record(ctx, entry); err != nil {
		t.log.Warn().Err(err).Msg("failed to record history entry")
	}
}
