// Package history is the studio's back history: an append-only record of
// generated content and agent actions, queryable for review and reporting.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry kinds
const (
	KindContent = "content"
	KindAction  = "action"
)

// Entry statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Entry is one back-history record
type Entry struct {
	ID         string        `json:"id"`
	Kind       string        `json:"kind"`
	Agent      string        `json:"agent"`
	Task       string        `json:"task"`
	Topic      string        `json:"topic"`
	Input      string        `json:"input"`
	Output     string        `json:"output"`
	TokensUsed int           `json:"tokens_used"`
	Duration   time.Duration `json:"duration"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Recorder appends and queries back-history entries
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
	ByTopic(ctx context.Context, topic string) ([]*Entry, error)
}

// prepare fills generated fields before an entry is stored
func prepare(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Kind == "" {
		entry.Kind = KindAction
	}
	if entry.Status == "" {
		entry.Status = StatusCompleted
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
}
