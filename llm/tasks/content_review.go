package tasks

import (
	"context"
	"fmt"

	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/agents/editor"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// ContentReview reviews and improves existing content
type ContentReview struct {
	Task
	editor *editor.EditorAgent
}

// ContentReviewConfig wires the content review workflow
type ContentReviewConfig struct {
	TaskConfig
	Editor *editor.EditorAgent
}

// NewContentReview creates the content review task
func NewContentReview(cfg ContentReviewConfig) *ContentReview {
	cfg.Name = "content_review"
	cfg.Description = "Review, edit, and improve content for quality, clarity, and engagement"
	cfg.ExpectedOutput = "Improved content with detailed review feedback and suggestions"
	return &ContentReview{
		Task:   newTask(cfg.TaskConfig),
		editor: cfg.Editor,
	}
}

// ReviewRequest describes a review run
type ReviewRequest struct {
	Content        string   `json:"content" validate:"required"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
	ReviewFocus    []string `json:"review_focus,omitempty"`
}

// Review runs a comprehensive editorial review
func (t *ContentReview) Review(ctx context.Context, req ReviewRequest, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Msg("starting content review")

	reviewResult, err := t.editor.ReviewContent(ctx, editor.ReviewRequest{
		Content:        req.Content,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
		ReviewFocus:    req.ReviewFocus,
	}, llm)
	if err != nil {
		t.recordFailure(ctx, t.editor.Name(), "", req.Content, err)
		return nil, fmt.Errorf("review step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"review_data":      reviewResult.Content,
			"content_original": req.Content,
		},
		TokensUsed: reviewResult.TokensUsed,
		Duration:   reviewResult.Duration,
	}
	return t.finish(ctx, result, history.KindAction, t.editor.Name(), "", req.Content), nil
}

// Improve runs the improvement flow on existing content
func (t *ContentReview) Improve(ctx context.Context, content string, areas []string, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Msg("starting content improvement")

	improved, err := t.editor.ImproveContent(ctx, content, areas, llm)
	if err != nil {
		t.recordFailure(ctx, t.editor.Name(), "", content, err)
		return nil, fmt.Errorf("improve step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"original_content": content,
			"improved":         improved.Content,
		},
		TokensUsed: improved.TokensUsed,
		Duration:   improved.Duration,
	}
	return t.finish(ctx, result, history.KindContent, t.editor.Name(), "", content), nil
}
