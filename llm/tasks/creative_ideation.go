package tasks

import (
	"context"
	"fmt"

	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/agents/creative"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// CreativeIdeation generates content ideas and headlines
type CreativeIdeation struct {
	Task
	creative *creative.CreativeAgent
}

// CreativeIdeationConfig wires the creative ideation workflow
type CreativeIdeationConfig struct {
	TaskConfig
	Creative *creative.CreativeAgent
}

// NewCreativeIdeation creates the creative ideation task
func NewCreativeIdeation(cfg CreativeIdeationConfig) *CreativeIdeation {
	cfg.Name = "creative_ideation"
	cfg.Description = "Generate innovative, engaging content ideas and headlines"
	cfg.ExpectedOutput = "Content ideas with angles, headlines, and engagement notes"
	return &CreativeIdeation{
		Task:     newTask(cfg.TaskConfig),
		creative: cfg.Creative,
	}
}

// IdeationRequest describes a creative ideation run
type IdeationRequest struct {
	Topic           string `json:"topic" validate:"required"`
	ContentType     string `json:"content_type"`
	TargetAudience  string `json:"target_audience"`
	IdeaCount       int    `json:"idea_count"`
	CreativityLevel string `json:"creativity_level"`
}

// GenerateIdeas runs the content ideation flow
func (t *CreativeIdeation) GenerateIdeas(ctx context.Context, req IdeationRequest, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Str("topic", req.Topic).Msg("starting creative ideation")

	ideasResult, err := t.creative.GenerateIdeas(ctx, creative.IdeasRequest{
		Topic:           req.Topic,
		ContentType:     req.ContentType,
		TargetAudience:  req.TargetAudience,
		IdeaCount:       req.IdeaCount,
		CreativityLevel: req.CreativityLevel,
	}, llm)
	if err != nil {
		t.recordFailure(ctx, t.creative.Name(), req.Topic, req.Topic, err)
		return nil, fmt.Errorf("ideation step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"ideas": ideasResult.Content,
		},
		TokensUsed: ideasResult.TokensUsed,
		Duration:   ideasResult.Duration,
	}
	return t.finish(ctx, result, history.KindAction, t.creative.Name(), req.Topic, req.Topic), nil
}

// BrainstormHeadlines runs the headline brainstorming flow
func (t *CreativeIdeation) BrainstormHeadlines(ctx context.Context, topic, contentType string, count int, style string, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Str("topic", topic).Msg("brainstorming headlines")

	headlineResult, err := t.creative.BrainstormHeadlines(ctx, topic, contentType, count, style, llm)
	if err != nil {
		t.recordFailure(ctx, t.creative.Name(), topic, topic, err)
		return nil, fmt.Errorf("headline step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"headlines": headlineResult.Content,
		},
		TokensUsed: headlineResult.TokensUsed,
		Duration:   headlineResult.Duration,
	}
	return t.finish(ctx, result, history.KindAction, t.creative.Name(), topic, topic), nil
}
