package tasks

import (
	"context"
	"fmt"

	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/agents/research"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// Research gathers information and verifies claims
type Research struct {
	Task
	research *research.ResearchAgent
}

// ResearchConfig wires the research workflow
type ResearchConfig struct {
	TaskConfig
	Research *research.ResearchAgent
}

// NewResearch creates the research task
func NewResearch(cfg ResearchConfig) *Research {
	cfg.Name = "research"
	cfg.Description = "Gather comprehensive, accurate information to support content creation"
	cfg.ExpectedOutput = "Research findings with key facts, sources, and insights"
	return &Research{
		Task:     newTask(cfg.TaskConfig),
		research: cfg.Research,
	}
}

// ResearchRequest describes a research run
type ResearchRequest struct {
	Topic          string `json:"topic" validate:"required"`
	ResearchDepth  string `json:"research_depth"`
	ContentType    string `json:"content_type"`
	TargetAudience string `json:"target_audience"`
}

// Investigate researches a topic
func (t *Research) Investigate(ctx context.Context, req ResearchRequest, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Str("topic", req.Topic).Msg("starting research")

	researchResult, err := t.research.ResearchTopic(ctx, research.TopicRequest{
		Topic:          req.Topic,
		ResearchDepth:  req.ResearchDepth,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
	}, llm)
	if err != nil {
		t.recordFailure(ctx, t.research.Name(), req.Topic, req.Topic, err)
		return nil, fmt.Errorf("research step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"research_data": researchResult.Content,
		},
		TokensUsed: researchResult.TokensUsed,
		Duration:   researchResult.Duration,
	}
	return t.finish(ctx, result, history.KindAction, t.research.Name(), req.Topic, req.Topic), nil
}

// FactCheck verifies content claims about a topic
func (t *Research) FactCheck(ctx context.Context, content, topic string, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Str("topic", topic).Msg("starting fact check")

	checkResult, err := t.research.FactCheck(ctx, content, topic, llm)
	if err != nil {
		t.recordFailure(ctx, t.research.Name(), topic, content, err)
		return nil, fmt.Errorf("fact check step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"fact_check": checkResult.Content,
		},
		TokensUsed: checkResult.TokensUsed,
		Duration:   checkResult.Duration,
	}
	return t.finish(ctx, result, history.KindAction, t.research.Name(), topic, content), nil
}
