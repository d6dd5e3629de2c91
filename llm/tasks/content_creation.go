package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/agents/editor"
	"github.com/your-org/content-studio/llm/agents/research"
	"github.com/your-org/content-studio/llm/agents/writer"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// ContentCreation researches a topic, drafts content from the findings,
// and optionally runs an editorial review pass.
type ContentCreation struct {
	Task
	writer        *writer.WriterAgent
	research      *research.ResearchAgent
	editor        *editor.EditorAgent
	reviewEnabled bool
}

// ContentCreationConfig wires the content creation workflow
type ContentCreationConfig struct {
	TaskConfig
	Writer        *writer.WriterAgent
	Research      *research.ResearchAgent
	Editor        *editor.EditorAgent
	ReviewEnabled bool
}

// NewContentCreation creates the content creation task
func NewContentCreation(cfg ContentCreationConfig) *ContentCreation {
	cfg.Name = "content_creation"
	cfg.Description = "Create comprehensive, well-researched content based on given topic and requirements"
	cfg.ExpectedOutput = "Complete content piece with proper structure, engaging writing, and factual accuracy"
	return &ContentCreation{
		Task:          newTask(cfg.TaskConfig),
		writer:        cfg.Writer,
		research:      cfg.Research,
		editor:        cfg.Editor,
		reviewEnabled: cfg.ReviewEnabled,
	}
}

// CreateRequest describes a full content creation run
type CreateRequest struct {
	Topic          string   `json:"topic" validate:"required"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
	WordCount      int      `json:"word_count"`
	Tone           string   `json:"tone"`
	Keywords       []string `json:"keywords,omitempty"`
	ResearchDepth  string   `json:"research_depth"`
}

// Run executes research, drafting, and the optional review pass
func (t *ContentCreation) Run(ctx context.Context, req CreateRequest, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Str("topic", req.Topic).Msg("starting content creation")

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
	researchData := researchResult.Content.(map[string]any)

	draftResult, err := t.writer.CreateDraft(ctx, writer.DraftRequest{
		Topic:                  req.Topic,
		ContentType:            req.ContentType,
		TargetAudience:         req.TargetAudience,
		WordCount:              req.WordCount,
		Tone:                   req.Tone,
		Keywords:               req.Keywords,
		AdditionalRequirements: researchRequirements(researchData),
	}, llm)
	if err != nil {
		t.recordFailure(ctx, t.writer.Name(), req.Topic, req.Topic, err)
		return nil, fmt.Errorf("drafting step: %w", err)
	}
	draftData := draftResult.Content.(map[string]any)

	tokens := researchResult.TokensUsed + draftResult.TokensUsed
	duration := researchResult.Duration + draftResult.Duration

	data := map[string]any{
		"topic":           req.Topic,
		"content_type":    req.ContentType,
		"target_audience": req.TargetAudience,
		"tone":            req.Tone,
		"keywords":        req.Keywords,
		"research_data":   researchData,
		"content":         draftData,
	}

	if t.reviewEnabled && t.editor != nil {
		draft, _ := draftData["draft"].(string)
		reviewResult, err := t.editor.ReviewContent(ctx, editor.ReviewRequest{
			Content:        draft,
			ContentType:    req.ContentType,
			TargetAudience: req.TargetAudience,
		}, llm)
		if err != nil {
			t.recordFailure(ctx, t.editor.Name(), req.Topic, req.Topic, err)
			return nil, fmt.Errorf("review step: %w", err)
		}
		data["review"] = reviewResult.Content
		tokens += reviewResult.TokensUsed
		duration += reviewResult.Duration
	}

	result := &Result{
		Data:       data,
		TokensUsed: tokens,
		Duration:   duration,
	}

	t.log.Info().Str("topic", req.Topic).Int("tokens", tokens).Msg("content creation completed")
	return t.finish(ctx, result, history.KindContent, t.writer.Name(), req.Topic, req.Topic), nil
}

// researchRequirements folds top research findings into writer requirements
func researchRequirements(researchData map[string]any) string {
	var parts []string
	if facts := stringSlice(researchData["key_facts"]); len(facts) > 0 {
		parts = append(parts, "Key Facts: "+strings.Join(head(facts, 5), ", "))
	}
	if sources := stringSlice(researchData["sources"]); len(sources) > 0 {
		parts = append(parts, "Credible Sources: "+strings.Join(head(sources, 3), ", "))
	}
	if insights := stringSlice(researchData["insights"]); len(insights) > 0 {
		parts = append(parts, "Key Insights: "+strings.Join(head(insights, 3), ", "))
	}
	return strings.Join(parts, "\n")
}

func stringSlice(v any) []string {
	s, _ := v.([]string)
	return s
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
