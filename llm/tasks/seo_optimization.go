package tasks

import (
	"context"
	"fmt"

	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/agents/seo"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// SEOOptimization optimizes content for search engines
type SEOOptimization struct {
	Task
	seo *seo.SEOAgent
}

// SEOOptimizationConfig wires the SEO optimization workflow
type SEOOptimizationConfig struct {
	TaskConfig
	SEO *seo.SEOAgent
}

// NewSEOOptimization creates the SEO optimization task
func NewSEOOptimization(cfg SEOOptimizationConfig) *SEOOptimization {
	cfg.Name = "seo_optimization"
	cfg.Description = "Optimize content for search engines with keyword research and SEO best practices"
	cfg.ExpectedOutput = "SEO-optimized content with meta tags and keyword analysis"
	return &SEOOptimization{
		Task: newTask(cfg.TaskConfig),
		seo:  cfg.SEO,
	}
}

// OptimizeRequest describes an SEO optimization run
type OptimizeRequest struct {
	Content        string   `json:"content" validate:"required"`
	TargetKeywords []string `json:"target_keywords" validate:"required,min=1"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
}

// Optimize runs SEO optimization on content
func (t *SEOOptimization) Optimize(ctx context.Context, req OptimizeRequest, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Strs("keywords", req.TargetKeywords).Msg("starting SEO optimization")

	seoResult, err := t.seo.OptimizeContent(ctx, seo.OptimizeRequest{
		Content:        req.Content,
		TargetKeywords: req.TargetKeywords,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
	}, llm)
	if err != nil {
		t.recordFailure(ctx, t.seo.Name(), "", req.Content, err)
		return nil, fmt.Errorf("optimize step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"seo_data":         seoResult.Content,
			"original_content": req.Content,
		},
		TokensUsed: seoResult.TokensUsed,
		Duration:   seoResult.Duration,
	}
	return t.finish(ctx, result, history.KindContent, t.seo.Name(), "", req.Content), nil
}

// GenerateMetaTags runs the meta tag generation flow
func (t *SEOOptimization) GenerateMetaTags(ctx context.Context, content string, targetKeywords []string, contentType string, llm shared.LLMProvider) (*Result, error) {
	t.log.Info().Msg("generating meta tags")

	metaResult, err := t.seo.GenerateMetaTags(ctx, content, targetKeywords, contentType, llm)
	if err != nil {
		t.recordFailure(ctx, t.seo.Name(), "", content, err)
		return nil, fmt.Errorf("meta tag step: %w", err)
	}

	result := &Result{
		Data: map[string]any{
			"meta_tags": metaResult.Content,
		},
		TokensUsed: metaResult.TokensUsed,
		Duration:   metaResult.Duration,
	}
	return t.finish(ctx, result, history.KindAction, t.seo.Name(), "", content), nil
}
