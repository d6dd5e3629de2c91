package seo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/content-studio/llm/agents"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// OptimizeRequest describes an SEO optimization pass
type OptimizeRequest struct {
	Content        string   `json:"content" validate:"required"`
	TargetKeywords []string `json:"target_keywords" validate:"required,min=1"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
}

func (r *OptimizeRequest) applyDefaults() {
	if r.ContentType == "" {
		r.ContentType = "article"
	}
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
}

// OptimizeContent optimizes content around the target keywords
func (s *SEOAgent) OptimizeContent(ctx context.Context, req OptimizeRequest, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", req.Content); err != nil {
		return nil, err
	}
	if len(req.TargetKeywords) == 0 {
		return nil, agents.NewValidationError("target_keywords", "at least one target keyword is required", "MISSING_REQUIRED_FIELD", req.TargetKeywords)
	}
	req.applyDefaults()

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Optimize the following %s content for SEO with target keywords: %s\n\n", req.ContentType, strings.Join(req.TargetKeywords, ", "))
	fmt.Fprintf(&prompt, "Original Content:\n%s\n\n", req.Content)
	fmt.Fprintf(&prompt, "Target Audience: %s\n", req.TargetAudience)
	prompt.WriteString(`
Please provide:
1. SEO-optimized version of the content
2. Keyword density analysis
3. Meta title and description suggestions
4. Header structure recommendations
5. Internal linking suggestions
6. SEO score and recommendations
7. Technical SEO improvements`)

	analysis, usage, err := s.Complete(ctx, llmProvider, prompt.String())
	if err != nil {
		return nil, err
	}

	optimized := agents.SectionAfter(analysis, "optimized content")
	if optimized == "" {
		optimized = agents.SectionAfter(analysis, "updated content")
	}
	if optimized == "" {
		optimized = analysis
	}

	content := map[string]any{
		"optimized_content": optimized,
		"seo_analysis":      analysis,
		"target_keywords":   req.TargetKeywords,
		"recommendations":   agents.LinesMatching(analysis, "recommend", "suggest", "improve", "optimize"),
	}
	if score, ok := agents.ExtractScore(analysis, "seo score"); ok {
		content["seo_score"] = score
	}

	return &agents.AgentResult{
		Content:    content,
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata: map[string]any{
			"content_type":    req.ContentType,
			"target_keywords": req.TargetKeywords,
		},
	}, nil
}

// GenerateMetaTags generates a meta title and description for content
func (s *SEOAgent) GenerateMetaTags(ctx context.Context, content string, targetKeywords []string, contentType string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", content); err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "article"
	}

	prompt := fmt.Sprintf(`Generate SEO-optimized meta title and description for the following %s:

Content:
%s

Target Keywords: %s

Requirements:
- Meta title: 50-60 characters
- Meta description: 150-160 characters
- Include primary keywords naturally
- Compelling and click-worthy
- Accurate representation of content`, contentType, content, strings.Join(targetKeywords, ", "))

	raw, usage, err := s.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	title, description := parseMetaTags(raw)

	return &agents.AgentResult{
		Content: map[string]any{
			"meta_title":       title,
			"meta_description": description,
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}

// parseMetaTags pulls "title:" and "description:" lines out of model output
func parseMetaTags(text string) (title, description string) {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		_, after, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.Contains(lower, "description") {
			if description == "" {
				description = strings.TrimSpace(after)
			}
		} else if strings.Contains(lower, "title") {
			if title == "" {
				title = strings.TrimSpace(after)
			}
		}
	}
	return title, description
}

// SuggestKeywords suggests relevant keywords for a topic
func (s *SEOAgent) SuggestKeywords(ctx context.Context, topic, contentType, targetAudience string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", topic); err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "article"
	}
	if targetAudience == "" {
		targetAudience = "general"
	}

	prompt := fmt.Sprintf(`Suggest relevant keywords for a %s about %q targeting %s audience.

Please provide:
1. Primary keywords (high search volume)
2. Long-tail keywords (specific phrases)
3. Related keywords and synonyms
4. Keyword difficulty assessment
5. Search intent analysis
6. Seasonal keyword opportunities
7. Local SEO keywords (if applicable)`, contentType, topic, targetAudience)

	suggestions, usage, err := s.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"keyword_suggestions": suggestions,
			"primary_keywords":    agents.LinesMatching(suggestions, "primary"),
			"long_tail_keywords":  agents.LinesMatching(suggestions, "long-tail", "long tail"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"topic": topic},
	}, nil
}

// AnalyzeContent performs a comprehensive SEO analysis of content
func (s *SEOAgent) AnalyzeContent(ctx context.Context, content string, targetKeywords []string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", content); err != nil {
		return nil, err
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Perform comprehensive SEO analysis of the following content:\n\n%s\n", content)
	if len(targetKeywords) > 0 {
		fmt.Fprintf(&prompt, "\nTarget Keywords: %s\n", strings.Join(targetKeywords, ", "))
	}
	prompt.WriteString(`
Please analyze:
1. Keyword usage and density
2. Content structure and headers
3. Readability and user experience
4. Content length and depth
5. Internal linking opportunities
6. Technical SEO factors
7. Mobile-friendliness considerations
8. Overall SEO score and recommendations`)

	analysis, usage, err := s.Complete(ctx, llmProvider, prompt.String())
	if err != nil {
		return nil, err
	}

	result := map[string]any{
		"seo_analysis": analysis,
		"improvements": agents.LinesMatching(analysis, "improve", "fix", "optimize", "enhance"),
		"strengths":    agents.LinesMatching(analysis, "good", "strong", "excellent", "well"),
	}
	if score, ok := agents.ExtractScore(analysis, "seo score"); ok {
		result["seo_score"] = score
	}

	return &agents.AgentResult{
		Content:    result,
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
