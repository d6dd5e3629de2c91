package writer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/content-studio/llm/agents"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// DraftRequest describes the content to draft
type DraftRequest struct {
	Topic                  string   `json:"topic" validate:"required"`
	ContentType            string   `json:"content_type"`
	TargetAudience         string   `json:"target_audience"`
	WordCount              int      `json:"word_count"`
	Tone                   string   `json:"tone"`
	Keywords               []string `json:"keywords,omitempty"`
	AdditionalRequirements string   `json:"additional_requirements,omitempty"`
}

// applyDefaults fills unset fields from the schema defaults
func (r *DraftRequest) applyDefaults() {
	if r.ContentType == "" {
		r.ContentType = "article"
	}
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
	if r.WordCount <= 0 {
		r.WordCount = 1000
	}
	if r.Tone == "" {
		r.Tone = "professional"
	}
}

// CreateDraft creates a content draft based on the request
func (w *WriterAgent) CreateDraft(ctx context.Context, req DraftRequest, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", req.Topic); err != nil {
		return nil, err
	}
	req.applyDefaults()
	if req.WordCount > w.maxWords {
		req.WordCount = w.maxWords
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Create a %s about %q with the following specifications:\n\n", req.ContentType, req.Topic)
	fmt.Fprintf(&prompt, "- Target Audience: %s\n", req.TargetAudience)
	fmt.Fprintf(&prompt, "- Word Count: Approximately %d words\n", req.WordCount)
	fmt.Fprintf(&prompt, "- Tone: %s\n", req.Tone)
	fmt.Fprintf(&prompt, "- Content Type: %s\n", req.ContentType)

	if len(req.Keywords) > 0 {
		fmt.Fprintf(&prompt, "- Keywords to include naturally: %s\n", strings.Join(req.Keywords, ", "))
	}
	if req.AdditionalRequirements != "" {
		fmt.Fprintf(&prompt, "- Additional Requirements: %s\n", req.AdditionalRequirements)
	}

	prompt.WriteString(`
Please ensure the content is:
1. Well-structured with clear headings and subheadings
2. Engaging and informative
3. Optimized for the target audience
4. Free of grammatical errors
5. Original and plagiarism-free`)

	draft, usage, err := w.Complete(ctx, llmProvider, prompt.String())
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"draft":      draft,
			"word_count": agents.WordCount(draft),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata: map[string]any{
			"topic":           req.Topic,
			"content_type":    req.ContentType,
			"target_audience": req.TargetAudience,
			"tone":            req.Tone,
			"keywords":        req.Keywords,
		},
	}, nil
}

// ExpandSection expands a section of content to the target word count
func (w *WriterAgent) ExpandSection(ctx context.Context, section, title string, targetWords int, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("section", section); err != nil {
		return nil, err
	}
	if targetWords <= 0 {
		targetWords = 300
	}

	prompt := fmt.Sprintf(`Expand the following section to approximately %d words while maintaining quality and relevance:

Section Title: %s
Current Content: %s

Please:
1. Add more detail and examples
2. Maintain the original tone and style
3. Ensure smooth flow and transitions
4. Keep the content relevant and valuable`, targetWords, title, section)

	expanded, usage, err := w.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"expanded_section": expanded,
			"word_count":       agents.WordCount(expanded),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"section_title": title, "target_words": targetWords},
	}, nil
}

// RewriteRequest describes a rewrite of existing content
type RewriteRequest struct {
	Content     string `json:"content" validate:"required"`
	NewTone     string `json:"new_tone,omitempty"`
	NewAudience string `json:"new_audience,omitempty"`
	NewLength   int    `json:"new_length,omitempty"`
}

// RewriteContent rewrites content with new tone, audience, or length
func (w *WriterAgent) RewriteContent(ctx context.Context, req RewriteRequest, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", req.Content); err != nil {
		return nil, err
	}

	var prompt strings.Builder
	prompt.WriteString("Rewrite the following content with the specified changes:\n\n")
	prompt.WriteString("Original Content:\n")
	prompt.WriteString(req.Content)
	prompt.WriteString("\n")

	if req.NewTone != "" {
		fmt.Fprintf(&prompt, "\n- New Tone: %s", req.NewTone)
	}
	if req.NewAudience != "" {
		fmt.Fprintf(&prompt, "\n- New Target Audience: %s", req.NewAudience)
	}
	if req.NewLength > 0 {
		if req.NewLength > w.maxWords {
			req.NewLength = w.maxWords
		}
		fmt.Fprintf(&prompt, "\n- New Target Length: %d words", req.NewLength)
	}

	prompt.WriteString(`

Please ensure the rewritten content:
1. Maintains the core message and key points
2. Adapts to the new specifications
3. Flows naturally and reads well
4. Is engaging and informative`)

	rewritten, usage, err := w.Complete(ctx, llmProvider, prompt.String())
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"rewritten_content": rewritten,
			"word_count":        agents.WordCount(rewritten),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
