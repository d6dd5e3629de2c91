package editor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/content-studio/llm/agents"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// ReviewRequest describes a content review
type ReviewRequest struct {
	Content        string   `json:"content" validate:"required"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
	ReviewFocus    []string `json:"review_focus,omitempty"`
}

func (r *ReviewRequest) applyDefaults() {
	if r.ContentType == "" {
		r.ContentType = "article"
	}
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
	if len(r.ReviewFocus) == 0 {
		r.ReviewFocus = []string{"grammar", "style", "clarity", "structure", "engagement"}
	}
}

// ReviewContent reviews content and returns a structured assessment
func (e *EditorAgent) ReviewContent(ctx context.Context, req ReviewRequest, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", req.Content); err != nil {
		return nil, err
	}
	req.applyDefaults()

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Review the following %s content for %s audience:\n\n%s\n\n", req.ContentType, req.TargetAudience, req.Content)
	fmt.Fprintf(&prompt, "Focus areas for review: %s\n", strings.Join(req.ReviewFocus, ", "))
	prompt.WriteString(`
Please provide a comprehensive review including:
1. Overall assessment and score (1-10)
2. Grammar and spelling issues
3. Style and tone consistency
4. Clarity and readability
5. Structure and flow
6. Engagement and impact
7. Specific suggestions for improvement
8. Positive aspects to maintain`)

	review, usage, err := e.Complete(ctx, llmProvider, prompt.String())
	if err != nil {
		return nil, err
	}

	content := map[string]any{
		"review_text":      review,
		"suggestions":      agents.LinesMatching(review, "suggest", "improve", "consider", "try"),
		"positive_aspects": agents.LinesMatching(review, "good", "excellent", "strong", "effective"),
	}
	if score, ok := agents.ExtractScore(review, "score"); ok {
		content["overall_score"] = score
	}

	return &agents.AgentResult{
		Content:    content,
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata: map[string]any{
			"content_type": req.ContentType,
			"review_focus": req.ReviewFocus,
		},
	}, nil
}

// EditContent edits content according to the given instructions
func (e *EditorAgent) EditContent(ctx context.Context, content, instructions string, preserveStyle bool, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", content); err != nil {
		return nil, err
	}
	if err := agents.RequireText("edit_instructions", instructions); err != nil {
		return nil, err
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Edit the following content according to these instructions:\n\nContent:\n%s\n\nEdit Instructions:\n%s\n", content, instructions)
	prompt.WriteString(`
Requirements:
- Follow the edit instructions precisely
- Maintain the original message and key points
- Ensure grammatical correctness
- Improve clarity and flow`)
	if preserveStyle {
		prompt.WriteString("\n- Preserve the original writing style and tone")
	}

	edited, usage, err := e.Complete(ctx, llmProvider, prompt.String())
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"edited_content": edited,
			"word_count":     agents.WordCount(edited),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"preserve_style": preserveStyle},
	}, nil
}

// ImproveContent improves content quality without changing the core message
func (e *EditorAgent) ImproveContent(ctx context.Context, content string, areas []string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", content); err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		areas = []string{"clarity", "engagement", "flow", "impact"}
	}

	prompt := fmt.Sprintf(`Improve the following content by focusing on: %s

Original Content:
%s

Please:
1. Maintain the core message and key points
2. Improve clarity and readability
3. Enhance engagement and impact
4. Ensure smooth flow and transitions
5. Fix any grammatical or style issues
6. Make the content more compelling`, strings.Join(areas, ", "), content)

	improved, usage, err := e.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"improved_content": improved,
			"word_count":       agents.WordCount(improved),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"improvement_areas": areas},
	}, nil
}

// CheckGrammarAndStyle performs a detailed grammar and style check
func (e *EditorAgent) CheckGrammarAndStyle(ctx context.Context, content string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("content", content); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Perform a detailed grammar and style analysis of the following content:

%s

Please provide:
1. Grammar errors and corrections
2. Style issues and suggestions
3. Punctuation and formatting issues
4. Word choice and vocabulary suggestions
5. Sentence structure improvements
6. Overall writing quality assessment`, content)

	analysis, usage, err := e.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"grammar_analysis": analysis,
			"errors_found":     agents.LinesMatching(analysis, "error", "incorrect", "wrong", "fix"),
			"suggestions":      agents.LinesMatching(analysis, "suggest", "consider", "try", "improve"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
