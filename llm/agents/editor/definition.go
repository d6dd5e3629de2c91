package editor

import (
	"github.com/your-org/content-studio/llm/agents"
)

// EditorAgentSchema defines the schema for the editor agent
var EditorAgentSchema = agents.AgentSchema{
	Name:        "editor",
	Description: "Reviews, edits, and improves content drafts for grammar, style, and clarity",
	Input: agents.InputSchema{
		Required: []string{"content"},
		Optional: []string{"content_type", "target_audience", "review_focus", "edit_instructions"},
		Types: map[string]string{
			"content":           "string",
			"content_type":      "string",
			"target_audience":   "string",
			"review_focus":      "array",
			"edit_instructions": "string",
		},
		Defaults: map[string]any{
			"content_type":    "article",
			"target_audience": "general",
			"review_focus":    []any{"grammar", "style", "clarity", "structure", "engagement"},
		},
		Examples: map[string]any{
			"content":      "A draft paragraph about cloud migration.",
			"review_focus": []any{"grammar", "clarity"},
		},
	},
	Output: agents.OutputSchema{
		Type: "object",
		Structure: map[string]string{
			"review_text":      "string",
			"overall_score":    "number",
			"suggestions":      "array",
			"positive_aspects": "array",
		},
		Description: "Structured review with a 1-10 score, suggestions, and strengths",
	},
	Version: "1.0.0",
}

// EditorAgent reviews and improves content
type EditorAgent struct {
	*agents.BaseAgent
}

// Config holds editor agent configuration
type Config struct {
	Model string
}

// NewEditorAgent creates a new editor agent
func NewEditorAgent(cfg Config) *EditorAgent {
	spm := agents.NewSystemPromptManager()
	return &EditorAgent{
		BaseAgent: agents.NewBaseAgent(agents.BaseConfig{
			Name:         "editor",
			Model:        cfg.Model,
			Temperature:  0.3,
			MaxTokens:    4000,
			SystemPrompt: spm.GetPrompt("editor"),
		}),
	}
}

// Schema returns the agent's schema
func (e *EditorAgent) Schema() agents.AgentSchema {
	return EditorAgentSchema
}

// Capabilities returns the agent's capabilities
func (e *EditorAgent) Capabilities() []agents.Capability {
	return []agents.Capability{
		{
			Name:        "content_review",
			Description: "Score a draft 1-10 and report issues across grammar, style, clarity, structure, and engagement",
		},
		{
			Name:        "instructed_editing",
			Description: "Apply specific edit instructions while preserving the core message",
		},
		{
			Name:        "content_improvement",
			Description: "Raise clarity, engagement, flow, and impact without changing the message",
		},
		{
			Name:        "grammar_check",
			Description: "Detailed grammar, punctuation, and style analysis with corrections",
		},
	}
}
