package writer

import (
	"github.com/your-org/content-studio/llm/agents"
)

// WriterAgentSchema defines the schema for the writer agent
var WriterAgentSchema = agents.AgentSchema{
	Name:        "writer",
	Description: "Creates initial content drafts from a topic and requirements",
	Input: agents.InputSchema{
		Required: []string{"topic"},
		Optional: []string{"content_type", "target_audience", "word_count", "tone", "keywords", "additional_requirements"},
		Types: map[string]string{
			"topic":                   "string",
			"content_type":            "string",
			"target_audience":         "string",
			"word_count":              "number",
			"tone":                    "string",
			"keywords":                "array",
			"additional_requirements": "string",
		},
		Defaults: map[string]any{
			"content_type":    "article",
			"target_audience": "general",
			"word_count":      1000,
			"tone":            "professional",
		},
		Examples: map[string]any{
			"topic":      "the rise of edge computing",
			"word_count": 1200,
			"keywords":   []any{"edge computing", "latency"},
		},
	},
	Output: agents.OutputSchema{
		Type: "object",
		Structure: map[string]string{
			"draft":      "string",
			"word_count": "number",
		},
		Description: "A complete content draft with its actual word count",
	},
	Version: "1.0.0",
}

// WriterAgent creates initial content drafts
type WriterAgent struct {
	*agents.BaseAgent
	maxWords int
}

// Config holds writer agent configuration
type Config struct {
	Model string
	// MaxWords caps requested word counts (MAX_CONTENT_LENGTH)
	MaxWords int
}

// NewWriterAgent creates a new writer agent
func NewWriterAgent(cfg Config) *WriterAgent {
	if cfg.MaxWords == 0 {
		cfg.MaxWords = 5000
	}
	spm := agents.NewSystemPromptManager()
	return &WriterAgent{
		BaseAgent: agents.NewBaseAgent(agents.BaseConfig{
			Name:         "writer",
			Model:        cfg.Model,
			Temperature:  0.7,
			MaxTokens:    4000,
			SystemPrompt: spm.GetPrompt("writer"),
		}),
		maxWords: cfg.MaxWords,
	}
}

// Schema returns the agent's schema
func (w *WriterAgent) Schema() agents.AgentSchema {
	return WriterAgentSchema
}

// Capabilities returns the agent's capabilities
func (w *WriterAgent) Capabilities() []agents.Capability {
	return []agents.Capability{
		{
			Name:        "content_drafting",
			Description: "Create structured content drafts from a topic, audience, and tone",
		},
		{
			Name:        "section_expansion",
			Description: "Expand a section to a target length while keeping tone and flow",
		},
		{
			Name:        "content_rewriting",
			Description: "Rewrite existing content for a new tone, audience, or length",
		},
	}
}
