package creative

import (
	"github.com/your-org/content-studio/llm/agents"
)

// CreativeAgentSchema defines the schema for the creative agent
var CreativeAgentSchema = agents.AgentSchema{
	Name:        "creative",
	Description: "Generates content ideas, headlines, hooks, viral concepts, and series plans",
	Input: agents.InputSchema{
		Required: []string{"topic"},
		Optional: []string{"content_type", "target_audience", "idea_count", "creativity_level", "platform"},
		Types: map[string]string{
			"topic":            "string",
			"content_type":     "string",
			"target_audience":  "string",
			"idea_count":       "number",
			"creativity_level": "string",
			"platform":         "string",
		},
		Defaults: map[string]any{
			"content_type":     "article",
			"target_audience":  "general",
			"idea_count":       10,
			"creativity_level": "high",
		},
		Examples: map[string]any{
			"topic":      "sustainable fashion",
			"idea_count": 5,
		},
	},
	Output: agents.OutputSchema{
		Type: "object",
		Structure: map[string]string{
			"ideas_text":      "string",
			"idea_list":       "array",
			"creative_angles": "array",
		},
		Description: "Creative ideation output with extracted ideas and angles",
	},
	Version: "1.0.0",
}

// CreativeAgent generates content ideas and creative concepts
type CreativeAgent struct {
	*agents.BaseAgent
}

// Config holds creative agent configuration
type Config struct {
	Model string
}

// NewCreativeAgent creates a new creative agent
func NewCreativeAgent(cfg Config) *CreativeAgent {
	spm := agents.NewSystemPromptManager()
	return &CreativeAgent{
		BaseAgent: agents.NewBaseAgent(agents.BaseConfig{
			Name:         "creative",
			Model:        cfg.Model,
			Temperature:  0.9,
			MaxTokens:    4000,
			SystemPrompt: spm.GetPrompt("creative"),
		}),
	}
}

// Schema returns the agent's schema
func (c *CreativeAgent) Schema() agents.AgentSchema {
	return CreativeAgentSchema
}

// Capabilities returns the agent's capabilities
func (c *CreativeAgent) Capabilities() []agents.Capability {
	return []agents.Capability{
		{
			Name:        "idea_generation",
			Description: "Generate unique content ideas with angles and engagement notes",
		},
		{
			Name:        "headline_brainstorming",
			Description: "Produce headlines across styles with click-through notes",
		},
		{
			Name:        "hook_creation",
			Description: "Write opening, social, and email hooks for a topic",
		},
		{
			Name:        "viral_concepts",
			Description: "Propose platform-specific viral concepts with potential scores",
		},
		{
			Name:        "series_planning",
			Description: "Plan multi-part content series with per-piece titles and flow",
		},
	}
}
