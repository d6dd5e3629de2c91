package research

import (
	"github.com/your-org/content-studio/llm/agents"
)

// ResearchAgentSchema defines the schema for the research agent
var ResearchAgentSchema = agents.AgentSchema{
	Name:        "research",
	Description: "Gathers facts, statistics, quotes, and trend analysis to support content creation",
	Input: agents.InputSchema{
		Required: []string{"topic"},
		Optional: []string{"research_depth", "content_type", "target_audience", "time_period", "geographic_scope"},
		Types: map[string]string{
			"topic":            "string",
			"research_depth":   "string",
			"content_type":     "string",
			"target_audience":  "string",
			"time_period":      "string",
			"geographic_scope": "string",
		},
		Defaults: map[string]any{
			"research_depth":  "comprehensive",
			"content_type":    "article",
			"target_audience": "general",
		},
		Examples: map[string]any{
			"topic":          "remote work productivity",
			"research_depth": "in-depth",
		},
	},
	Output: agents.OutputSchema{
		Type: "object",
		Structure: map[string]string{
			"research_findings": "string",
			"key_facts":         "array",
			"sources":           "array",
			"insights":          "array",
		},
		Description: "Research findings with extracted facts, sources, and insights",
	},
	Version: "1.0.0",
}

// ResearchAgent gathers information for content creation
type ResearchAgent struct {
	*agents.BaseAgent
}

// Config holds research agent configuration
type Config struct {
	Model string
}

// NewResearchAgent creates a new research agent
func NewResearchAgent(cfg Config) *ResearchAgent {
	spm := agents.NewSystemPromptManager()
	return &ResearchAgent{
		BaseAgent: agents.NewBaseAgent(agents.BaseConfig{
			Name:         "research",
			Model:        cfg.Model,
			Temperature:  0.2,
			MaxTokens:    4000,
			SystemPrompt: spm.GetPrompt("research"),
		}),
	}
}

// Schema returns the agent's schema
func (r *ResearchAgent) Schema() agents.AgentSchema {
	return ResearchAgentSchema
}

// Capabilities returns the agent's capabilities
func (r *ResearchAgent) Capabilities() []agents.Capability {
	return []agents.Capability{
		{
			Name:        "topic_research",
			Description: "Gather facts, trends, expert opinions, and sources for a topic",
		},
		{
			Name:        "fact_checking",
			Description: "Verify claims, statistics, and attributions with an accuracy score",
		},
		{
			Name:        "statistics_gathering",
			Description: "Collect key numbers, growth patterns, and benchmarks",
		},
		{
			Name:        "expert_quotes",
			Description: "Find attributed expert quotes and credentials for a topic",
		},
		{
			Name:        "trend_analysis",
			Description: "Analyze current, emerging, and predicted trends",
		},
	}
}
