package seo

import (
	"github.com/your-org/content-studio/llm/agents"
)

// SEOAgentSchema defines the schema for the SEO agent
var SEOAgentSchema = agents.AgentSchema{
	Name:        "seo",
	Description: "Optimizes content for search engines and generates keyword and meta-tag suggestions",
	Input: agents.InputSchema{
		Required: []string{"content"},
		Optional: []string{"target_keywords", "content_type", "target_audience", "topic"},
		Types: map[string]string{
			"content":         "string",
			"target_keywords": "array",
			"content_type":    "string",
			"target_audience": "string",
			"topic":           "string",
		},
		Defaults: map[string]any{
			"content_type":    "article",
			"target_audience": "general",
		},
		Examples: map[string]any{
			"content":         "A draft about serverless computing.",
			"target_keywords": []any{"serverless", "faas"},
		},
	},
	Output: agents.OutputSchema{
		Type: "object",
		Structure: map[string]string{
			"optimized_content": "string",
			"seo_analysis":      "string",
			"seo_score":         "number",
			"recommendations":   "array",
		},
		Description: "SEO-optimized content plus analysis, score, and recommendations",
	},
	Version: "1.0.0",
}

// SEOAgent optimizes content for search engines
type SEOAgent struct {
	*agents.BaseAgent
}

// Config holds SEO agent configuration
type Config struct {
	Model string
}

// NewSEOAgent creates a new SEO agent
func NewSEOAgent(cfg Config) *SEOAgent {
	spm := agents.NewSystemPromptManager()
	return &SEOAgent{
		BaseAgent: agents.NewBaseAgent(agents.BaseConfig{
			Name:         "seo",
			Model:        cfg.Model,
			Temperature:  0.4,
			MaxTokens:    4000,
			SystemPrompt: spm.GetPrompt("seo"),
		}),
	}
}

// Schema returns the agent's schema
func (s *SEOAgent) Schema() agents.AgentSchema {
	return SEOAgentSchema
}

// Capabilities returns the agent's capabilities
func (s *SEOAgent) Capabilities() []agents.Capability {
	return []agents.Capability{
		{
			Name:        "content_optimization",
			Description: "Rework content around target keywords while keeping readability",
		},
		{
			Name:        "meta_tag_generation",
			Description: "Generate meta titles (50-60 chars) and descriptions (150-160 chars)",
		},
		{
			Name:        "keyword_research",
			Description: "Suggest primary, long-tail, and related keywords for a topic",
		},
		{
			Name:        "seo_analysis",
			Description: "Score content on keyword usage, structure, and readability",
		},
	}
}
