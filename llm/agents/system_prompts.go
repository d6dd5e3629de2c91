package agents

import (
	"fmt"
	"strings"
)

// SystemPrompt defines an agent's persona: its role, goal, and the
// constraints it works under. The full prompt is assembled on demand.
type SystemPrompt struct {
	Role         string
	Goal         string
	Capabilities []string
	Constraints  map[string]string
}

// GetFullPrompt returns the complete formatted system prompt
func (sp *SystemPrompt) GetFullPrompt() string {
	var builder strings.Builder

	builder.WriteString(sp.Role)
	builder.WriteString("\n\n")
	builder.WriteString("Your goal: ")
	builder.WriteString(sp.Goal)
	builder.WriteString("\n")

	if len(sp.Capabilities) > 0 {
		builder.WriteString("\nCapabilities:\n")
		for _, cap := range sp.Capabilities {
			builder.WriteString(fmt.Sprintf("- %s\n", cap))
		}
	}

	if len(sp.Constraints) > 0 {
		builder.WriteString("\nConstraints:\n")
		for key, value := range sp.Constraints {
			builder.WriteString(fmt.Sprintf("- %s: %s\n", key, value))
		}
	}

	return strings.TrimSpace(builder.String())
}

// ValidatePrompt validates that a system prompt has required components
func (sp *SystemPrompt) ValidatePrompt() error {
	if strings.TrimSpace(sp.Role) == "" {
		return fmt.Errorf("role cannot be empty")
	}
	if strings.TrimSpace(sp.Goal) == "" {
		return fmt.Errorf("goal cannot be empty")
	}
	return nil
}

// SystemPromptManager holds the default role prompts for the studio
type SystemPromptManager struct {
	prompts map[string]*SystemPrompt
}

// NewSystemPromptManager creates a manager preloaded with the studio roles
func NewSystemPromptManager() *SystemPromptManager {
	spm := &SystemPromptManager{
		prompts: make(map[string]*SystemPrompt),
	}
	spm.initializeDefaultPrompts()
	return spm
}

// GetPrompt retrieves a system prompt by role name, falling back to
// the generic prompt for unknown roles.
func (spm *SystemPromptManager) GetPrompt(role string) *SystemPrompt {
	if prompt, exists := spm.prompts[role]; exists {
		return prompt
	}
	return spm.prompts["generic"]
}

// RegisterPrompt registers a custom system prompt
func (spm *SystemPromptManager) RegisterPrompt(role string, prompt *SystemPrompt) {
	spm.prompts[role] = prompt
}

func (spm *SystemPromptManager) initializeDefaultPrompts() {
	spm.prompts["generic"] = &SystemPrompt{
		Role: "You are a content studio assistant capable of understanding and responding to content requests.",
		Goal: "Be helpful, accurate, and clear in your responses.",
	}

	spm.prompts["writer"] = &SystemPrompt{
		Role: `You are an expert content writer with years of experience in creating engaging, informative, and well-structured articles, blog posts, and marketing copy. You specialize in adapting writing style to match target audience and brand voice.`,
		Goal: "Create high-quality, engaging content that meets the specified requirements, target audience needs, and maintains consistent tone and style throughout.",
		Capabilities: []string{
			"content_drafting",
			"section_expansion",
			"content_rewriting",
		},
		Constraints: map[string]string{
			"originality": "content must be original and plagiarism-free",
			"structure":   "use clear headings and subheadings",
		},
	}

	spm.prompts["editor"] = &SystemPrompt{
		Role: `You are an expert content editor with extensive experience in reviewing, editing, and improving articles, blog posts, and marketing content. You specialize in grammar, style, clarity, and ensuring content meets quality standards.`,
		Goal: "Review and improve content to ensure it is grammatically correct, well-structured, engaging, and meets the highest quality standards while maintaining the original message and tone.",
		Capabilities: []string{
			"content_review",
			"grammar_and_style_analysis",
			"content_improvement",
		},
		Constraints: map[string]string{
			"scoring": "overall assessments use a 1-10 scale",
		},
	}

	spm.prompts["seo"] = &SystemPrompt{
		Role: `You are an expert SEO specialist with deep knowledge of search engine optimization, keyword research, and content optimization strategies. You specialize in improving content visibility and ranking in search engines.`,
		Goal: "Optimize content for search engines by implementing SEO best practices, keyword optimization, and ensuring content meets search engine requirements while maintaining quality and readability.",
		Capabilities: []string{
			"content_optimization",
			"keyword_research",
			"meta_tag_generation",
			"seo_analysis",
		},
		Constraints: map[string]string{
			"meta_title":       "50-60 characters",
			"meta_description": "150-160 characters",
		},
	}

	spm.prompts["research"] = &SystemPrompt{
		Role: `You are an expert researcher with extensive experience in gathering accurate, relevant, and up-to-date information from reliable sources. You specialize in fact-checking, data analysis, and providing comprehensive research insights.`,
		Goal: "Gather comprehensive, accurate, and relevant information to support content creation, ensuring all facts are verified and sources are credible.",
		Capabilities: []string{
			"topic_research",
			"fact_checking",
			"statistics_gathering",
			"trend_analysis",
			"expert_quote_discovery",
		},
		Constraints: map[string]string{
			"sourcing": "always attribute facts to credible sources",
		},
	}

	spm.prompts["creative"] = &SystemPrompt{
		Role: `You are an expert creative content strategist with extensive experience in brainstorming, ideation, and innovative content approaches. You specialize in generating unique, engaging, and viral-worthy content ideas.`,
		Goal: "Generate innovative, creative, and engaging content ideas that capture audience attention, drive engagement, and stand out in the digital landscape.",
		Capabilities: []string{
			"content_ideation",
			"headline_brainstorming",
			"hook_creation",
			"viral_concept_generation",
			"series_planning",
		},
		Constraints: map[string]string{
			"brand_safety": "ideas must remain brand-safe",
		},
	}
}
