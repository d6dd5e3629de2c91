package creative

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/content-studio/llm/agents"
	"github.com/your-org/content-studio/llm/providers/shared"
)

// IdeasRequest describes a content ideation run
type IdeasRequest struct {
	Topic           string `json:"topic" validate:"required"`
	ContentType     string `json:"content_type"`
	TargetAudience  string `json:"target_audience"`
	IdeaCount       int    `json:"idea_count"`
	CreativityLevel string `json:"creativity_level"`
}

func (r *IdeasRequest) applyDefaults() {
	if r.ContentType == "" {
		r.ContentType = "article"
	}
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
	if r.IdeaCount <= 0 {
		r.IdeaCount = 10
	}
	if r.CreativityLevel == "" {
		r.CreativityLevel = "high"
	}
}

// GenerateIdeas generates creative content ideas for a topic
func (c *CreativeAgent) GenerateIdeas(ctx context.Context, req IdeasRequest, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", req.Topic); err != nil {
		return nil, err
	}
	req.applyDefaults()

	prompt := fmt.Sprintf(`Generate %d %s-creativity content ideas for a %s about %q targeting %s audience.

Please provide:
1. Unique and innovative angles
2. Viral-worthy concepts
3. Engaging storytelling approaches
4. Interactive content ideas
5. Visual and multimedia concepts
6. Trending topic connections
7. Controversial or thought-provoking angles
8. Emotional appeal strategies
9. Shareable content formats
10. Cross-platform adaptation ideas

For each idea, include:
- Title/Headline
- Brief description
- Target audience appeal
- Engagement potential
- Implementation difficulty
- Expected impact`, req.IdeaCount, req.CreativityLevel, req.ContentType, req.Topic, req.TargetAudience)

	ideas, usage, err := c.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"topic":                req.Topic,
			"ideas_text":           ideas,
			"idea_list":            agents.LinesMatching(ideas, "idea", "concept", "approach", "angle"),
			"creative_angles":      agents.LinesMatching(ideas, "angle", "perspective", "viewpoint", "approach"),
			"engagement_potential": agents.LinesMatching(ideas, "engagement", "viral", "shareable", "interactive"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata: map[string]any{
			"idea_count":       req.IdeaCount,
			"creativity_level": req.CreativityLevel,
		},
	}, nil
}

// BrainstormHeadlines brainstorms headlines in the given style
func (c *CreativeAgent) BrainstormHeadlines(ctx context.Context, topic, contentType string, headlineCount int, headlineStyle string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", topic); err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "article"
	}
	if headlineCount <= 0 {
		headlineCount = 15
	}
	if headlineStyle == "" {
		headlineStyle = "clickbait"
	}

	prompt := fmt.Sprintf(`Generate %d %s headlines for a %s about %q.

Headline styles to consider:
- How-to guides
- Listicles
- Question-based
- Controversial statements
- Emotional triggers
- Curiosity gaps
- Number-based
- Problem-solution
- Behind-the-scenes
- Expert insights

For each headline, include:
- Headline text
- Style category
- Emotional appeal
- Click-through potential
- SEO friendliness
- Brand safety`, headlineCount, headlineStyle, contentType, topic)

	headlines, usage, err := c.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"headlines_text":          headlines,
			"headline_list":           agents.LinesMatching(headlines, "headline", "title", "how to", "why", "what"),
			"headline_styles":         agents.LinesMatching(headlines, "style", "type", "format", "category"),
			"click_through_potential": agents.LinesMatching(headlines, "click", "ctr", "potential", "appeal"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata: map[string]any{
			"headline_count": headlineCount,
			"headline_style": headlineStyle,
		},
	}, nil
}

// CreateHooks creates engaging content hooks of the given type
func (c *CreativeAgent) CreateHooks(ctx context.Context, topic string, hookCount int, hookType string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", topic); err != nil {
		return nil, err
	}
	if hookCount <= 0 {
		hookCount = 10
	}
	if hookType == "" {
		hookType = "opening"
	}

	prompt := fmt.Sprintf(`Create %d engaging %s hooks for content about %q.

Hook types to consider:
- Story-based openings
- Shocking statistics
- Provocative questions
- Personal anecdotes
- Current events connection
- Problem identification
- Promise of value
- Controversial statements
- Visual descriptions
- Expert quotes

For each hook, include:
- Hook text
- Hook type
- Emotional impact
- Engagement potential
- Relevance to topic`, hookCount, hookType, topic)

	hooks, usage, err := c.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"hooks_text":       hooks,
			"hook_list":        agents.LinesMatching(hooks, "hook", "opening", "intro", "start"),
			"hook_types":       agents.LinesMatching(hooks, "story", "statistic", "question", "anecdote"),
			"emotional_impact": agents.LinesMatching(hooks, "emotional", "feeling", "impact", "response"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"hook_count": hookCount, "hook_type": hookType},
	}, nil
}

// GenerateViralConcepts generates platform-specific viral content concepts
func (c *CreativeAgent) GenerateViralConcepts(ctx context.Context, topic, platform string, conceptCount int, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", topic); err != nil {
		return nil, err
	}
	if platform == "" {
		platform = "general"
	}
	if conceptCount <= 0 {
		conceptCount = 8
	}

	prompt := fmt.Sprintf(`Generate %d viral content concepts for %q on %s platform.

Viral elements to consider:
- Emotional triggers (joy, anger, surprise, fear)
- Social proof and relatability
- Trending topic connections
- Shareable formats
- Interactive elements
- User-generated content potential
- Influencer collaboration ideas
- Hashtag campaigns
- Challenge concepts
- Behind-the-scenes content

For each concept, include:
- Concept description
- Viral potential score (1-10)
- Target emotions
- Shareability factors
- Implementation strategy
- Expected reach`, conceptCount, topic, platform)

	concepts, usage, err := c.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"viral_concepts_text": concepts,
			"concept_list":        agents.LinesMatching(concepts, "concept", "idea", "campaign", "challenge"),
			"viral_scores":        agents.LinesMatching(concepts, "score", "viral", "potential", "rating"),
			"emotional_triggers":  agents.LinesMatching(concepts, "joy", "anger", "surprise", "fear", "emotion"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"platform": platform, "concept_count": conceptCount},
	}, nil
}

// CreateContentSeries plans a multi-part content series
func (c *CreativeAgent) CreateContentSeries(ctx context.Context, topic string, seriesLength int, contentType string, llmProvider shared.LLMProvider) (*agents.AgentResult, error) {
	start := time.Now()

	if err := agents.RequireText("topic", topic); err != nil {
		return nil, err
	}
	if seriesLength <= 0 {
		seriesLength = 5
	}
	if contentType == "" {
		contentType = "article"
	}

	prompt := fmt.Sprintf(`Create a %d-part %s series about %q.

Series structure to consider:
- Progressive learning path
- Problem-solution progression
- Story arc development
- Expert interview series
- Case study progression
- How-to step sequence
- Industry deep dive
- Trend analysis timeline
- Comparison series
- Behind-the-scenes journey

For the series, include:
- Series theme and concept
- Individual piece titles
- Content flow and progression
- Engagement hooks for each piece
- Cross-promotion strategies
- Series completion incentives`, seriesLength, contentType, topic)

	series, usage, err := c.Complete(ctx, llmProvider, prompt)
	if err != nil {
		return nil, err
	}

	var seriesConcept string
	if lines := agents.LinesMatching(series, "concept", "theme"); len(lines) > 0 {
		seriesConcept = lines[0]
	}

	return &agents.AgentResult{
		Content: map[string]any{
			"series_text":    series,
			"series_concept": seriesConcept,
			"series_parts":   agents.LinesMatching(series, "part", "piece", "episode", "chapter"),
			"series_flow":    agents.LinesMatching(series, "flow", "progression", "sequence", "order"),
		},
		Success:    true,
		TokensUsed: usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata:   map[string]any{"series_length": seriesLength, "content_type": contentType},
	}, nil
}
