package seo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/content-studio/llm/agents"
	providertest "github.com/your-org/content-studio/llm/providers/test"
)

const sampleOptimization = `Keyword density looks thin.

Optimized Content:
Serverless computing lets teams ship without managing servers.
FaaS platforms bill per invocation.

Recommendations:
Recommend adding the keyword to the first header.
SEO Score: 78`

func TestSEOAgentSchema(t *testing.T) {
	schema := SEOAgentSchema

	assert.Equal(t, "seo", schema.Name)
	assert.Contains(t, schema.Input.Required, "content")
	assert.Equal(t, "array", schema.Input.Types["target_keywords"])
}

func TestNewSEOAgent(t *testing.T) {
	agent := NewSEOAgent(Config{})

	assert.Equal(t, "seo", agent.Name())
	assert.Equal(t, "gpt-4", agent.Model())
	assert.Len(t, agent.Capabilities(), 4)
}

func TestOptimizeContent(t *testing.T) {
	agent := NewSEOAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply(sampleOptimization)

	result, err := agent.OptimizeContent(context.Background(), OptimizeRequest{
		Content:        "A plain draft about serverless.",
		TargetKeywords: []string{"serverless", "faas"},
	}, llm)

	assert.NoError(t, err)
	assert.True(t, result.Success)

	content := result.Content.(map[string]any)
	assert.Contains(t, content["optimized_content"].(string), "ship without managing servers")
	assert.NotContains(t, content["optimized_content"].(string), "Keyword density")
	assert.Equal(t, 78, content["seo_score"])
	assert.NotEmpty(t, content["recommendations"])

	prompt := llm.GetLastRequest().Messages[1].Content
	assert.Contains(t, prompt, "serverless, faas")
	assert.Contains(t, prompt, "Target Audience: general")
}

func TestOptimizeContentNoKeywords(t *testing.T) {
	agent := NewSEOAgent(Config{})
	llm := providertest.NewFakeProvider()

	_, err := agent.OptimizeContent(context.Background(), OptimizeRequest{Content: "draft"}, llm)

	var ve *agents.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "target_keywords", ve.Field)
	assert.Equal(t, 0, llm.GetCallCount())
}

func TestOptimizeContentNoSection(t *testing.T) {
	agent := NewSEOAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("General advice without a dedicated section.")

	result, err := agent.OptimizeContent(context.Background(), OptimizeRequest{
		Content:        "draft",
		TargetKeywords: []string{"kw"},
	}, llm)
	assert.NoError(t, err)

	// Whole reply is used when no optimized-content section is found
	content := result.Content.(map[string]any)
	assert.Equal(t, "General advice without a dedicated section.", content["optimized_content"])
}

func TestGenerateMetaTags(t *testing.T) {
	agent := NewSEOAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply(`Meta Title: Serverless Computing Explained for Busy Teams
Meta Description: Learn how serverless computing and FaaS platforms cut ops work, lower costs, and speed up delivery for modern engineering teams.`)

	result, err := agent.GenerateMetaTags(context.Background(), "Draft text.", []string{"serverless"}, "", llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	assert.Equal(t, "Serverless Computing Explained for Busy Teams", content["meta_title"])
	assert.Contains(t, content["meta_description"].(string), "cut ops work")

	assert.Contains(t, llm.GetLastRequest().Messages[1].Content, "50-60 characters")
}

func TestParseMetaTags(t *testing.T) {
	title, desc := parseMetaTags("Title: A\nDescription: B\nTitle: ignored second")
	assert.Equal(t, "A", title)
	assert.Equal(t, "B", desc)

	title, desc = parseMetaTags("no tags here")
	assert.Empty(t, title)
	assert.Empty(t, desc)
}

func TestSuggestKeywords(t *testing.T) {
	agent := NewSEOAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply(`Primary keywords: serverless computing, faas
Long-tail keywords: how does serverless pricing work
Related: cloud functions`)

	result, err := agent.SuggestKeywords(context.Background(), "serverless", "", "", llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	assert.Len(t, content["primary_keywords"].([]string), 1)
	assert.Len(t, content["long_tail_keywords"].([]string), 1)
}

func TestAnalyzeContent(t *testing.T) {
	agent := NewSEOAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply(`Headers are well structured.
Improve keyword placement in the intro.
Overall SEO Score: 64`)

	result, err := agent.AnalyzeContent(context.Background(), "Some draft.", []string{"kw"}, llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	assert.Equal(t, 64, content["seo_score"])
	assert.NotEmpty(t, content["improvements"])
	assert.NotEmpty(t, content["strengths"])
}
