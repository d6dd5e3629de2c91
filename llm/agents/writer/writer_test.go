package writer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/content-studio/llm/agents"
	providertest "github.com/your-org/content-studio/llm/providers/test"
)

func TestWriterAgentSchema(t *testing.T) {
	schema := WriterAgentSchema

	assert.Equal(t, "writer", schema.Name)
	assert.Contains(t, schema.Input.Required, "topic")
	assert.Equal(t, "number", schema.Input.Types["word_count"])
	assert.Equal(t, "article", schema.Input.Defaults["content_type"])
}

func TestNewWriterAgent(t *testing.T) {
	agent := NewWriterAgent(Config{})

	assert.Equal(t, "writer", agent.Name())
	assert.Equal(t, "gpt-4", agent.Model())
	assert.Equal(t, 5000, agent.maxWords)
	assert.Len(t, agent.Capabilities(), 3)
}

func TestCreateDraft(t *testing.T) {
	agent := NewWriterAgent(Config{Model: "gpt-4", MaxWords: 2000})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("# Edge Computing\n\nEdge computing moves compute closer to the data.")

	result, err := agent.CreateDraft(context.Background(), DraftRequest{
		Topic:    "edge computing",
		Keywords: []string{"latency", "edge"},
	}, llm)

	assert.NoError(t, err)
	assert.True(t, result.Success)

	content := result.Content.(map[string]any)
	assert.Contains(t, content["draft"].(string), "Edge Computing")
	assert.Greater(t, content["word_count"].(int), 0)

	// Defaults applied and keywords folded into the prompt
	prompt := llm.GetLastRequest().Messages[1].Content
	assert.Contains(t, prompt, "Approximately 1000 words")
	assert.Contains(t, prompt, "Tone: professional")
	assert.Contains(t, prompt, "latency, edge")
}

func TestCreateDraftEmptyTopic(t *testing.T) {
	agent := NewWriterAgent(Config{})
	llm := providertest.NewFakeProvider()

	_, err := agent.CreateDraft(context.Background(), DraftRequest{Topic: "  "}, llm)

	var ve *agents.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "topic", ve.Field)
	assert.Equal(t, 0, llm.GetCallCount())
}

func TestCreateDraftCapsWordCount(t *testing.T) {
	agent := NewWriterAgent(Config{MaxWords: 500})
	llm := providertest.NewFakeProvider()

	_, err := agent.CreateDraft(context.Background(), DraftRequest{
		Topic:     "a very long piece",
		WordCount: 100000,
	}, llm)

	assert.NoError(t, err)
	assert.Contains(t, llm.GetLastRequest().Messages[1].Content, "Approximately 500 words")
}

func TestCreateDraftProviderError(t *testing.T) {
	agent := NewWriterAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.AddError("flaky topic", errors.New("rate limited"))

	_, err := agent.CreateDraft(context.Background(), DraftRequest{Topic: "flaky topic"}, llm)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "writer completion failed")

	stats := agent.Stats()
	assert.Equal(t, 1, stats.TotalExecutions)
	assert.Equal(t, 0.0, stats.SuccessRate)
}

func TestExpandSection(t *testing.T) {
	agent := NewWriterAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("A much longer section with detail and examples.")

	result, err := agent.ExpandSection(context.Background(), "Short intro.", "Introduction", 0, llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	assert.Contains(t, content["expanded_section"].(string), "longer section")
	// Zero target falls back to 300
	assert.Contains(t, llm.GetLastRequest().Messages[1].Content, "approximately 300 words")
}

func TestRewriteContent(t *testing.T) {
	agent := NewWriterAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Casual version of the original.")

	result, err := agent.RewriteContent(context.Background(), RewriteRequest{
		Content:     "Formal original text.",
		NewTone:     "casual",
		NewAudience: "developers",
		NewLength:   400,
	}, llm)

	assert.NoError(t, err)
	assert.True(t, result.Success)

	prompt := llm.GetLastRequest().Messages[1].Content
	assert.Contains(t, prompt, "New Tone: casual")
	assert.Contains(t, prompt, "New Target Audience: developers")
	assert.Contains(t, prompt, "New Target Length: 400 words")
}

func TestRewriteContentEmpty(t *testing.T) {
	agent := NewWriterAgent(Config{})
	llm := providertest.NewFakeProvider()

	_, err := agent.RewriteContent(context.Background(), RewriteRequest{}, llm)
	assert.Error(t, err)
}
