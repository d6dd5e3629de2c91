package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/content-studio/llm/agents"
	providertest "github.com/your-org/content-studio/llm/providers/test"
)

const sampleReview = `Overall assessment and score: 7 out of 10.

The introduction is strong and the tone is effective.
I suggest tightening the second paragraph.
Consider adding a concluding call to action.

Grammar: no issues found.`

func TestEditorAgentSchema(t *testing.T) {
	schema := EditorAgentSchema

	assert.Equal(t, "editor", schema.Name)
	assert.Contains(t, schema.Input.Required, "content")
	assert.Equal(t, "array", schema.Input.Types["review_focus"])
}

func TestNewEditorAgent(t *testing.T) {
	agent := NewEditorAgent(Config{})

	assert.Equal(t, "editor", agent.Name())
	assert.Equal(t, "gpt-4", agent.Model())
	assert.Len(t, agent.Capabilities(), 4)
}

func TestReviewContent(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply(sampleReview)

	result, err := agent.ReviewContent(context.Background(), ReviewRequest{
		Content: "A draft about container orchestration.",
	}, llm)

	assert.NoError(t, err)
	assert.True(t, result.Success)

	content := result.Content.(map[string]any)
	assert.Equal(t, 7, content["overall_score"])
	assert.Len(t, content["suggestions"].([]string), 2)
	assert.NotEmpty(t, content["positive_aspects"])

	// Default focus areas land in the prompt
	prompt := llm.GetLastRequest().Messages[1].Content
	assert.Contains(t, prompt, "grammar, style, clarity, structure, engagement")
	assert.Contains(t, prompt, "general audience")
}

func TestReviewContentEmpty(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()

	_, err := agent.ReviewContent(context.Background(), ReviewRequest{Content: ""}, llm)

	var ve *agents.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
	assert.Equal(t, 0, llm.GetCallCount())
}

func TestReviewContentNoScore(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("The draft reads well. No numeric rating given.")

	result, err := agent.ReviewContent(context.Background(), ReviewRequest{Content: "draft"}, llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	_, hasScore := content["overall_score"]
	assert.False(t, hasScore)
}

func TestEditContent(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("The edited draft, now shorter.")

	result, err := agent.EditContent(context.Background(), "Original draft text.", "Cut it to half the length", true, llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	assert.Contains(t, content["edited_content"].(string), "edited draft")

	prompt := llm.GetLastRequest().Messages[1].Content
	assert.Contains(t, prompt, "Cut it to half the length")
	assert.Contains(t, prompt, "Preserve the original writing style")
}

func TestEditContentMissingInstructions(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()

	_, err := agent.EditContent(context.Background(), "Some text", "  ", false, llm)

	var ve *agents.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "edit_instructions", ve.Field)
}

func TestImproveContent(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Improved version with better flow.")

	result, err := agent.ImproveContent(context.Background(), "Flat draft.", nil, llm)
	assert.NoError(t, err)

	assert.Equal(t, []string{"clarity", "engagement", "flow", "impact"}, result.Metadata["improvement_areas"])
	assert.Contains(t, llm.GetLastRequest().Messages[1].Content, "clarity, engagement, flow, impact")
}

func TestCheckGrammarAndStyle(t *testing.T) {
	agent := NewEditorAgent(Config{})
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply(`Error: "their" should be "there" in paragraph two.
Suggest splitting the long third sentence.
Overall quality is solid.`)

	result, err := agent.CheckGrammarAndStyle(context.Background(), "Their are problems here.", llm)
	assert.NoError(t, err)

	content := result.Content.(map[string]any)
	assert.Len(t, content["errors_found"].([]string), 1)
	assert.Len(t, content["suggestions"].([]string), 1)
}
