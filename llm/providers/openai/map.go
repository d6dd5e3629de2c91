package openai

import (
	"github.com/sashabaranov/go-openai"

	"github.com/your-org/content-studio/llm/providers/shared"
)

// ToOpenAIRequest converts a shared CompletionRequest to OpenAI format
func ToOpenAIRequest(req *shared.CompletionRequest) openai.ChatCompletionRequest {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	o := req.Options
	return openai.ChatCompletionRequest{
		Model:       o.Model,
		Messages:    msgs,
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
		TopP:        o.TopP,
		Stop:        o.Stop,
	}
}

// FromOpenAIResponse converts an OpenAI response to shared format
func FromOpenAIResponse(resp openai.ChatCompletionResponse) *shared.CompletionResponse {
	var content string
	var stopReason string

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		content = choice.Message.Content
		stopReason = string(choice.FinishReason)
	}

	return &shared.CompletionResponse{
		Content:    content,
		StopReason: stopReason,
		Usage: shared.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
}
