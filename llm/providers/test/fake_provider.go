package test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/your-org/content-studio/llm/providers/shared"
)

// FakeProvider implements LLMProvider for testing purposes.
// Responses are matched by substring against the first user message,
// so tests can register canned replies per prompt fragment.
type FakeProvider struct {
	mu           sync.RWMutex
	responses    map[string]*shared.CompletionResponse
	errors       map[string]error
	delays       map[string]time.Duration
	defaultReply string
	callCount    int
	lastRequest  *shared.CompletionRequest
}

// NewFakeProvider creates a new fake provider for testing
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		responses: make(map[string]*shared.CompletionResponse),
		errors:    make(map[string]error),
		delays:    make(map[string]time.Duration),
	}
}

// AddResponse adds a canned response for prompts containing the fragment
func (fp *FakeProvider) AddResponse(fragment string, response *shared.CompletionResponse) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.responses[fragment] = response
}

// AddError adds an error for prompts containing the fragment
func (fp *FakeProvider) AddError(fragment string, err error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.errors[fragment] = err
}

// AddDelay adds a delay for prompts containing the fragment
func (fp *FakeProvider) AddDelay(fragment string, delay time.Duration) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.delays[fragment] = delay
}

// SetDefaultReply sets the content returned when no fragment matches
func (fp *FakeProvider) SetDefaultReply(content string) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.defaultReply = content
}

// GetCallCount returns the number of calls made to the provider
func (fp *FakeProvider) GetCallCount() int {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	return fp.callCount
}

// GetLastRequest returns the last request made to the provider
func (fp *FakeProvider) GetLastRequest() *shared.CompletionRequest {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	return fp.lastRequest
}

// Name returns the provider name
func (fp *FakeProvider) Name() string { return "fake" }

// CountTokens returns a mock token count
func (fp *FakeProvider) CountTokens(messages []shared.Message, model string) (int, error) {
	totalTokens := 0
	for _, msg := range messages {
		totalTokens += len(msg.Content) / 4
		totalTokens += 4 // overhead per message
	}
	return totalTokens, nil
}

// Complete performs a mock completion request
func (fp *FakeProvider) Complete(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	fp.mu.Lock()
	fp.callCount++
	fp.lastRequest = req
	fp.mu.Unlock()

	var prompt string
	for _, msg := range req.Messages {
		if msg.Role == shared.RoleUser && msg.Content != "" {
			prompt = msg.Content
			break
		}
	}

	fp.mu.RLock()
	defer fp.mu.RUnlock()

	for fragment, delay := range fp.delays {
		if strings.Contains(prompt, fragment) {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	for fragment, err := range fp.errors {
		if strings.Contains(prompt, fragment) {
			return nil, err
		}
	}

	for fragment, resp := range fp.responses {
		if strings.Contains(prompt, fragment) {
			return resp, nil
		}
	}

	content := fp.defaultReply
	if content == "" {
		content = "fake completion"
	}

	return &shared.CompletionResponse{
		Content:    content,
		StopReason: "stop",
		Usage: shared.TokenUsage{
			PromptTokens:     len(prompt) / 4,
			CompletionTokens: len(content) / 4,
			TotalTokens:      (len(prompt) + len(content)) / 4,
		},
	}, nil
}
