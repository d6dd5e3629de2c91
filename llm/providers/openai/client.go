package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/your-org/content-studio/llm/providers/shared"
	"github.com/your-org/content-studio/llm/providers/transport"
)

// Config holds OpenAI provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	OrgID   string
	// RequestsPerSecond throttles outgoing completions when positive
	RequestsPerSecond float64
	Burst             int
}

// limiters shares one token bucket per provider name, so reconstructed
// clients keep a single throttle toward the same API
var limiters = transport.NewRateLimiter()

// Provider implements the unified LLMProvider interface for OpenAI
type Provider struct {
	client  *openai.Client
	config  Config
	limiter *transport.Limiter
}

// NewProvider creates a new OpenAI provider
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, &shared.ProviderError{
			Code:    shared.ErrAuth,
			Message: "openai api key is required",
		}
	}

	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		openaiConfig.BaseURL = cfg.BaseURL
	}
	if cfg.OrgID != "" {
		openaiConfig.OrgID = cfg.OrgID
	}

	var limiter *transport.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = limiters.GetLimiter("openai", cfg.RequestsPerSecond, burst)
	}

	return &Provider{
		client:  openai.NewClientWithConfig(openaiConfig),
		config:  cfg,
		limiter: limiter,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string { return "openai" }

// CountTokens estimates token count for the given messages and model
func (p *Provider) CountTokens(messages []shared.Message, model string) (int, error) {
	// Rough estimation: ~4 characters per token plus role overhead.
	totalTokens := 0
	for _, msg := range messages {
		totalTokens += len(msg.Content) / 4
		totalTokens += 4
	}
	return totalTokens, nil
}

// Complete performs a completion request
func (p *Provider) Complete(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	if err := shared.ValidateCompletionRequest(req); err != nil {
		return nil, err
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, &shared.ProviderError{
				Code:    shared.ErrTimeout,
				Message: fmt.Sprintf("rate limit wait: %v", err),
			}
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, ToOpenAIRequest(req))
	if err != nil {
		return nil, NormalizeOpenAIError(err)
	}

	return FromOpenAIResponse(resp), nil
}

// NormalizeOpenAIError converts OpenAI errors to normalized ProviderError
func NormalizeOpenAIError(err error) *shared.ProviderError {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := shared.ErrUnknown
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			code = shared.ErrAuth
		case 404:
			code = shared.ErrModelNotFound
		case 429:
			code = shared.ErrRateLimited
		case 500, 502, 503:
			code = shared.ErrUnavailable
		}
		return &shared.ProviderError{
			Code:       code,
			Message:    fmt.Sprintf("openai: %s", apiErr.Message),
			HTTPStatus: apiErr.HTTPStatusCode,
			Raw:        apiErr,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &shared.ProviderError{
			Code:    shared.ErrTimeout,
			Message: err.Error(),
		}
	}

	return &shared.ProviderError{
		Code:    shared.ErrUnknown,
		Message: err.Error(),
	}
}
