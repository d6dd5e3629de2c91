package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompletionRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     *CompletionRequest
		wantErr ErrorCode
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "empty messages",
			req:     &CompletionRequest{Options: CompletionOptions{Model: "gpt-4"}},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "missing role",
			req: &CompletionRequest{
				Messages: []Message{{Content: "hello"}},
				Options:  CompletionOptions{Model: "gpt-4"},
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "invalid role",
			req: &CompletionRequest{
				Messages: []Message{{Role: "narrator", Content: "hello"}},
				Options:  CompletionOptions{Model: "gpt-4"},
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "missing model",
			req: &CompletionRequest{
				Messages: []Message{{Role: RoleUser, Content: "hello"}},
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "valid request",
			req: &CompletionRequest{
				Messages: []Message{
					{Role: RoleSystem, Content: "You are a writer."},
					{Role: RoleUser, Content: "Write an article."},
				},
				Options: CompletionOptions{Model: "gpt-4", MaxTokens: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCompletionRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var pe *ProviderError
			assert.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.wantErr, pe.Code)
		})
	}
}

func TestNormalizeError(t *testing.T) {
	assert.Nil(t, NormalizeError(nil))

	pe := &ProviderError{Code: ErrRateLimited, Message: "slow down"}
	assert.Same(t, pe, NormalizeError(pe))

	generic := NormalizeError(errors.New("boom"))
	assert.Equal(t, ErrUnknown, generic.Code)
	assert.Equal(t, "boom", generic.Message)
}
