package llm

import (
	"context"
)

// Response status values shared by all providers
const (
	StatusCompleted  = "completed"
	StatusIncomplete = "incomplete"
	StatusFailed     = "failed"
)

// Provider defines the interface for text generation providers
type Provider interface {
	// Generate performs a single, non-streaming generation call.
	// A response with empty OutputText is not an error at this layer.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model           string
	Instructions    string
	Input           string
	MaxOutputTokens int64
	// ReasoningMode: none, minimal, low, medium, high, xhigh
	ReasoningMode string
}

// GenerationResponse contains the result from the provider
type GenerationResponse struct {
	Status           string `json:"status"`
	IncompleteReason string `json:"incompleteReason,omitempty"`
	OutputText       string `json:"-"`
	ErrorMessage     string `json:"error,omitempty"`
	Usage            Usage  `json:"usage"`
}

// Usage holds token counts as reported by the provider. Zero means not reported.
type Usage struct {
	InputTokens       int64 `json:"inputTokens"`
	CachedInputTokens int64 `json:"cachedInputTokens"`
	OutputTokens      int64 `json:"outputTokens"`
	ReasoningTokens   int64 `json:"reasoningTokens"`
	TotalTokens       int64 `json:"totalTokens"`
}
