package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/option"
)

const (
	geminiModelPrefix = "gemini-"

	envOpenAIAPIKey = "OPENAI_API_KEY"
	envGeminiAPIKey = "GEMINI_API_KEY"
)

// ProviderFactory creates providers based on model name
type ProviderFactory struct {
	openaiAPIKey  string
	openaiBaseURL string
	geminiAPIKey  string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, openaiBaseURL, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey:  openaiAPIKey,
		openaiBaseURL: openaiBaseURL,
		geminiAPIKey:  geminiAPIKey,
	}
}

// APIKeyFor returns the env setting name and configured credential the model needs
func (f *ProviderFactory) APIKeyFor(model string) (setting, key string) {
	if isGeminiModel(model) {
		return envGeminiAPIKey, f.geminiAPIKey
	}
	return envOpenAIAPIKey, f.openaiAPIKey
}

// GetProvider returns the provider for the given model. Unknown models go to OpenAI.
func (f *ProviderFactory) GetProvider(ctx context.Context, model string) (Provider, error) {
	if isGeminiModel(model) {
		provider, err := NewGeminiProvider(ctx, f.geminiAPIKey, "")
		if err != nil {
			return nil, err
		}
		return provider, nil
	}

	var opts []option.RequestOption
	if f.openaiBaseURL != "" {
		opts = append(opts, option.WithBaseURL(f.openaiBaseURL))
	}
	return NewOpenAIProvider(f.openaiAPIKey, opts...), nil
}

func isGeminiModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), geminiModelPrefix)
}
