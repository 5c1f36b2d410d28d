package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const (
	// Reasoning effort levels
	reasoningNone    = "none" // GPT-5.2 default - lowest latency
	reasoningMinimal = "minimal"
	reasoningLow     = "low"
	reasoningMedium  = "medium"
	reasoningHigh    = "high"
	reasoningXHigh   = "xhigh"

	// Provider name
	providerNameOpenAI = "openai"
)

// OpenAIProvider implements the Provider interface using OpenAI's Responses API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider. SDK retries are disabled:
// every generation is a single attempt.
func NewOpenAIProvider(apiKey string, opts ...option.RequestOption) *OpenAIProvider {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	client := openai.NewClient(append(base, opts...)...)
	return &OpenAIProvider{
		client: &client,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Generate implements non-streaming generation using OpenAI's Responses API
func (p *OpenAIProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	transaction := sentry.StartTransaction(ctx, "openai.generate")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := p.buildRequestParams(request)

	span := transaction.StartChild("openai.api_call")
	apiStartTime := time.Now()
	resp, err := p.client.Responses.New(ctx, params)
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ OPENAI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	log.Printf("⏱️  OPENAI API CALL COMPLETED in %v (status: %s)", apiDuration, resp.Status)
	transaction.SetTag("success", "true")
	transaction.SetTag("status", string(resp.Status))

	return convertOpenAIResponse(resp), nil
}

// buildRequestParams converts GenerationRequest to OpenAI-specific ResponseNewParams
func (p *OpenAIProvider) buildRequestParams(request *GenerationRequest) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Model: request.Model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(request.Input),
		},
		Instructions: openai.String(request.Instructions),
	}

	if request.MaxOutputTokens > 0 {
		params.MaxOutputTokens = openai.Int(request.MaxOutputTokens)
	}

	// Only include the reasoning parameter for models that support it
	if supportsReasoning(request.Model) {
		params.Reasoning = shared.ReasoningParam{
			Effort: mapReasoningEffort(request.ReasoningMode),
		}
	}

	return params
}

// supportsReasoning reports whether the model accepts reasoning.effort (GPT-5 family)
func supportsReasoning(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "gpt-5")
}

func mapReasoningEffort(mode string) shared.ReasoningEffort {
	switch mode {
	case reasoningMinimal:
		return shared.ReasoningEffort(reasoningMinimal)
	case reasoningLow:
		return shared.ReasoningEffortLow
	case reasoningMedium:
		return shared.ReasoningEffortMedium
	case reasoningHigh:
		return shared.ReasoningEffortHigh
	case reasoningXHigh:
		return shared.ReasoningEffort(reasoningXHigh)
	default:
		// lowest latency
		return shared.ReasoningEffort(reasoningNone)
	}
}

func convertOpenAIResponse(resp *responses.Response) *GenerationResponse {
	out := &GenerationResponse{
		Status:           string(resp.Status),
		IncompleteReason: resp.IncompleteDetails.Reason,
		OutputText:       resp.OutputText(),
		ErrorMessage:     resp.Error.Message,
		Usage: Usage{
			InputTokens:       resp.Usage.InputTokens,
			CachedInputTokens: resp.Usage.InputTokensDetails.CachedTokens,
			OutputTokens:      resp.Usage.OutputTokens,
			ReasoningTokens:   resp.Usage.OutputTokensDetails.ReasoningTokens,
			TotalTokens:       resp.Usage.TotalTokens,
		},
	}
	return out
}
