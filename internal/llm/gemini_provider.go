package llm

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider. baseURL may be empty.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Generate implements non-streaming generation using Gemini's API
func (p *GeminiProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	transaction := sentry.StartTransaction(ctx, "gemini.generate")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGemini)

	span := transaction.StartChild("gemini.api_call")
	apiStartTime := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, request.Model, genai.Text(request.Input), p.buildConfig(request))
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	log.Printf("⏱️  GEMINI API CALL COMPLETED in %v", apiDuration)
	transaction.SetTag("success", "true")

	return convertGeminiResponse(result), nil
}

// buildConfig maps the request onto a Gemini config; a zero thinking budget
// is the low-latency equivalent of reasoning effort "none"
func (p *GeminiProvider) buildConfig(request *GenerationRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: request.Instructions}},
		},
	}
	if request.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(min(request.MaxOutputTokens, math.MaxInt32))
	}
	if request.ReasoningMode == "" || request.ReasoningMode == reasoningNone || request.ReasoningMode == reasoningMinimal {
		budget := int32(0)
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	}
	return config
}

func convertGeminiResponse(result *genai.GenerateContentResponse) *GenerationResponse {
	out := &GenerationResponse{
		Status:     StatusCompleted,
		OutputText: result.Text(),
	}

	if len(result.Candidates) == 0 {
		out.Status = StatusFailed
		if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
			out.ErrorMessage = fmt.Sprintf("prompt blocked: %s", result.PromptFeedback.BlockReason)
		}
	} else if candidate := result.Candidates[0]; candidate.FinishReason == genai.FinishReasonMaxTokens {
		out.Status = StatusIncomplete
		out.IncompleteReason = "max_output_tokens"
	} else if candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
		out.Status = StatusIncomplete
		out.IncompleteReason = string(candidate.FinishReason)
	}

	if usage := result.UsageMetadata; usage != nil {
		out.Usage = Usage{
			InputTokens:       int64(usage.PromptTokenCount),
			CachedInputTokens: int64(usage.CachedContentTokenCount),
			OutputTokens:      int64(usage.CandidatesTokenCount),
			ReasoningTokens:   int64(usage.ThoughtsTokenCount),
			TotalTokens:       int64(usage.TotalTokenCount),
		}
	}
	return out
}
