package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
	"github.com/Conceptual-Machines/starter-poem-api/internal/logger"
	"github.com/Conceptual-Machines/starter-poem-api/internal/metrics"
	"github.com/Conceptual-Machines/starter-poem-api/internal/observability"
	"github.com/Conceptual-Machines/starter-poem-api/internal/poem"
)

// ProviderSource resolves the provider (and its credential) for a model
type ProviderSource interface {
	APIKeyFor(model string) (setting, key string)
	GetProvider(ctx context.Context, model string) (llm.Provider, error)
}

// PromptStats describes the prompt sent to the provider
type PromptStats struct {
	Model                      string `json:"model"`
	ReasoningEffort            string `json:"reasoningEffort"`
	MaxOutputTokens            int64  `json:"maxOutputTokens"`
	SelectedStyleID            string `json:"selectedStyleId"`
	InstructionChars           int    `json:"instructionChars"`
	InputChars                 int    `json:"inputChars"`
	EstimatedInstructionTokens int    `json:"estimatedInstructionTokens"`
	EstimatedInputTokens       int    `json:"estimatedInputTokens"`
	EstimatedPromptTokens      int    `json:"estimatedPromptTokens"`
}

// ResponseStats describes what the provider returned
type ResponseStats struct {
	Status            string  `json:"status"`
	IncompleteReason  string  `json:"incompleteReason,omitempty"`
	InputTokens       int64   `json:"inputTokens"`
	CachedInputTokens int64   `json:"cachedInputTokens"`
	OutputTokens      int64   `json:"outputTokens"`
	ReasoningTokens   int64   `json:"reasoningTokens"`
	TotalTokens       int64   `json:"totalTokens"`
	OutputTextChars   int     `json:"outputTextChars"`
	ProviderDuration  int64   `json:"providerDurationMs"`
	RouteDuration     int64   `json:"routeDurationMs"`
	EstimatedCostUSD  float64 `json:"estimatedCostUsd"`
}

// PoemGeneration is the outcome of one Generate call. Stats are filled in as
// far as the call got, on success and on failure.
type PoemGeneration struct {
	RequestID     string
	Poem          string
	Style         poem.PoemStyle
	PromptStats   *PromptStats
	ResponseStats *ResponseStats
	StartedAt     time.Time
}

// Elapsed returns the time since the generation started
func (g *PoemGeneration) Elapsed() time.Duration {
	return time.Since(g.StartedAt)
}

// PoemService turns a style id into a poem via the configured provider
type PoemService struct {
	cfg       *config.Config
	providers ProviderSource
	metrics   metrics.Recorder
	langfuse  *observability.LangfuseClient
}

// NewPoemService creates a new poem service. metrics and langfuse may be nil.
func NewPoemService(
	cfg *config.Config,
	providers ProviderSource,
	recorder metrics.Recorder,
	langfuse *observability.LangfuseClient,
) *PoemService {
	if recorder == nil {
		recorder = metrics.Fanout{}
	}
	return &PoemService{
		cfg:       cfg,
		providers: providers,
		metrics:   recorder,
		langfuse:  langfuse,
	}
}

// Generate resolves the style, builds the prompt and calls the provider once.
// Errors are *poem.ConfigurationError or *poem.ProviderError.
func (s *PoemService) Generate(ctx context.Context, styleID, requestID string) (*PoemGeneration, error) {
	gen := &PoemGeneration{RequestID: requestID, StartedAt: time.Now()}
	fields := logger.Fields{"request_id": requestID, "model": s.cfg.PoemModel}

	setting, apiKey := s.providers.APIKeyFor(s.cfg.PoemModel)
	if apiKey == "" {
		err := &poem.ConfigurationError{Setting: setting}
		logger.Error("Poem generation not configured", err, fields)
		return gen, err
	}

	style := poem.ResolveStyle(styleID)
	gen.Style = style
	fields["style_id"] = style.ID

	instructions := poem.BuildInstructions(style)
	gen.PromptStats = s.promptStats(style, instructions)
	logger.Info("Starting poem generation", fields.Merge(logger.Fields{
		"instruction_chars":       gen.PromptStats.InstructionChars,
		"input_chars":             gen.PromptStats.InputChars,
		"estimated_prompt_tokens": gen.PromptStats.EstimatedPromptTokens,
		"max_output_tokens":       gen.PromptStats.MaxOutputTokens,
		"reasoning_effort":        gen.PromptStats.ReasoningEffort,
	}))
	logger.Debug("Poem instructions", fields.Merge(logger.Fields{"instructions": instructions}))

	provider, err := s.providers.GetProvider(ctx, s.cfg.PoemModel)
	if err != nil {
		logger.Error("Failed to create provider", err, fields)
		return gen, &poem.ProviderError{Err: err}
	}

	request := &llm.GenerationRequest{
		Model:           s.cfg.PoemModel,
		Instructions:    instructions,
		Input:           poem.Input,
		MaxOutputTokens: s.cfg.PoemMaxOutputTokens,
		ReasoningMode:   s.cfg.PoemReasoningEffort,
	}

	providerStart := time.Now()
	resp, err := provider.Generate(ctx, request)
	providerDuration := time.Since(providerStart)

	if err != nil {
		logger.Error("Provider call failed", err, fields.Merge(logger.Fields{
			"provider":          provider.Name(),
			"route_duration_ms": gen.Elapsed().Milliseconds(),
		}))
		s.record(ctx, gen, request, nil, providerDuration, err.Error())
		return gen, &poem.ProviderError{Err: err}
	}

	gen.ResponseStats = s.responseStats(resp, providerDuration, gen.Elapsed())
	logger.LogGenerationRequest(ctx, s.cfg.PoemModel, providerDuration, logger.TokenUsage{
		InputTokens:     resp.Usage.InputTokens,
		CachedTokens:    resp.Usage.CachedInputTokens,
		OutputTokens:    resp.Usage.OutputTokens,
		ReasoningTokens: resp.Usage.ReasoningTokens,
		TotalTokens:     resp.Usage.TotalTokens,
	}, fields.Merge(logger.Fields{
		"provider":          provider.Name(),
		"status":            resp.Status,
		"incomplete_reason": resp.IncompleteReason,
		"output_text_chars": gen.ResponseStats.OutputTextChars,
		"route_duration_ms": gen.ResponseStats.RouteDuration,
		"estimated_cost":    observability.FormatCost(gen.ResponseStats.EstimatedCostUSD),
	}))

	// completed and incomplete (truncated) responses are both usable
	text := strings.TrimSpace(resp.OutputText)
	if text == "" {
		reason := resp.ErrorMessage
		if reason == "" {
			status := resp.Status
			if status == "" {
				status = "unknown"
			}
			reason = fmt.Sprintf("Model response status: %s", status)
		}
		logger.Warn("Response had no output text", fields.Merge(logger.Fields{
			"error":             reason,
			"response_status":   resp.Status,
			"incomplete_reason": resp.IncompleteReason,
		}))
		s.record(ctx, gen, request, resp, providerDuration, reason)
		return gen, &poem.ProviderError{EmptyOutput: true, Message: reason}
	}

	gen.Poem = text
	s.record(ctx, gen, request, resp, providerDuration, "")
	logger.Info("Returning poem", fields.Merge(logger.Fields{
		"output_chars":      utf8.RuneCountInString(text),
		"route_duration_ms": gen.Elapsed().Milliseconds(),
	}))
	return gen, nil
}

func (s *PoemService) promptStats(style poem.PoemStyle, instructions string) *PromptStats {
	instructionTokens := poem.EstimateTokens(instructions)
	inputTokens := poem.EstimateTokens(poem.Input)
	return &PromptStats{
		Model:                      s.cfg.PoemModel,
		ReasoningEffort:            s.cfg.PoemReasoningEffort,
		MaxOutputTokens:            s.cfg.PoemMaxOutputTokens,
		SelectedStyleID:            style.ID,
		InstructionChars:           utf8.RuneCountInString(instructions),
		InputChars:                 utf8.RuneCountInString(poem.Input),
		EstimatedInstructionTokens: instructionTokens,
		EstimatedInputTokens:       inputTokens,
		EstimatedPromptTokens:      instructionTokens + inputTokens,
	}
}

func (s *PoemService) responseStats(resp *llm.GenerationResponse, providerDuration, routeDuration time.Duration) *ResponseStats {
	return &ResponseStats{
		Status:            resp.Status,
		IncompleteReason:  resp.IncompleteReason,
		InputTokens:       resp.Usage.InputTokens,
		CachedInputTokens: resp.Usage.CachedInputTokens,
		OutputTokens:      resp.Usage.OutputTokens,
		ReasoningTokens:   resp.Usage.ReasoningTokens,
		TotalTokens:       resp.Usage.TotalTokens,
		OutputTextChars:   utf8.RuneCountInString(resp.OutputText),
		ProviderDuration:  providerDuration.Milliseconds(),
		RouteDuration:     routeDuration.Milliseconds(),
		EstimatedCostUSD:  observability.CalculateCost(s.cfg.PoemModel, resp.Usage),
	}
}

// record pushes metrics and the Langfuse trace for a finished provider call
func (s *PoemService) record(
	ctx context.Context,
	gen *PoemGeneration,
	request *llm.GenerationRequest,
	resp *llm.GenerationResponse,
	providerDuration time.Duration,
	failure string,
) {
	var usage llm.Usage
	status := llm.StatusFailed
	if resp != nil {
		usage = resp.Usage
		status = resp.Status
	}

	s.metrics.RecordPoemGeneration(ctx, metrics.Generation{
		Model:    request.Model,
		StyleID:  gen.Style.ID,
		Duration: providerDuration,
		Success:  failure == "",
		Usage:    usage,
	})

	s.langfuse.RecordPoemGeneration(ctx, observability.PoemTrace{
		RequestID:    gen.RequestID,
		StyleID:      gen.Style.ID,
		Model:        request.Model,
		Instructions: request.Instructions,
		Input:        request.Input,
		Output:       gen.Poem,
		Status:       status,
		Error:        failure,
		Usage:        usage,
		StartTime:    gen.StartedAt,
		EndTime:      time.Now(),
	})
}
