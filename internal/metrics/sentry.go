package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics records request and generation data as Sentry spans
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // spans are dropped by the SDK when Sentry is not initialized
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))
	span.SetData("duration_ms", duration.Milliseconds())

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordPoemGeneration records one provider call with its token usage
func (m *SentryMetrics) RecordPoemGeneration(ctx context.Context, gen Generation) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("llm.model", gen.Model)
		transaction.SetTag("poem.style", gen.StyleID)
		transaction.SetData("llm.total_tokens", gen.Usage.TotalTokens)
	}

	span := sentry.StartSpan(ctx, "poem.generation")
	defer span.Finish()

	span.SetTag("model", gen.Model)
	span.SetTag("style_id", gen.StyleID)
	span.SetTag("success", fmt.Sprintf("%t", gen.Success))
	span.SetData("duration_ms", gen.Duration.Milliseconds())
	span.SetData("input_tokens", gen.Usage.InputTokens)
	span.SetData("output_tokens", gen.Usage.OutputTokens)
	span.SetData("reasoning_tokens", gen.Usage.ReasoningTokens)
	span.SetData("total_tokens", gen.Usage.TotalTokens)

	if gen.Success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("Poem Generation: %s", gen.StyleID)
}

// Generation is the metric payload for one poem generation attempt
type Generation struct {
	Model    string
	StyleID  string
	Duration time.Duration
	Success  bool
	Usage    llm.Usage
}

// Recorder is implemented by every generation metrics sink
type Recorder interface {
	RecordPoemGeneration(ctx context.Context, gen Generation)
}

// Fanout sends a generation to several recorders
type Fanout []Recorder

// RecordPoemGeneration implements Recorder
func (f Fanout) RecordPoemGeneration(ctx context.Context, gen Generation) {
	for _, r := range f {
		if r != nil {
			r.RecordPoemGeneration(ctx, gen)
		}
	}
}
