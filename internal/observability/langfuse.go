package observability

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

// LangfuseClient wraps the Langfuse client with our configuration.
// A disabled client is safe to use; every call is a no-op.
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
}

// NewLangfuse creates the Langfuse client. The SDK reads LANGFUSE_PUBLIC_KEY,
// LANGFUSE_SECRET_KEY and LANGFUSE_HOST from the environment.
func NewLangfuse(ctx context.Context, cfg *config.Config) *LangfuseClient {
	if !cfg.LangfuseEnabled || cfg.LangfuseSecretKey == "" {
		log.Println("⚠️  Langfuse not configured (LANGFUSE_ENABLED=false or LANGFUSE_SECRET_KEY not set)")
		return &LangfuseClient{}
	}

	log.Printf("✅ Langfuse initialized (host: %s)", cfg.LangfuseHost)
	return &LangfuseClient{
		client:  langfuse.New(ctx),
		enabled: true,
	}
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// PoemTrace is everything recorded for one poem generation
type PoemTrace struct {
	RequestID    string
	StyleID      string
	Model        string
	Instructions string
	Input        string
	Output       string
	Status       string
	Error        string
	Usage        llm.Usage
	StartTime    time.Time
	EndTime      time.Time
}

// RecordPoemGeneration sends a trace with a single generation span
func (c *LangfuseClient) RecordPoemGeneration(ctx context.Context, rec PoemTrace) {
	if !c.IsEnabled() {
		return
	}

	trace, err := c.client.Trace(&model.Trace{
		Name: "poem.generate",
		Metadata: map[string]interface{}{
			"request_id": rec.RequestID,
			"style_id":   rec.StyleID,
		},
	})
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse trace: %v", err)
		return
	}

	start := rec.StartTime
	gen, err := c.client.Generation(&model.Generation{
		TraceID:   trace.ID,
		Name:      "poem",
		StartTime: &start,
		Model:     rec.Model,
		Input: map[string]interface{}{
			"instructions": rec.Instructions,
			"input":        rec.Input,
		},
		Metadata: map[string]interface{}{
			"status": rec.Status,
			"error":  rec.Error,
		},
	}, nil)
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse generation: %v", err)
		return
	}

	end := rec.EndTime
	gen.EndTime = &end
	if rec.Output != "" {
		gen.Output = rec.Output
	}
	if rec.Error != "" {
		gen.Level = model.ObservationLevel("ERROR")
	}
	gen.Usage = model.Usage{
		Input:     int(rec.Usage.InputTokens),
		Output:    int(rec.Usage.OutputTokens),
		Total:     int(rec.Usage.TotalTokens),
		Unit:      model.ModelUsageUnitTokens,
		TotalCost: CalculateCost(rec.Model, rec.Usage),
	}

	if _, err := c.client.GenerationEnd(gen); err != nil {
		log.Printf("⚠️  Failed to end Langfuse generation: %v", err)
		return
	}
	c.client.Flush(ctx)
}
