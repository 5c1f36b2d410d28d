package observability

import (
	"context"
	"testing"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	usage := llm.Usage{InputTokens: 2000, OutputTokens: 1000}

	cost := CalculateCost("gpt-5-mini", usage)
	assert.InDelta(t, 2*0.00025+0.002, cost, 1e-9)
}

func TestCalculateCostExcludesCachedInput(t *testing.T) {
	usage := llm.Usage{InputTokens: 1000, CachedInputTokens: 1000, OutputTokens: 0}
	assert.Zero(t, CalculateCost("gpt-5.2", usage))
}

func TestCalculateCostUnknownModelUsesDefault(t *testing.T) {
	usage := llm.Usage{InputTokens: 1000, OutputTokens: 1000}
	assert.Equal(t, CalculateCost("gpt-5.2", usage), CalculateCost("mystery-model", usage))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.001250", FormatCost(0.00125))
}

func TestDisabledLangfuseIsNoop(t *testing.T) {
	client := NewLangfuse(context.Background(), &config.Config{LangfuseEnabled: false})
	assert.False(t, client.IsEnabled())

	// must not panic
	client.RecordPoemGeneration(context.Background(), PoemTrace{RequestID: "r1"})

	var nilClient *LangfuseClient
	assert.False(t, nilClient.IsEnabled())
}
