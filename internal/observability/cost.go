package observability

import (
	"strconv"

	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
)

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	defaultPricingModel = "gpt-5.2"
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for the models the poem endpoint may be configured with
var PricingTable = map[string]ModelPricing{
	"gpt-5.2":          {InputPricePer1K: 0.00175, OutputPricePer1K: 0.014},
	"gpt-5.1":          {InputPricePer1K: 0.00125, OutputPricePer1K: 0.01},
	"gpt-5-mini":       {InputPricePer1K: 0.00025, OutputPricePer1K: 0.002},
	"gpt-5-nano":       {InputPricePer1K: 0.00005, OutputPricePer1K: 0.0004},
	"gemini-2.5-flash": {InputPricePer1K: 0.0003, OutputPricePer1K: 0.0025},
	"gemini-2.5-pro":   {InputPricePer1K: 0.00125, OutputPricePer1K: 0.01},
}

// CalculateCost estimates the USD cost of one generation call.
// Reasoning tokens are already counted in output tokens.
func CalculateCost(model string, usage llm.Usage) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		pricing = PricingTable[defaultPricingModel]
	}

	billableInput := usage.InputTokens - usage.CachedInputTokens
	if billableInput < 0 {
		billableInput = 0
	}
	inputCost := (float64(billableInput) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(usage.OutputTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
