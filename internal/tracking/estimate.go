// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracking

// ModelPricing holds per-1K-token USD prices for one model.
type ModelPricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// modelPricing is the published OpenAI pricing used for local estimates.
// Unknown models estimate to zero cost rather than guessing.
var modelPricing = map[string]ModelPricing{
	"gpt-4o":        {InputPer1K: 0.0025, OutputPer1K: 0.01},
	"gpt-4o-mini":   {InputPer1K: 0.00015, OutputPer1K: 0.0006},
	"gpt-4":         {InputPer1K: 0.03, OutputPer1K: 0.06},
	"gpt-3.5-turbo": {InputPer1K: 0.001, OutputPer1K: 0.002},
}

// Pricing returns the per-1K-token pricing for a model.
func Pricing(model string) (ModelPricing, bool) {
	p, ok := modelPricing[model]
	return p, ok
}

// KnownModels lists every model with pricing data, for the usage report.
func KnownModels() map[string]ModelPricing {
	out := make(map[string]ModelPricing, len(modelPricing))
	for k, v := range modelPricing {
		out[k] = v
	}
	return out
}

// EstimateTokens approximates a token count from text length. Roughly four
// characters per token for English prose.
func EstimateTokens(text string) int64 {
	return int64(len(text) / 4)
}

// CallCost estimates the USD cost of one API call from token counts.
func CallCost(model string, inputTokens, outputTokens int64) float64 {
	p, ok := modelPricing[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1000*p.InputPer1K + float64(outputTokens)/1000*p.OutputPer1K
}
