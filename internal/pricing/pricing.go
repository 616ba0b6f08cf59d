// Package pricing implements the pure token-count-to-dollar-cost evaluator
// (spec.md §4.6, component C7). It holds no state and performs no I/O.
package pricing

import "fmt"

// Rates carries a model's per-million-token dollar rate for each side of a
// request (spec.md §6's "input_per_million"/"output_per_million").
type Rates struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Cost is the evaluated dollar cost of a request's token counts.
type Cost struct {
	Input  float64
	Output float64
	Total  float64
}

// Evaluate computes cost = (tokens / 1_000_000) * rate per side, summed for
// the total. No rounding is applied; presentation rounding belongs to the
// caller (spec.md §4.6).
func Evaluate(inputTokens, outputTokens int, rates Rates) (Cost, error) {
	if rates.InputPerMillion < 0 || rates.OutputPerMillion < 0 {
		return Cost{}, fmt.Errorf("pricing: negative rate (input=%v output=%v)", rates.InputPerMillion, rates.OutputPerMillion)
	}

	inputCost := (float64(inputTokens) / 1_000_000) * rates.InputPerMillion
	outputCost := (float64(outputTokens) / 1_000_000) * rates.OutputPerMillion

	return Cost{
		Input:  inputCost,
		Output: outputCost,
		Total:  inputCost + outputCost,
	}, nil
}

// Catalogue is a static table of per-model rates, grounded on the pack's
// provider pricing tables. It is consulted by model name, not by
// provider/model pair, since C6 already resolves canonical model names.
var Catalogue = map[string]Rates{
	"openai/gpt-4o":                 {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"openai/gpt-4o-mini":            {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"openai/o1":                     {InputPerMillion: 15.00, OutputPerMillion: 60.00},
	"openai/o1-mini":                {InputPerMillion: 3.00, OutputPerMillion: 12.00},
	"openai/gpt-4-turbo":            {InputPerMillion: 10.00, OutputPerMillion: 30.00},
	"openai/gpt-4":                  {InputPerMillion: 30.00, OutputPerMillion: 60.00},
	"openai/gpt-3.5-turbo":          {InputPerMillion: 0.50, OutputPerMillion: 1.50},
	"openai/text-embedding-3-small": {InputPerMillion: 0.02, OutputPerMillion: 0},
	"openai/text-embedding-3-large": {InputPerMillion: 0.13, OutputPerMillion: 0},
	"azure/gpt-4o":                  {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"azure/gpt-4o-mini":             {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"azure/gpt-4-turbo":             {InputPerMillion: 10.00, OutputPerMillion: 30.00},
}

// Lookup returns the rates for a canonical model name, or ok=false if no
// rate is catalogued for it.
func Lookup(canonicalModel string) (Rates, bool) {
	r, ok := Catalogue[canonicalModel]
	return r, ok
}
