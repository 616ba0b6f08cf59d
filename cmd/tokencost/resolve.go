package main

import (
	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/pricing"
	"github.com/tokencost/tokencost/internal/record"
)

// heuristicTokenizer implements record.Tokenizer for unknown models,
// using the byte-length estimate from spec.md §4.5. It never calls into
// the BPE engine or a vocabulary.
type heuristicTokenizer struct{}

func (heuristicTokenizer) Encode(input []byte) []uint32 {
	n := modelreg.EstimateTokens(len(input))
	ids := make([]uint32, n)
	return ids
}

// resolveModel binds a requested model name to a tokenizer and accuracy
// tier, falling back to the heuristic estimator for unknown models
// (spec.md §4.5). An unresolved model is not an error: it is a valid, if
// approximate, outcome. The only error returned is a failure to load the
// resolved model's encoding.
func resolveModel(reg *modelreg.Registry, name string) (record.Tokenizer, modelreg.Accuracy, pricing.Rates, error) {
	canonical, entry, ok := reg.Resolve(name)
	if !ok {
		return heuristicTokenizer{}, modelreg.Estimate, pricing.Rates{}, nil
	}

	tok, err := loadTokenizer(entry.Encoding)
	if err != nil {
		return nil, "", pricing.Rates{}, err
	}

	rates, _ := pricing.Lookup(canonical)
	return tok, entry.Accuracy, rates, nil
}
