package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokencost/tokencost/internal/pricing"
)

func TestEvaluateComputesPerSideAndTotal(t *testing.T) {
	cost, err := pricing.Evaluate(1_000_000, 500_000, pricing.Rates{
		InputPerMillion:  2.50,
		OutputPerMillion: 10.00,
	})
	require.NoError(t, err)
	require.Equal(t, 2.50, cost.Input)
	require.Equal(t, 5.00, cost.Output)
	require.Equal(t, 7.50, cost.Total)
}

func TestEvaluateZeroTokensZeroCost(t *testing.T) {
	cost, err := pricing.Evaluate(0, 0, pricing.Rates{InputPerMillion: 5, OutputPerMillion: 5})
	require.NoError(t, err)
	require.Zero(t, cost.Total)
}

func TestEvaluateRejectsNegativeInputRate(t *testing.T) {
	_, err := pricing.Evaluate(100, 0, pricing.Rates{InputPerMillion: -1})
	require.Error(t, err)
}

func TestEvaluateRejectsNegativeOutputRate(t *testing.T) {
	_, err := pricing.Evaluate(0, 100, pricing.Rates{OutputPerMillion: -1})
	require.Error(t, err)
}

func TestLookupKnownModel(t *testing.T) {
	r, ok := pricing.Lookup("openai/gpt-4o")
	require.True(t, ok)
	require.Equal(t, 2.50, r.InputPerMillion)
}

func TestLookupUnknownModel(t *testing.T) {
	_, ok := pricing.Lookup("made-up/model")
	require.False(t, ok)
}
