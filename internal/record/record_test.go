package record_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/pricing"
	"github.com/tokencost/tokencost/internal/record"
)

type fakeTokenizer struct {
	tokensPerByte int
}

func (f fakeTokenizer) Encode(input []byte) []uint32 {
	if len(input) == 0 {
		return nil
	}
	n := len(input) / f.tokensPerByte
	if n == 0 {
		n = 1
	}
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = uint32(i)
	}
	return ids
}

func TestProcessCountModeInsertsTokensAndAccuracy(t *testing.T) {
	line := []byte(`{"text":"hello world","id":42}`)
	out, err := record.Process(line, fakeTokenizer{tokensPerByte: 4}, record.Params{
		TextField: "text",
		Mode:      record.ModeCount,
		Accuracy:  modelreg.Exact,
	})
	require.NoError(t, err)

	parsed := gjson.ParseBytes(out)
	require.Equal(t, int64(42), parsed.Get("id").Int())
	require.Equal(t, "exact", parsed.Get("accuracy").String())
	require.True(t, parsed.Get("tokens_input").Exists())
	require.False(t, parsed.Get("cost_total_usd").Exists())
}

func TestProcessPriceModeInsertsCosts(t *testing.T) {
	line := []byte(`{"text":"hi"}`)
	out, err := record.Process(line, fakeTokenizer{tokensPerByte: 1}, record.Params{
		TextField: "text",
		Mode:      record.ModePrice,
		Accuracy:  modelreg.Exact,
		Rates:     pricing.Rates{InputPerMillion: 2.5, OutputPerMillion: 10},
	})
	require.NoError(t, err)

	parsed := gjson.ParseBytes(out)
	require.True(t, parsed.Get("cost_input_usd").Exists())
	require.True(t, parsed.Get("cost_output_usd").Exists())
	require.True(t, parsed.Get("cost_total_usd").Exists())
	require.Equal(t, int64(0), parsed.Get("tokens_output").Int())
}

func TestProcessPriceModeCopiesExistingTokensOutput(t *testing.T) {
	line := []byte(`{"text":"hi","tokens_output":100}`)
	out, err := record.Process(line, fakeTokenizer{tokensPerByte: 1}, record.Params{
		TextField: "text",
		Mode:      record.ModePrice,
		Accuracy:  modelreg.Exact,
		Rates:     pricing.Rates{InputPerMillion: 1, OutputPerMillion: 1},
	})
	require.NoError(t, err)
	parsed := gjson.ParseBytes(out)
	require.Equal(t, int64(100), parsed.Get("tokens_output").Int())
}

func TestProcessPreservesUnknownFieldsAndOrder(t *testing.T) {
	line := []byte(`{"zeta":1,"text":"hi","alpha":2}`)
	out, err := record.Process(line, fakeTokenizer{tokensPerByte: 1}, record.Params{
		TextField: "text",
		Mode:      record.ModeCount,
		Accuracy:  modelreg.Exact,
	})
	require.NoError(t, err)
	parsed := gjson.ParseBytes(out)
	require.Equal(t, int64(1), parsed.Get("zeta").Int())
	require.Equal(t, int64(2), parsed.Get("alpha").Int())

	var keys []string
	parsed.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	require.GreaterOrEqual(t, len(keys), 3)
	require.Equal(t, []string{"zeta", "text", "alpha"}, keys[:3])
}

func TestProcessRejectsInvalidJSON(t *testing.T) {
	_, err := record.Process([]byte(`{not json}`), fakeTokenizer{tokensPerByte: 1}, record.Params{})
	require.Error(t, err)
	var recErr *record.Error
	require.ErrorAs(t, err, &recErr)
	require.Equal(t, record.KindInvalidJSON, recErr.Kind)
}

func TestProcessRejectsMissingField(t *testing.T) {
	_, err := record.Process([]byte(`{"other":"value"}`), fakeTokenizer{tokensPerByte: 1}, record.Params{TextField: "text"})
	require.Error(t, err)
	var recErr *record.Error
	require.ErrorAs(t, err, &recErr)
	require.Equal(t, record.KindMissingField, recErr.Kind)
}

func TestProcessRejectsNonStringField(t *testing.T) {
	_, err := record.Process([]byte(`{"text":42}`), fakeTokenizer{tokensPerByte: 1}, record.Params{TextField: "text"})
	require.Error(t, err)
	var recErr *record.Error
	require.ErrorAs(t, err, &recErr)
	require.Equal(t, record.KindMissingField, recErr.Kind)
}

func TestProcessDefaultsTextFieldName(t *testing.T) {
	out, err := record.Process([]byte(`{"text":"hi"}`), fakeTokenizer{tokensPerByte: 1}, record.Params{})
	require.NoError(t, err)
	require.True(t, gjson.ParseBytes(out).Get("tokens_input").Exists())
}
