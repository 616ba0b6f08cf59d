// Package record implements per-line JSON record enrichment (spec.md §4.7,
// component C8). Each call operates on a single JSON object encoded as a
// byte slice, performing in-place field surgery so unrecognised fields and
// field order survive the round trip (spec.md §6: "Unrecognised fields are
// preserved").
package record

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/pricing"
)

// Mode selects whether pricing fields are computed in addition to token
// counts (spec.md §4.7).
type Mode int

const (
	ModeCount Mode = iota
	ModePrice
)

// Kind classifies a record-level failure for the stream driver's error log
// and the Partial-vs-fatal decision (spec.md §7).
type Kind int

const (
	KindInvalidJSON Kind = iota
	KindMissingField
	KindTokenizeFailed
)

// Error is a record-level failure: malformed JSON, a missing/mistyped text
// field, or a tokenizer failure. It never carries a line number — the
// stream driver attaches that (spec.md §7).
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func fail(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Tokenizer is the subset of internal/bpe.Engine this package depends on,
// narrowed so record tests can substitute a fake without pulling in a real
// vocabulary.
type Tokenizer interface {
	Encode(input []byte) []uint32
}

// Params configures one Process call: the text field name, the active
// mode, the resolved model's accuracy tier, and (in ModePrice) its rates.
type Params struct {
	TextField string
	Mode      Mode
	Accuracy  modelreg.Accuracy
	Rates     pricing.Rates
}

// Process parses line as a single JSON object, tokenizes its text field
// using tok, and returns the enriched JSON object (without a trailing
// newline — the stream driver owns line framing). On any record-level
// failure it returns an *Error and the original line is not emitted.
func Process(line []byte, tok Tokenizer, p Params) ([]byte, error) {
	if !gjson.ValidBytes(line) {
		return nil, fail(KindInvalidJSON, "invalid JSON")
	}

	root := gjson.ParseBytes(line)
	if !root.IsObject() {
		return nil, fail(KindInvalidJSON, "invalid JSON: not an object")
	}

	field := p.TextField
	if field == "" {
		field = "text"
	}

	textResult := root.Get(field)
	if !textResult.Exists() || textResult.Type != gjson.String {
		return nil, fail(KindMissingField, "missing or non-string field %q", field)
	}
	text := textResult.Str

	ids := tok.Encode([]byte(text))
	if ids == nil && len(text) > 0 {
		return nil, fail(KindTokenizeFailed, "tokenization failed")
	}
	tokensInput := len(ids)

	out := line
	var err error
	out, err = sjson.SetBytes(out, "tokens_input", tokensInput)
	if err != nil {
		return nil, fail(KindTokenizeFailed, "insert tokens_input: %w", err)
	}
	out, err = sjson.SetBytes(out, "accuracy", string(p.Accuracy))
	if err != nil {
		return nil, fail(KindTokenizeFailed, "insert accuracy: %w", err)
	}

	if p.Mode == ModePrice {
		tokensOutput := 0
		if v := root.Get("tokens_output"); v.Exists() && v.Type == gjson.Number {
			tokensOutput = int(v.Num)
		}

		cost, cerr := pricing.Evaluate(tokensInput, tokensOutput, p.Rates)
		if cerr != nil {
			return nil, fail(KindTokenizeFailed, "pricing: %w", cerr)
		}

		out, err = sjson.SetBytes(out, "tokens_output", tokensOutput)
		if err != nil {
			return nil, fail(KindTokenizeFailed, "insert tokens_output: %w", err)
		}
		out, err = sjson.SetBytes(out, "cost_input_usd", cost.Input)
		if err != nil {
			return nil, fail(KindTokenizeFailed, "insert cost_input_usd: %w", err)
		}
		out, err = sjson.SetBytes(out, "cost_output_usd", cost.Output)
		if err != nil {
			return nil, fail(KindTokenizeFailed, "insert cost_output_usd: %w", err)
		}
		out, err = sjson.SetBytes(out, "cost_total_usd", cost.Total)
		if err != nil {
			return nil, fail(KindTokenizeFailed, "insert cost_total_usd: %w", err)
		}
	}

	return out, nil
}
