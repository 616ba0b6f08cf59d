package main

import (
	"fmt"

	"github.com/tokencost/tokencost/internal/bpe"
	"github.com/tokencost/tokencost/internal/pretoken"
	"github.com/tokencost/tokencost/internal/vocab"
	"github.com/tokencost/tokencost/internal/vocab/embedded"
)

// tokenizer bundles the three pieces a concrete encoding needs: the
// vocabulary, its pre-tokenizer scanner, and the merge engine bound to it.
type tokenizer struct {
	encoding string
	v        *vocab.Vocabulary
	scanner  pretoken.Scanner
	engine   *bpe.Engine
}

// loadTokenizer resolves an encoding name to its embedded vocabulary blob
// and scanner, the way spec.md §4.4/§4.2 bind C3's loader output to C4's
// scanner selection.
func loadTokenizer(encoding string) (*tokenizer, error) {
	var blob []byte
	var scanner pretoken.Scanner

	switch encoding {
	case "cl100k_base":
		blob = embedded.Cl100kBase
		scanner = pretoken.Cl100k{}
	case "o200k_base":
		blob = embedded.O200kBase
		scanner = pretoken.O200k{}
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}

	v, err := vocab.Load(blob)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %q: %w", encoding, err)
	}

	return &tokenizer{
		encoding: encoding,
		v:        v,
		scanner:  scanner,
		engine:   bpe.NewEngine(v),
	}, nil
}

// Encode runs the full pipeline: pre-tokenize, then BPE-merge each
// pre-token, concatenating the resulting ids (spec.md §4.2 + §4.3).
func (t *tokenizer) Encode(input []byte) []uint32 {
	pts := pretoken.Scan(input, t.scanner)
	out := make([]uint32, 0, len(input)/3+1)
	for _, p := range pts {
		ids := t.engine.Encode(input[p.Offset : p.Offset+p.Length])
		out = append(out, ids...)
	}
	return out
}

// Decode reverses Encode.
func (t *tokenizer) Decode(ids []uint32) []byte {
	return bpe.NewDecoder(t.v).Decode(ids)
}
