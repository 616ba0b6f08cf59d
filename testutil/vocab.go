// Package testutil builds small, hand-rolled vocabulary blobs for tests,
// so package tests don't depend on the embedded cl100k_base / o200k_base
// data.
package testutil

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/tokencost/tokencost/internal/vocab"
)

// BuildVocab encodes a rank-ordered list of token byte strings into an
// in-memory binary vocab blob (spec.md §6) and returns the Vocabulary loaded
// from it, panicking if the blob does not load. tokens[0..255] must be exactly
// the 256 single bytes in value order (the caller is responsible for this;
// AsciiBaseVocab below does it for you), and tokens[i] for i>=256 are
// multi-byte merged tokens in increasing rank order.
func BuildVocab(tokens [][]byte) *vocab.Vocabulary {
	blob := EncodeVocabBlob(tokens)
	v, err := vocab.Load(blob)
	if err != nil {
		panic(err)
	}
	return v
}

// EncodeVocabBlob serializes tokens into the binary layout vocab.Load
// expects: a 64-byte header, a table of (offset,length) pairs, then the
// concatenated token bytes.
func EncodeVocabBlob(tokens [][]byte) []byte {
	maxLen := 0
	for _, t := range tokens {
		if len(t) > maxLen {
			maxLen = len(t)
		}
	}

	var data bytes.Buffer
	type off struct{ offset, length uint32 }
	offs := make([]off, len(tokens))
	for i, t := range tokens {
		offs[i] = off{offset: uint32(data.Len()), length: uint32(len(t))}
		data.Write(t)
	}

	var out bytes.Buffer
	header := make([]byte, 64)
	copy(header[0:4], []byte("BPE2"))
	binary.LittleEndian.PutUint32(header[4:8], 2)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(tokens)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(maxLen))
	binary.LittleEndian.PutUint32(header[16:20], uint32(data.Len()))
	out.Write(header)

	for _, o := range offs {
		var b [8]byte
		binary.LittleEndian.PutUint32(b[0:4], o.offset)
		binary.LittleEndian.PutUint32(b[4:8], o.length)
		out.Write(b[:])
	}
	out.Write(data.Bytes())

	return out.Bytes()
}

// AsciiBaseVocab returns the mandatory 256 single-byte tokens in byte-value
// order, suitable as the first 256 entries of a tokens slice passed to
// BuildVocab.
func AsciiBaseVocab() [][]byte {
	out := make([][]byte, 256)
	for b := 0; b < 256; b++ {
		out[b] = []byte{byte(b)}
	}
	return out
}

// MergeSpec is one learned merge: Left and Right are byte sequences that
// must already be single tokens in the vocabulary being built; Merged is
// their concatenation bytes (derived automatically by BuildVocabWithMerges).
type MergeSpec struct {
	Left, Right []byte
}

// BuildVocabWithMerges starts from the 256 base bytes and appends one token
// per merge spec, in order, so later merges get higher (lower-priority)
// ids — matching real cl100k_base/o200k_base semantics where token id order
// is merge-priority order.
func BuildVocabWithMerges(merges []MergeSpec) *vocab.Vocabulary {
	tokens := AsciiBaseVocab()
	for _, m := range merges {
		merged := append(append([]byte{}, m.Left...), m.Right...)
		tokens = append(tokens, merged)
	}
	return BuildVocab(tokens)
}

// SortedKeys is a small helper for tests that want deterministic iteration
// over a map[string]int of token strings to ranks.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
