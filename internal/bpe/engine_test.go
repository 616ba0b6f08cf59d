package bpe

import (
	"bytes"
	"testing"

	"github.com/tokencost/tokencost/testutil"
)

func TestEncodeSingleByteCoverage(t *testing.T) {
	v := testutil.BuildVocabWithMerges(nil)
	e := NewEngine(v)

	for b := 0; b < 256; b++ {
		in := []byte{byte(b)}
		ids := e.Encode(in)
		if len(ids) != 1 {
			t.Fatalf("byte 0x%02x: expected 1 token, got %d", b, len(ids))
		}
		if ids[0] != v.ByteToInitialToken[byte(b)] {
			t.Fatalf("byte 0x%02x: got token %d, want %d", b, ids[0], v.ByteToInitialToken[byte(b)])
		}
	}
}

func TestEncodeAppliesHigherPriorityMergeFirst(t *testing.T) {
	// "t"+"h" merges before "h"+"e": "th" is learned first (lower id).
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("t"), Right: []byte("h")},
		{Left: []byte("h"), Right: []byte("e")},
		{Left: []byte("th"), Right: []byte("e")},
	})
	e := NewEngine(v)

	ids := e.Encode([]byte("the"))
	if len(ids) != 1 {
		t.Fatalf("expected a single merged token for \"the\", got %d ids: %v", len(ids), ids)
	}

	dec := NewDecoder(v)
	if got := dec.Decode(ids); !bytes.Equal(got, []byte("the")) {
		t.Fatalf("decode(encode(\"the\")) = %q, want \"the\"", got)
	}
}

func TestEncodeLeftmostTieBreak(t *testing.T) {
	// "aaab" yields two "a"+"a" candidates with the same rank, at left
	// positions 0 and 1. The leftmost one must merge first, giving
	// [aa, a, b]; merging position 1 first would give [a, aa, b].
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("a"), Right: []byte("a")},
	})
	e := NewEngine(v)

	ids := e.Encode([]byte("aaab"))
	dec := NewDecoder(v)
	got := dec.Decode(ids)
	if !bytes.Equal(got, []byte("aaab")) {
		t.Fatalf("decode(encode(\"aaab\")) = %q, want \"aaab\"", got)
	}
	// "aa"+"a"+"b": first pair merges leftmost, producing 3 tokens: [aa, a, b]
	if len(ids) != 3 {
		t.Fatalf("expected 3 tokens ([aa,a,b]), got %d: %v", len(ids), ids)
	}
	if first := dec.Decode(ids[:1]); !bytes.Equal(first, []byte("aa")) {
		t.Fatalf("first token = %q, want \"aa\" (leftmost merge first)", first)
	}
}

func TestEncodeMatchesHeapQueue(t *testing.T) {
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("t"), Right: []byte("h")},
		{Left: []byte("h"), Right: []byte("e")},
		{Left: []byte("th"), Right: []byte("e")},
		{Left: []byte("a"), Right: []byte("a")},
	})
	e := NewEngine(v)

	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("the"),
		[]byte("theaaathe"),
		[]byte("aaaaaaaaaaaa"),
		bytes.Repeat([]byte("the"), 100),
	}

	for _, in := range inputs {
		got := e.Encode(in)
		want := e.EncodeViaHeap(in)
		if !equalU32(got, want) {
			t.Fatalf("Encode(%q) = %v, EncodeViaHeap = %v", in, got, want)
		}
	}
}

func TestEncodeByteIdentity(t *testing.T) {
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("t"), Right: []byte("h")},
		{Left: []byte("h"), Right: []byte("e")},
		{Left: []byte("th"), Right: []byte("e")},
	})
	e := NewEngine(v)
	dec := NewDecoder(v)

	inputs := []string{"", "t", "the", "theother", "xthex", "\x00\x01the\xff"}
	for _, in := range inputs {
		ids := e.Encode([]byte(in))
		out := dec.Decode(ids)
		if string(out) != in {
			t.Fatalf("decode(encode(%q)) = %q", in, out)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("t"), Right: []byte("h")},
		{Left: []byte("h"), Right: []byte("e")},
	})
	e := NewEngine(v)
	in := bytes.Repeat([]byte("thethethe"), 50)

	first := e.Encode(in)
	for i := 0; i < 10; i++ {
		again := e.Encode(in)
		if !equalU32(first, again) {
			t.Fatalf("Encode is not deterministic across calls %d", i)
		}
	}
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
