package bpe

import (
	"bytes"
	"testing"

	"github.com/tokencost/tokencost/testutil"
)

func TestStreamingEncoderMatchesOffline(t *testing.T) {
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("t"), Right: []byte("h")},
		{Left: []byte("h"), Right: []byte("e")},
		{Left: []byte("th"), Right: []byte("e")},
	})
	e := NewEngine(v)

	full := []byte("thetheotherthe")
	want := e.Encode(full)

	se := NewStreamingEncoder(v, e)
	var got []uint32
	for i := 0; i < len(full); i += 3 {
		end := i + 3
		if end > len(full) {
			end = len(full)
		}
		got = append(got, se.Feed(full[i:end])...)
	}
	got = append(got, se.Flush()...)

	if !equalU32(got, want) {
		t.Fatalf("streaming encode = %v, want %v", got, want)
	}
}

func TestStreamingEncoderRoundTrip(t *testing.T) {
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("a"), Right: []byte("b")},
		{Left: []byte("ab"), Right: []byte("c")},
	})
	e := NewEngine(v)
	se := NewStreamingEncoder(v, e)
	dec := NewDecoder(v)

	input := bytes.Repeat([]byte("abcabcabc"), 20)
	var ids []uint32
	for _, chunk := range bytes.SplitAfter(input, []byte("c")) {
		ids = append(ids, se.Feed(chunk)...)
	}
	ids = append(ids, se.Flush()...)

	if got := dec.Decode(ids); !bytes.Equal(got, input) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(input))
	}
}
