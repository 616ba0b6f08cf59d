package bpe

import "github.com/tokencost/tokencost/internal/vocab"

// Decoder turns a sequence of token ids back into raw bytes. Adapted from
// the teacher's bpetok.Decoder interface and
// internal/tokenizer/core/decoder.go; kept as a first-class operation so the
// round-trip property in spec.md §8 ("decode(encode(x)) == x") has a direct
// implementation to test against.
type Decoder struct {
	v *vocab.Vocabulary
}

// NewDecoder returns a Decoder bound to v.
func NewDecoder(v *vocab.Vocabulary) *Decoder {
	return &Decoder{v: v}
}

// Decode concatenates the byte sequence for every token id in order.
func (d *Decoder) Decode(ids []uint32) []byte {
	if len(ids) == 0 {
		return nil
	}

	total := 0
	for _, id := range ids {
		total += len(d.v.BytesOf(id))
	}

	out := make([]byte, 0, total)
	for _, id := range ids {
		out = append(out, d.v.BytesOf(id)...)
	}
	return out
}
