package bpe

import "github.com/tokencost/tokencost/internal/vocab"

// Encoder is the streaming chunk-at-a-time interface: adapted from the
// teacher's bpetok.Encoder (bpetok/core.go). It is not wired into the
// line-oriented stream driver (spec.md's C9 operates one whole line/JSON
// record at a time) but is kept as a supplemental capability for callers
// that see text incrementally — see SPEC_FULL.md §5.
type Encoder interface {
	// Feed consumes the next chunk of raw bytes and returns zero or more
	// finalized token ids. The returned slice aliases internal memory; the
	// caller must copy it before the next call if it needs to retain it.
	Feed(chunk []byte) []uint32
	// Flush signals end of stream and returns any remaining buffered
	// tokens. The encoder is reset to a clean, reusable state afterward.
	Flush() []uint32
}

// StreamingEncoder holds back the last MaxTokenLen-1 bytes of input at all
// times, since a byte that recently arrived might still merge with bytes
// from the next chunk. Adapted from the teacher's
// internal/tokenizer/streaming_encoder_incremental/encoder_streaming.go
// (StreamingEncoderV2): same buffered-then-Flush strategy, but resting on
// Engine/Vocabulary instead of the teacher's core.Tokenizer.
type StreamingEncoder struct {
	v      *vocab.Vocabulary
	engine *Engine

	buf []byte
	out []uint32

	tailReserve int
}

// NewStreamingEncoder returns a streaming encoder over v.
func NewStreamingEncoder(v *vocab.Vocabulary, engine *Engine) *StreamingEncoder {
	tail := 0
	if v.MaxTokenLen > 0 {
		tail = v.MaxTokenLen - 1
	}
	return &StreamingEncoder{v: v, engine: engine, tailReserve: tail}
}

// Feed implements Encoder.
func (s *StreamingEncoder) Feed(chunk []byte) []uint32 {
	s.out = s.out[:0]
	if len(chunk) > 0 {
		s.buf = append(s.buf, chunk...)
	}
	s.emitCommitted()
	if len(s.out) == 0 {
		return nil
	}
	return s.out
}

// Flush implements Encoder.
func (s *StreamingEncoder) Flush() []uint32 {
	s.out = s.out[:0]
	if len(s.buf) > 0 {
		s.out = append(s.out, s.engine.Encode(s.buf)...)
		s.buf = s.buf[:0]
	}
	if len(s.out) == 0 {
		return nil
	}
	return s.out
}

// emitCommitted re-encodes the whole buffered prefix and commits every
// token whose bytes lie entirely before the tail reserve, since those bytes
// can never again participate in a cross-chunk merge.
func (s *StreamingEncoder) emitCommitted() {
	emitLimit := len(s.buf) - s.tailReserve
	if emitLimit <= 0 {
		return
	}

	ids := s.engine.Encode(s.buf)

	consumed := 0
	for _, id := range ids {
		tokLen := len(s.v.BytesOf(id))
		if consumed+tokLen > emitLimit {
			break
		}
		s.out = append(s.out, id)
		consumed += tokLen
	}

	if consumed > 0 {
		s.buf = s.buf[consumed:]
	}
}
