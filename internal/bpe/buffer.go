// Package bpe implements the index-based linked-list + lazy-deletion
// priority queue BPE merge engine described in spec.md §4.3 (component C5).
//
// The merge lookup itself needs no precomputed pair table: because slot i of
// the token buffer always represents the contiguous input byte range
// [i, i+len(vocab.BytesOf(tokens[i]))) — slots are never moved or
// reallocated (spec.md §9) — the candidate bytes for merging slot i with its
// neighbor j = next[i] are simply input[i:j+len(bytes_of(tokens[j]))], and
// looking that byte range up via Vocabulary.RankOf both tests whether a
// merge exists and yields the merged token id in one call. The id doubles as
// the merge's priority rank, since the vocabularies in scope assign ids in
// strict merge-training order (lower id = learned earlier = higher
// priority) — this is the same file format real cl100k_base/o200k_base
// ranks files use, and it is what "rank_of(bytes) -> token_id" in spec.md §3
// is naming.
package bpe

import (
	"fmt"

	"github.com/tokencost/tokencost/internal/vocab"
)

// Sentinel is the reserved "no neighbour" index, per spec.md's GLOSSARY.
const Sentinel uint32 = 0xFFFFFFFF

// buffer is the structure-of-arrays arena for one pre-token's merge pass.
type buffer struct {
	tokens []uint32
	prev   []uint32
	next   []uint32
	valid  []bool
}

func (b *buffer) reset(n int) {
	b.tokens = ensureU32(b.tokens, n)
	b.prev = ensureU32(b.prev, n)
	b.next = ensureU32(b.next, n)
	b.valid = ensureBool(b.valid, n)
}

func ensureU32(s []uint32, n int) []uint32 {
	if cap(s) < n {
		return make([]uint32, n)
	}
	return s[:n]
}

func ensureBool(s []bool, n int) []bool {
	if cap(s) < n {
		return make([]bool, n)
	}
	return s[:n]
}

// init seeds the buffer from input bytes using the vocabulary's
// byte-to-initial-token table, and links every slot into one doubly linked
// list.
func (b *buffer) init(input []byte, v *vocab.Vocabulary) {
	n := len(input)
	b.reset(n)
	for i, byt := range input {
		b.tokens[i] = v.ByteToInitialToken[byt]
		b.valid[i] = true
		if i == 0 {
			b.prev[i] = Sentinel
		} else {
			b.prev[i] = uint32(i - 1)
		}
		if i == n-1 {
			b.next[i] = Sentinel
		} else {
			b.next[i] = uint32(i + 1)
		}
	}
}

// checkInvariants validates the structural invariants in spec.md §3. Encode
// does not call it — it is O(N) and would defeat the engine's own
// complexity budget if run on every merge.
func (b *buffer) checkInvariants() error {
	heads := 0
	for i, ok := range b.valid {
		if !ok {
			if b.prev[i] != Sentinel || b.next[i] != Sentinel {
				return fmt.Errorf("invalid slot %d has dangling prev/next", i)
			}
			continue
		}
		if b.prev[i] == Sentinel {
			heads++
		}
		if nxt := b.next[i]; nxt != Sentinel {
			if b.prev[nxt] != uint32(i) {
				return fmt.Errorf("slot %d: next[%d]=%d but prev[%d]=%d", i, i, nxt, nxt, b.prev[nxt])
			}
		}
	}
	if heads != 1 {
		return fmt.Errorf("expected exactly one list head, found %d", heads)
	}
	return nil
}
