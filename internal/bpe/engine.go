package bpe

import (
	"sync"

	"github.com/tokencost/tokencost/internal/vocab"
)

// Engine runs the BPE merge procedure (spec.md §4.3) against one
// Vocabulary. It is immutable and safe for concurrent use; each Encode call
// draws its scratch buffer from a sync.Pool so concurrent callers never
// share mutable state (spec.md §5, "thread-local arenas").
type Engine struct {
	v       *vocab.Vocabulary
	maxRank int
	pool    sync.Pool
}

// NewEngine builds an Engine bound to v. maxRank bounds the bucket queue's
// allocation; it is the vocabulary's id space, since ranks and token ids
// coincide for cl100k_base/o200k_base (see package doc).
func NewEngine(v *vocab.Vocabulary) *Engine {
	e := &Engine{v: v, maxRank: v.Len()}
	e.pool.New = func() any {
		return &scratch{buf: &buffer{}, queue: newMergeQueue(e.maxRank)}
	}
	return e
}

type scratch struct {
	buf   *buffer
	queue *mergeQueue
}

// Encode reduces one pre-token's bytes to a final token-id sequence per the
// procedure in spec.md §4.3. The returned slice is owned by the caller.
func (e *Engine) Encode(input []byte) []uint32 {
	n := len(input)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []uint32{e.v.ByteToInitialToken[input[0]]}
	}

	s := e.pool.Get().(*scratch)
	defer e.pool.Put(s)

	b := s.buf
	b.init(input, e.v)
	q := s.queue
	q.reset(e.maxRank)

	pushIfMergeable := func(i uint32) {
		if i == Sentinel {
			return
		}
		j := b.next[i]
		if j == Sentinel {
			return
		}
		rank, ok := e.lookupMerge(input, i, j, b)
		if !ok {
			return
		}
		q.push(candidate{rank: rank, leftPos: i})
	}

	for i := uint32(0); i != Sentinel; i = b.next[i] {
		pushIfMergeable(i)
	}

	for {
		c, ok := q.pop()
		if !ok {
			break
		}

		i := c.leftPos
		if !b.valid[i] {
			continue
		}
		j := b.next[i]
		if j == Sentinel {
			continue
		}
		if !b.valid[j] {
			continue
		}
		rank, ok := e.lookupMerge(input, i, j, b)
		if !ok || rank != c.rank {
			continue
		}

		b.tokens[i] = rank // the merge's rank IS the merged token id (see package doc)

		k := b.next[j]
		b.next[i] = k
		if k != Sentinel {
			b.prev[k] = i
		}
		b.valid[j] = false
		b.prev[j] = Sentinel
		b.next[j] = Sentinel

		if p := b.prev[i]; p != Sentinel {
			pushIfMergeable(p)
		}
		pushIfMergeable(i)
	}

	out := make([]uint32, 0, n)
	for i := uint32(0); i != Sentinel; {
		if !b.valid[i] {
			break
		}
		out = append(out, b.tokens[i])
		i = b.next[i]
	}
	return out
}

// lookupMerge returns the candidate merge rank for adjacent slots i and j,
// by slicing the original input for the contiguous byte range they jointly
// represent and asking the vocabulary for its token id.
func (e *Engine) lookupMerge(input []byte, i, j uint32, b *buffer) (uint32, bool) {
	rightBytes := e.v.BytesOf(b.tokens[j])
	end := int(j) + len(rightBytes)
	if end-int(i) > e.v.MaxTokenLen {
		return 0, false // no token can be this long; skip the lookup entirely
	}
	id, ok := e.v.RankOf(input[i:end])
	return id, ok
}
