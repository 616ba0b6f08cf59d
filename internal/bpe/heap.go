package bpe

import "container/heap"

// classicQueue is a container/heap-based priority queue: adapted from the
// teacher's older generation (internal/tokenizer/encoder.go +
// internal/utils/merge_heap.go / heap.go), which used container/heap instead
// of the bucket queue the newer core/encoder.go generation moved to. It is
// kept as an alternate implementation of the same ordering contract —
// exercised by EncodeViaHeap and cross-checked against the bucket-queue
// Encode in engine_test.go so neither technique is silently dropped (see
// DESIGN.md).
type classicQueue []candidate

func (h classicQueue) Len() int { return len(h) }
func (h classicQueue) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank < h[j].rank
	}
	return h[i].leftPos < h[j].leftPos
}
func (h classicQueue) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *classicQueue) Push(x any)   { *h = append(*h, x.(candidate)) }
func (h *classicQueue) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// EncodeViaHeap is functionally identical to Engine.Encode but uses a
// classic container/heap priority queue instead of the rank-bucketed queue.
// It exists to cross-check the two queue disciplines against each other;
// production code paths use Encode.
func (e *Engine) EncodeViaHeap(input []byte) []uint32 {
	n := len(input)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []uint32{e.v.ByteToInitialToken[input[0]]}
	}

	b := &buffer{}
	b.init(input, e.v)

	h := &classicQueue{}
	heap.Init(h)

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
		heap.Push(h, candidate{rank: rank, leftPos: i})
	}

	for i := uint32(0); i != Sentinel; i = b.next[i] {
		pushIfMergeable(i)
	}

	for h.Len() > 0 {
		c := heap.Pop(h).(candidate)
		i := c.leftPos
		if !b.valid[i] {
			continue
		}
		j := b.next[i]
		if j == Sentinel || !b.valid[j] {
			continue
		}
		rank, ok := e.lookupMerge(input, i, j, b)
		if !ok || rank != c.rank {
			continue
		}

		b.tokens[i] = rank
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
