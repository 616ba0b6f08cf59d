// Package pretoken implements the priority-list pre-tokenizer scanners for
// cl100k_base and o200k_base (spec.md §4.2, component C4). Each scanner
// attempts its alternatives in declared order at the current byte
// position, leftmost-first, and commits the first non-zero match. If every
// alternative fails, the scanner falls back to a one-byte pre-token,
// guaranteeing forward progress (spec.md's "forward-progress guarantee").
package pretoken

// Pretoken is a view into the input: a byte offset and length. IsSpecial is
// always false for cl100k_base/o200k_base — special-token spans are never
// produced by these scanners (spec.md §9); the field is carried only so a
// future encoding's scanner can set it.
type Pretoken struct {
	Offset    int
	Length    int
	IsSpecial bool
}

// Scanner matches one alternative set at a byte position and reports the
// number of bytes consumed, or 0 if no alternative in its priority list
// matched.
type Scanner interface {
	Match(input []byte, pos int) int
}

// Scan drives a Scanner across the whole input, producing the full sequence
// of pre-tokens. Span lengths always sum to len(input) (spec.md §8,
// "forward progress").
func Scan(input []byte, sc Scanner) []Pretoken {
	out := make([]Pretoken, 0, len(input)/3+1)
	pos := 0
	for pos < len(input) {
		n := sc.Match(input, pos)
		if n <= 0 {
			n = 1
		}
		out = append(out, Pretoken{Offset: pos, Length: n})
		pos += n
	}
	return out
}

// Iter is a lazy, pull-based alternative to Scan for callers that want to
// avoid materializing the whole pre-token slice up front (e.g. very long
// single-line input).
type Iter struct {
	input []byte
	sc    Scanner
	pos   int
}

// NewIter returns a lazy pre-token iterator over input using sc.
func NewIter(input []byte, sc Scanner) *Iter {
	return &Iter{input: input, sc: sc}
}

// Next returns the next pre-token, or ok=false once the input is exhausted.
func (it *Iter) Next() (Pretoken, bool) {
	if it.pos >= len(it.input) {
		return Pretoken{}, false
	}
	n := it.sc.Match(it.input, it.pos)
	if n <= 0 {
		n = 1
	}
	p := Pretoken{Offset: it.pos, Length: n}
	it.pos += n
	return p, true
}
