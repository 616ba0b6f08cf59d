// Package utf8safe provides a non-panicking codepoint iterator over a byte
// slice. Malformed sequences decode to U+FFFD and the cursor always advances
// at least one byte, guaranteeing that any scanner loop built on top of it
// terminates.
package utf8safe

import "unicode/utf8"

// Iter walks a byte slice one codepoint at a time.
type Iter struct {
	src []byte
	pos int
}

// New returns an iterator positioned at the start of src.
func New(src []byte) *Iter {
	return &Iter{src: src}
}

// Pos returns the current byte offset.
func (it *Iter) Pos() int { return it.pos }

// SeekTo moves the cursor to an arbitrary byte offset, for save/restore style
// lookahead.
func (it *Iter) SeekTo(pos int) { it.pos = pos }

// Done reports whether the iterator has consumed the whole input.
func (it *Iter) Done() bool { return it.pos >= len(it.src) }

// Next decodes the codepoint at the cursor, advances past it, and returns
// the codepoint plus its encoded byte width in the input. Invalid sequences
// decode to utf8.RuneError (U+FFFD) and still advance — by one byte for a
// truncated/invalid lead byte, per utf8.DecodeRune's own contract.
func (it *Iter) Next() (r rune, width int, ok bool) {
	if it.pos >= len(it.src) {
		return 0, 0, false
	}
	r, width = utf8.DecodeRune(it.src[it.pos:])
	if width == 0 {
		width = 1
	}
	it.pos += width
	return r, width, true
}

// Peek looks at the codepoint at the cursor without advancing. It reports
// ok=false at end of input.
func (it *Iter) Peek() (r rune, width int, ok bool) {
	save := it.pos
	r, width, ok = it.Next()
	it.pos = save
	return r, width, ok
}

// PeekAt looks at the codepoint starting at an arbitrary offset, without
// moving the iterator's own cursor.
func PeekAt(src []byte, pos int) (r rune, width int, ok bool) {
	if pos >= len(src) {
		return 0, 0, false
	}
	r, width = utf8.DecodeRune(src[pos:])
	if width == 0 {
		width = 1
	}
	return r, width, true
}
