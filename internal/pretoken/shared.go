package pretoken

import (
	"github.com/tokencost/tokencost/internal/unitab"
	"github.com/tokencost/tokencost/internal/utf8safe"
)

// decodeAt decodes the codepoint starting at pos, or returns ok=false at
// end of input.
func decodeAt(input []byte, pos int) (r rune, width int, ok bool) {
	return utf8safe.PeekAt(input, pos)
}

// isWordPrefix reports whether r is eligible as the optional single prefix
// codepoint before a run of letters: anything except CR, LF, a letter, or a
// number (spec.md §4.2, cl100k_base alternative 2).
func isWordPrefix(r rune) bool {
	if unitab.IsCR(r) || unitab.IsLF(r) {
		return false
	}
	return !unitab.IsLetter(r) && !unitab.IsNumber(r)
}

// isOther reports whether r belongs to none of {whitespace, letter, number}
// — the class consumed by the punctuation alternative.
func isOther(r rune) bool {
	return !unitab.IsWhitespace(r) && !unitab.IsLetter(r) && !unitab.IsNumber(r)
}

// matchContraction matches the shared English contraction suffix:
// (case-insensitive) 's, 't, 'm, 'd (2 bytes) or 're, 've, 'll (3 bytes).
// Returns the byte length matched, or 0.
func matchContraction(input []byte, pos int) int {
	if pos >= len(input) || input[pos] != '\'' {
		return 0
	}
	if pos+1 >= len(input) {
		return 0
	}
	c1 := lower(input[pos+1])
	switch c1 {
	case 's', 't', 'm', 'd':
		return 2
	}
	if pos+2 < len(input) {
		c2 := lower(input[pos+2])
		switch {
		case c1 == 'r' && c2 == 'e':
			return 3
		case c1 == 'v' && c2 == 'e':
			return 3
		case c1 == 'l' && c2 == 'l':
			return 3
		}
	}
	return 0
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// matchDigits matches one, two, or three digit codepoints, never more — a
// longer digit run is split into successive three-digit pre-tokens by
// repeated top-level calls (spec.md §4.2 alternative 3, and the
// "three-digit split" property in spec.md §8).
func matchDigits(input []byte, pos int) int {
	n := 0
	end := pos
	for n < 3 && end < len(input) {
		r, w, ok := decodeAt(input, end)
		if !ok || !unitab.IsDigit(r) {
			break
		}
		end += w
		n++
	}
	return end - pos
}

// matchWhitespaceBranches implements cl100k_base/o200k_base alternatives
// 5–7 together: a maximal whitespace run starting at pos, matched according
// to whichever of "ends in CR/LF" (extend through the last CR/LF in the
// run), "reaches end of input" (consume the whole run), or "generic"
// (consume the whole run) applies. This resolves the Open Question in
// spec.md §9 by choosing the o200k_base-parity reading of Branch 5: extend
// through the *last* CR/LF in the run, not just the first.
func matchWhitespaceBranches(input []byte, pos int) int {
	r0, w0, ok := decodeAt(input, pos)
	if !ok || !unitab.IsWhitespace(r0) {
		return 0
	}

	end := pos
	lastCRLFEnd := -1
	cur := pos
	for cur < len(input) {
		r, w, ok := decodeAt(input, cur)
		if !ok || !unitab.IsWhitespace(r) {
			break
		}
		cur += w
		if unitab.IsCR(r) || unitab.IsLF(r) {
			lastCRLFEnd = cur
		}
	}
	end = cur
	_ = w0

	if lastCRLFEnd != -1 {
		return lastCRLFEnd - pos // Branch 5: through the last CR/LF in the run.
	}
	// Branch 6 and 7 both consume the whole run; the only difference
	// (reaching end-of-input or not) does not change the matched length.
	return end - pos
}
