package pretoken

import "github.com/tokencost/tokencost/internal/unitab"

// Cl100k implements the cl100k_base pre-tokenizer (spec.md §4.2).
type Cl100k struct{}

// Match attempts the cl100k_base alternatives in declared order and returns
// the first non-zero match length.
func (Cl100k) Match(input []byte, pos int) int {
	if n := matchContraction(input, pos); n > 0 {
		return n
	}
	if n := matchCl100kWord(input, pos); n > 0 {
		return n
	}
	if n := matchDigits(input, pos); n > 0 {
		return n
	}
	if n := matchCl100kPunctuation(input, pos); n > 0 {
		return n
	}
	if n := matchWhitespaceBranches(input, pos); n > 0 {
		return n
	}
	return 0
}

// matchCl100kWord implements alternative 2: an optional single
// non-CR/LF/letter/number prefix codepoint, then one or more letters.
func matchCl100kWord(input []byte, pos int) int {
	r0, w0, ok := decodeAt(input, pos)
	if !ok {
		return 0
	}

	// Try with the optional prefix first (greedy).
	if isWordPrefix(r0) {
		letters := countLetterRun(input, pos+w0)
		if letters > 0 {
			return w0 + letters
		}
	}

	// Fall back to no prefix.
	if unitab.IsLetter(r0) {
		letters := countLetterRun(input, pos)
		return letters
	}
	return 0
}

func countLetterRun(input []byte, pos int) int {
	end := pos
	for end < len(input) {
		r, w, ok := decodeAt(input, end)
		if !ok || !unitab.IsLetter(r) {
			break
		}
		end += w
	}
	return end - pos
}

// matchCl100kPunctuation implements alternative 4: optional single space
// prefix, one or more codepoints that are none of {whitespace, letter,
// number}, then zero or more \r/\n.
func matchCl100kPunctuation(input []byte, pos int) int {
	start := pos
	if pos < len(input) && input[pos] == ' ' {
		otherLen := countOtherRun(input, pos+1)
		if otherLen > 0 {
			end := pos + 1 + otherLen
			end += countTrailingCRLF(input, end)
			return end - start
		}
		return 0
	}

	r0, _, ok := decodeAt(input, pos)
	if !ok || !isOther(r0) {
		return 0
	}
	otherLen := countOtherRun(input, pos)
	end := pos + otherLen
	end += countTrailingCRLF(input, end)
	return end - start
}

func countOtherRun(input []byte, pos int) int {
	end := pos
	for end < len(input) {
		r, w, ok := decodeAt(input, end)
		if !ok || !isOther(r) {
			break
		}
		end += w
	}
	return end - pos
}

func countTrailingCRLF(input []byte, pos int) int {
	end := pos
	for end < len(input) {
		r, w, ok := decodeAt(input, end)
		if !ok || !(unitab.IsCR(r) || unitab.IsLF(r)) {
			break
		}
		end += w
	}
	return end - pos
}
