package pretoken

import "github.com/tokencost/tokencost/internal/unitab"

// O200k implements the o200k_base pre-tokenizer (spec.md §4.2). It shares
// digit and whitespace matching with Cl100k but replaces word matching with
// two backtracking alternatives and extends punctuation to include '/'.
type O200k struct{}

// Match attempts the o200k_base alternatives in declared order.
func (O200k) Match(input []byte, pos int) int {
	if n := matchO200kWordLower(input, pos); n > 0 {
		return n
	}
	if n := matchO200kWordUpperLookahead(input, pos); n > 0 {
		return n
	}
	if n := matchDigits(input, pos); n > 0 {
		return n
	}
	if n := matchO200kPunctuation(input, pos); n > 0 {
		return n
	}
	if n := matchWhitespaceBranches(input, pos); n > 0 {
		return n
	}
	return 0
}

// matchO200kWordLower implements alternative 1: optional prefix; zero or
// more upper-ish codepoints; one or more lower-ish codepoints; optional
// contraction suffix. The upper-ish run backtracks one codepoint at a time
// until the lower-ish requirement is satisfiable, mirroring regex
// backtracking (spec.md §9).
func matchO200kWordLower(input []byte, pos int) int {
	if n, ok := tryO200kWordLowerAt(input, pos, true); ok {
		return n
	}
	if n, ok := tryO200kWordLowerAt(input, pos, false); ok {
		return n
	}
	return 0
}

func tryO200kWordLowerAt(input []byte, pos int, withPrefix bool) (int, bool) {
	start := pos
	prefixWidth := 0
	if withPrefix {
		r0, w0, ok := decodeAt(input, pos)
		if !ok || !isWordPrefix(r0) {
			return 0, false
		}
		prefixWidth = w0
	}

	bodyStart := start + prefixWidth

	// Greedily collect upper-ish codepoint widths so we can shrink the run
	// one codepoint at a time without re-scanning from byte 0 each time.
	var upperWidths []int
	cur := bodyStart
	for {
		r, w, ok := decodeAt(input, cur)
		if !ok || !unitab.IsUpperish(r) {
			break
		}
		upperWidths = append(upperWidths, w)
		cur += w
	}

	for keep := len(upperWidths); keep >= 0; keep-- {
		upperEnd := bodyStart
		for i := 0; i < keep; i++ {
			upperEnd += upperWidths[i]
		}
		lowerLen := countLowerishRun(input, upperEnd)
		if lowerLen == 0 {
			continue
		}
		end := upperEnd + lowerLen
		end += matchContraction(input, end)
		return end - start, true
	}
	return 0, false
}

func countLowerishRun(input []byte, pos int) int {
	end := pos
	for end < len(input) {
		r, w, ok := decodeAt(input, end)
		if !ok || !unitab.IsLowerish(r) {
			break
		}
		end += w
	}
	return end - pos
}

// matchO200kWordUpperLookahead implements alternative 2: optional prefix,
// one or more upper-ish codepoints, optional contraction suffix, provided
// the position right after the match is upper-ish, whitespace, punctuation,
// symbol, control, or end-of-input.
func matchO200kWordUpperLookahead(input []byte, pos int) int {
	if n, ok := tryO200kWordUpperAt(input, pos, true); ok {
		return n
	}
	if n, ok := tryO200kWordUpperAt(input, pos, false); ok {
		return n
	}
	return 0
}

func tryO200kWordUpperAt(input []byte, pos int, withPrefix bool) (int, bool) {
	start := pos
	prefixWidth := 0
	if withPrefix {
		r0, w0, ok := decodeAt(input, pos)
		if !ok || !isWordPrefix(r0) {
			return 0, false
		}
		prefixWidth = w0
	}

	bodyStart := start + prefixWidth

	var upperWidths []int
	cur := bodyStart
	for {
		r, w, ok := decodeAt(input, cur)
		if !ok || !unitab.IsUpperish(r) {
			break
		}
		upperWidths = append(upperWidths, w)
		cur += w
	}

	for keep := len(upperWidths); keep >= 1; keep-- {
		upperEnd := bodyStart
		for i := 0; i < keep; i++ {
			upperEnd += upperWidths[i]
		}

		contractionLen := matchContraction(input, upperEnd)

		// Prefer the longest match (with contraction) before falling back,
		// matching greedy regex semantics.
		if contractionLen > 0 && lookaheadOK(input, upperEnd+contractionLen) {
			return (upperEnd + contractionLen) - start, true
		}
		if lookaheadOK(input, upperEnd) {
			return upperEnd - start, true
		}
	}
	return 0, false
}

func lookaheadOK(input []byte, pos int) bool {
	r, _, ok := decodeAt(input, pos)
	if !ok {
		return true // end of input
	}
	return unitab.IsUpperish(r) || unitab.IsWhitespace(r) || unitab.IsPunctuation(r) ||
		unitab.IsSymbol(r) || unitab.IsControl(r)
}

// matchO200kPunctuation is alternative 4: optional space prefix, one or
// more non-whitespace/letter/number codepoints, then zero or more of
// {\r, \n, /}.
func matchO200kPunctuation(input []byte, pos int) int {
	start := pos
	if pos < len(input) && input[pos] == ' ' {
		otherLen := countOtherRun(input, pos+1)
		if otherLen > 0 {
			end := pos + 1 + otherLen
			end += countTrailingCRLFSlash(input, end)
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
	end += countTrailingCRLFSlash(input, end)
	return end - start
}

func countTrailingCRLFSlash(input []byte, pos int) int {
	end := pos
	for end < len(input) {
		r, w, ok := decodeAt(input, end)
		if !ok || !(unitab.IsCR(r) || unitab.IsLF(r) || r == '/') {
			break
		}
		end += w
	}
	return end - pos
}
