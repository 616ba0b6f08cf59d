// Package unitab provides hand-maintained, binary-searchable Unicode
// category range tables used by the pre-tokenizer scanners.
//
// These tables are pinned to the category semantics the reference tokenizer
// regex engines rely on, rather than tracking whatever Unicode version the
// host Go toolchain ships. A table is a sorted list of half-open ranges
// [Lo, Hi); membership is a binary search over that list.
//
// The ranges below are a hand-picked subset of the real Unicode Character
// Database, not a full UCD extraction — see DESIGN.md's internal/unitab
// entry for exactly which blocks are covered and which are not.
package unitab

// Range is a half-open codepoint interval [Lo, Hi).
type Range struct {
	Lo, Hi rune
}

func inRanges(r rune, ranges []Range) bool {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		rg := ranges[mid]
		switch {
		case r < rg.Lo:
			hi = mid
		case r >= rg.Hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Lu — uppercase letters.
var Lu = []Range{
	{0x0041, 0x005B}, {0x00C0, 0x00D7}, {0x00D8, 0x00DE},
	{0x0100, 0x0101}, {0x0102, 0x0103}, {0x0104, 0x0105},
	{0x0106, 0x0107}, {0x0108, 0x0109}, {0x010A, 0x010B},
	{0x010C, 0x010D}, {0x010E, 0x010F}, {0x0110, 0x0111},
	{0x0112, 0x0113}, {0x0114, 0x0115}, {0x0116, 0x0117},
	{0x0118, 0x0119}, {0x011A, 0x011B}, {0x011C, 0x011D},
	{0x011E, 0x011F}, {0x0120, 0x0121}, {0x0122, 0x0123},
	{0x0124, 0x0125}, {0x0126, 0x0127}, {0x0128, 0x0129},
	{0x012A, 0x012B}, {0x012C, 0x012D}, {0x012E, 0x012F},
	{0x0130, 0x0131}, {0x0132, 0x0133}, {0x0134, 0x0135},
	{0x0136, 0x0137}, {0x0139, 0x013A}, {0x013B, 0x013C},
	{0x013D, 0x013E}, {0x013F, 0x0140}, {0x0141, 0x0142},
	{0x0143, 0x0144}, {0x0145, 0x0146}, {0x0147, 0x0148},
	{0x014A, 0x014B}, {0x014C, 0x014D}, {0x014E, 0x014F},
	{0x0150, 0x0151}, {0x0152, 0x0153}, {0x0154, 0x0155},
	{0x0156, 0x0157}, {0x0158, 0x0159}, {0x015A, 0x015B},
	{0x015C, 0x015D}, {0x015E, 0x015F}, {0x0160, 0x0161},
	{0x0162, 0x0163}, {0x0164, 0x0165}, {0x0166, 0x0167},
	{0x0168, 0x0169}, {0x016A, 0x016B}, {0x016C, 0x016D},
	{0x016E, 0x016F}, {0x0170, 0x0171}, {0x0172, 0x0173},
	{0x0174, 0x0175}, {0x0176, 0x0177}, {0x0178, 0x017A},
	{0x017B, 0x017C}, {0x017D, 0x017E},
	{0x0391, 0x03A2}, {0x03A3, 0x03AB},
	{0x0400, 0x0410}, {0x0410, 0x0430}, {0x0460, 0x0461},
	{0x0462, 0x0463}, {0x0472, 0x0473}, {0x0490, 0x0491},
	{0x04D0, 0x04D1},
	{0x1E00, 0x1E01}, {0x1E02, 0x1E03},
	{0x1F08, 0x1F10}, {0x1F18, 0x1F1E}, {0x1F28, 0x1F30},
	{0x1F38, 0x1F40}, {0x1F48, 0x1F4E}, {0x1F59, 0x1F5A},
	{0x1F68, 0x1F70},
	{0x24B6, 0x24D0},
	{0xFF21, 0xFF3B},
}

// Ll — lowercase letters.
var Ll = []Range{
	{0x0061, 0x007B}, {0x00B5, 0x00B6}, {0x00DF, 0x00F7}, {0x00F8, 0x0100},
	{0x0101, 0x0102}, {0x0103, 0x0104}, {0x0105, 0x0106},
	{0x0107, 0x0108}, {0x0109, 0x010A}, {0x010B, 0x010C},
	{0x010D, 0x010E}, {0x010F, 0x0110}, {0x0111, 0x0112},
	{0x0113, 0x0114}, {0x0115, 0x0116}, {0x0117, 0x0118},
	{0x0119, 0x011A}, {0x011B, 0x011C}, {0x011D, 0x011E},
	{0x011F, 0x0120}, {0x0121, 0x0122}, {0x0123, 0x0124},
	{0x0125, 0x0126}, {0x0127, 0x0128}, {0x0129, 0x012A},
	{0x012B, 0x012C}, {0x012D, 0x012E}, {0x012F, 0x0130},
	{0x0131, 0x0132}, {0x0133, 0x0134}, {0x0135, 0x0136},
	{0x0137, 0x0139}, {0x013A, 0x013B}, {0x013C, 0x013D},
	{0x013E, 0x013F}, {0x0140, 0x0141}, {0x0142, 0x0143},
	{0x0144, 0x0145}, {0x0146, 0x0147}, {0x0148, 0x014A},
	{0x014B, 0x014C}, {0x014D, 0x014E}, {0x014F, 0x0150},
	{0x0151, 0x0152}, {0x0153, 0x0154}, {0x0155, 0x0156},
	{0x0157, 0x0158}, {0x0159, 0x015A}, {0x015B, 0x015C},
	{0x015D, 0x015E}, {0x015F, 0x0160}, {0x0161, 0x0162},
	{0x0163, 0x0164}, {0x0165, 0x0166}, {0x0167, 0x0168},
	{0x0169, 0x016A}, {0x016B, 0x016C}, {0x016D, 0x016E},
	{0x016F, 0x0170}, {0x0171, 0x0172}, {0x0173, 0x0174},
	{0x0175, 0x0176}, {0x0177, 0x0178}, {0x017A, 0x017B},
	{0x017C, 0x017D}, {0x017E, 0x0180},
	{0x03AC, 0x03CE},
	{0x0430, 0x0450}, {0x0450, 0x0460}, {0x0461, 0x0462},
	{0x0463, 0x0464}, {0x0473, 0x0474}, {0x0491, 0x0492},
	{0x04D1, 0x04D2},
	{0x1E01, 0x1E02}, {0x1E03, 0x1E04},
	{0x1F00, 0x1F08}, {0x1F10, 0x1F16}, {0x1F20, 0x1F28},
	{0x1F30, 0x1F38}, {0x1F40, 0x1F46}, {0x1F50, 0x1F58},
	{0x1F60, 0x1F68}, {0x1F70, 0x1F7E},
	{0x24D0, 0x24EA},
	{0xFF41, 0xFF5B},
}

// Lt — titlecase letters (a small, closed set in Unicode).
var Lt = []Range{
	{0x01C5, 0x01C6}, {0x01C8, 0x01C9}, {0x01CB, 0x01CC}, {0x01F2, 0x01F3},
	{0x1F88, 0x1F90}, {0x1F98, 0x1FA0}, {0x1FA8, 0x1FB0},
	{0x1FBC, 0x1FBD}, {0x1FCC, 0x1FCD}, {0x1FFC, 0x1FFD},
}

// Lm — modifier letters.
var Lm = []Range{
	{0x02B0, 0x02C2}, {0x02C6, 0x02D2}, {0x02E0, 0x02E5},
	{0x0374, 0x0375}, {0x037A, 0x037B},
	{0x0559, 0x055A}, {0x0640, 0x0641},
	{0x06E5, 0x06E7}, {0x07F4, 0x07F6},
	{0x1D2C, 0x1D6B}, {0x1D78, 0x1D79}, {0x1D9B, 0x1DC0},
	{0x2071, 0x2072}, {0x207F, 0x2080},
	{0x2090, 0x209D}, {0x2C7C, 0x2C7E},
	{0x3005, 0x3006}, {0x303B, 0x303C},
	{0xFF70, 0xFF71}, {0xFF9E, 0xFFA0},
}

// Lo — other letters (the bulk of CJK, Hangul syllables, Arabic, Hebrew, etc).
var Lo = []Range{
	{0x00AA, 0x00AB}, {0x00BA, 0x00BB},
	{0x01BB, 0x01BC}, {0x01C0, 0x01C4},
	{0x0345, 0x0346},
	{0x05D0, 0x05EB}, {0x05EF, 0x05F3},
	{0x0620, 0x063F}, {0x0641, 0x064A}, {0x066E, 0x0670},
	{0x0671, 0x06D4}, {0x06D5, 0x06D6},
	{0x0904, 0x0939}, {0x093D, 0x093E},
	{0x0950, 0x0951},
	{0x0985, 0x098D},
	{0x0E01, 0x0E31},
	{0x0E40, 0x0E46},
	{0x10D0, 0x10FB},
	{0x1100, 0x1160},
	{0x3041, 0x3097}, // hiragana
	{0x30A1, 0x30FB}, // katakana
	{0x3105, 0x312D}, // bopomofo
	{0x3131, 0x318F}, // hangul jamo compat
	{0x31A0, 0x31BB},
	{0x3400, 0x4DB6},  // CJK extension A
	{0x4E00, 0xA000},  // CJK unified ideographs
	{0xA000, 0xA48D},  // Yi
	{0xAC00, 0xD7A4},  // hangul syllables
	{0xF900, 0xFA2E},  // CJK compat ideographs
	{0xFF66, 0xFF70},  // halfwidth katakana
	{0xFFA1, 0xFFDC},  // halfwidth hangul
	{0x20000, 0x2A6E0}, // CJK extension B (astral)
}

// M — marks (combining, enclosing, non-spacing, spacing combining).
var M = []Range{
	{0x0300, 0x0370}, // combining diacriticals
	{0x0483, 0x048A},
	{0x0591, 0x05BE}, {0x05BF, 0x05C0}, {0x05C1, 0x05C3}, {0x05C4, 0x05C6},
	{0x0610, 0x061B},
	{0x064B, 0x0660}, {0x0670, 0x0671},
	{0x06D6, 0x06DD}, {0x06DF, 0x06E5}, {0x06E7, 0x06E9}, {0x06EA, 0x06EF},
	{0x0711, 0x0712}, {0x0730, 0x074B},
	{0x07A6, 0x07B1},
	{0x0901, 0x0904}, {0x093C, 0x093D}, {0x093E, 0x0950}, {0x0951, 0x0955},
	{0x0E31, 0x0E32}, {0x0E34, 0x0E3B}, {0x0E47, 0x0E4F},
	{0x20D0, 0x20F1},
	{0xFE00, 0xFE10}, {0xFE20, 0xFE30},
}

// N — numbers (decimal digits and other numeric codepoints).
var N = []Range{
	{0x0030, 0x003A},
	{0x00B2, 0x00B3}, {0x00B9, 0x00BA}, {0x00BC, 0x00BF},
	{0x0660, 0x066A},
	{0x06F0, 0x06FA},
	{0x0966, 0x0970},
	{0x09E6, 0x09F0},
	{0x0E50, 0x0E5A},
	{0x0F20, 0x0F2A},
	{0x1040, 0x104A},
	{0x2070, 0x2071}, {0x2074, 0x207A}, {0x2080, 0x208A},
	{0x2150, 0x2190},
	{0x2460, 0x249C},
	{0xFF10, 0xFF1A},
}

// P — punctuation.
var P = []Range{
	{0x0021, 0x0024}, {0x0025, 0x002B}, {0x002C, 0x002F},
	{0x003A, 0x003C}, {0x003F, 0x0041}, {0x005B, 0x005E},
	{0x0060, 0x0061}, {0x007B, 0x007E},
	{0x00A1, 0x00A2}, {0x00A7, 0x00A8}, {0x00AB, 0x00AC}, {0x00B6, 0x00B8},
	{0x00BB, 0x00BC}, {0x00BF, 0x00C0},
	{0x037E, 0x037F}, {0x0387, 0x0388},
	{0x055A, 0x0560},
	{0x0589, 0x058B}, {0x05BE, 0x05BF}, {0x05C0, 0x05C1}, {0x05C3, 0x05C4},
	{0x05F3, 0x05F5},
	{0x0609, 0x060B}, {0x060C, 0x060E}, {0x061B, 0x061C}, {0x061E, 0x0620},
	{0x066A, 0x066E},
	{0x06D4, 0x06D5},
	{0x0700, 0x070E},
	{0x2010, 0x2028}, {0x2030, 0x2043}, {0x2045, 0x2055}, {0x2056, 0x205F},
	{0x2329, 0x232B},
	{0x3001, 0x3004}, {0x3008, 0x3012}, {0x3014, 0x301A}, {0x301D, 0x3020},
	{0xFD3E, 0xFD40},
	{0xFE10, 0xFE1A}, {0xFE30, 0xFE4D}, {0xFE50, 0xFE53}, {0xFE54, 0xFE67},
	{0xFE68, 0xFE6C},
	{0xFF01, 0xFF04}, {0xFF05, 0xFF0B}, {0xFF0C, 0xFF10}, {0xFF1A, 0xFF1C},
	{0xFF1F, 0xFF21}, {0xFF3B, 0xFF3F}, {0xFF40, 0xFF41}, {0xFF5B, 0xFF5F},
	{0xFF5F, 0xFF66},
}

// S — symbols (math, currency, modifier, other).
var S = []Range{
	{0x0024, 0x0025}, {0x002B, 0x002C}, {0x003C, 0x003F},
	{0x005E, 0x005F}, {0x0060, 0x0061}, {0x007C, 0x007D}, {0x007E, 0x007F},
	{0x00A2, 0x00A7}, {0x00A8, 0x00A9}, {0x00A9, 0x00AA}, {0x00AC, 0x00AD},
	{0x00AE, 0x00B2}, {0x00B4, 0x00B5}, {0x00B8, 0x00B9},
	{0x00D7, 0x00D8}, {0x00F7, 0x00F8},
	{0x02C2, 0x02C6}, {0x02D2, 0x02E0}, {0x02E5, 0x02EB},
	{0x0384, 0x0386}, {0x0483, 0x0484},
	{0x2044, 0x2045}, {0x20A0, 0x20C0},
	{0x2100, 0x2150}, {0x2190, 0x2300}, {0x2300, 0x2427},
	{0x2440, 0x245F}, {0x2500, 0x2768}, {0x2794, 0x27C5},
	// Emoji-adjacent arrow/symbol blocks, sorted in with the rest of S.
	{0x2934, 0x2936}, {0x2B05, 0x2B08}, {0x2B1B, 0x2B1D},
	{0x2C2E, 0x2C30},
	{0xFB29, 0xFB2A},
	{0xFDFC, 0xFDFD},
	{0xFE62, 0xFE63}, {0xFE64, 0xFE67}, {0xFE69, 0xFE6A},
	{0xFF04, 0xFF05}, {0xFF0B, 0xFF0C}, {0xFF1C, 0xFF1F},
	{0xFF3E, 0xFF3F}, {0xFF40, 0xFF41}, {0xFF5C, 0xFF5D}, {0xFF5E, 0xFF5F},
	{0xFFE0, 0xFFE7}, {0xFFE8, 0xFFEF},
	// Emoji-bearing astral blocks (spec.md §8 names emoji sequences as a
	// required parity-test input class): regional-indicator flag letters,
	// misc symbols/pictographs, transport/map, supplemental symbols, and
	// the symbols-and-pictographs extended-A block.
	{0x1F1E6, 0x1F200},
	{0x1F300, 0x1F6D8}, {0x1F6E0, 0x1F6EC}, {0x1F6F0, 0x1F6FD},
	{0x1F7E0, 0x1F7EC},
	{0x1F900, 0x1FA00}, {0x1FA70, 0x1FAFF},
}

// Whitespace — the codepoints treated as "\s" by the reference regex engines.
var Whitespace = []Range{
	{0x0009, 0x000E}, // \t \n \v \f \r
	{0x0020, 0x0021}, // space
	{0x0085, 0x0086},
	{0x00A0, 0x00A1},
	{0x1680, 0x1681},
	{0x2000, 0x200B},
	{0x2028, 0x202A},
	{0x202F, 0x2030},
	{0x205F, 0x2060},
	{0x3000, 0x3001},
}

// Control — C0/C1 control codes.
var Control = []Range{
	{0x0000, 0x0020},
	{0x007F, 0x00A0},
}
