package clusterbreak

import "testing"

func TestPropertyGraphemes(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii letter", 'a', prAny},
		{"ascii space", ' ', prAny},
		{"lf", '\n', prLF},
		{"cr", '\r', prCR},
		{"nul", 0x00, prControl},
		{"del", 0x7f, prControl},
		{"soft hyphen", 0x00ad, prControl},
		{"surrogate", 0xd800, prControl},
		{"combining acute", 0x0301, prExtend},
		{"zwnj", 0x200c, prExtend},
		{"variation selector", 0xfe0f, prExtend},
		{"emoji modifier", 0x1f3fd, prExtend},
		{"tag char", 0xe0067, prExtend},
		{"halfwidth voiced mark", 0xff9e, prExtend},
		{"zwj", 0x200d, prZWJ},
		{"regional indicator", 0x1f1e6, prRegionalIndicator},
		{"arabic number sign", 0x0600, prPrepend},
		{"malayalam dot reph", 0x0d4e, prPrepend},
		{"devanagari visarga", 0x0903, prSpacingMark},
		{"thai sara am", 0x0e33, prSpacingMark},
		{"myanmar aa exception", 0x102b, prAny},
		{"jamo l", 0x1100, prL},
		{"jamo v", 0x1160, prV},
		{"jamo t", 0x11a8, prT},
		{"syllable lv first", 0xac00, prLV},
		{"syllable lvt", 0xac01, prLVT},
		{"syllable lv other", 0xb098, prLV},
		{"syllable lvt last", 0xd7a3, prLVT},
		{"copyright sign", 0x00a9, prExtendedPictographic},
		{"grinning face", 0x1f600, prExtendedPictographic},
		{"flexed biceps", 0x1f4aa, prExtendedPictographic},
		{"replacement char", 0xfffd, prAny},
		{"cjk", 0x4e16, prAny},
		{"max code point", 0x10ffff, prAny},
		{"negative rune", -1, prAny},
	}

	for _, tt := range tests {
		if got := propertyGraphemes(tt.r); got != tt.want {
			t.Errorf("%s: propertyGraphemes(%#U) = %d, want %d", tt.name, tt.r, got, tt.want)
		}
	}
}

func TestIsExtendingChar(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{0x0301, true},  // combining acute
		{0x200c, true},  // ZWNJ
		{0x200d, true},  // ZWJ
		{0xfe0f, true},  // variation selector-16
		{0x1f3fd, true}, // emoji modifier
		{0x0903, false}, // spacing mark
		{0x1f1e6, false},
		{0x1f600, false},
		{'\n', false},
	}

	for _, tt := range tests {
		if got := IsExtendingChar(tt.r); got != tt.want {
			t.Errorf("IsExtendingChar(%#U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

// The binary search requires the generated table to be sorted, disjoint,
// and free of Hangul syllables (those take the arithmetic fast path).
func TestGraphemeTableInvariants(t *testing.T) {
	prevHigh := -1
	for i, entry := range graphemeCodePoints {
		lo, hi, prop := entry[0], entry[1], entry[2]
		if lo > hi {
			t.Errorf("entry %d: inverted range %04X..%04X", i, lo, hi)
		}
		if lo <= prevHigh {
			t.Errorf("entry %d: range %04X..%04X overlaps previous (ends %04X)", i, lo, hi, prevHigh)
		}
		if prop <= prAny || prop > prExtendedPictographic {
			t.Errorf("entry %d: invalid property %d", i, prop)
		}
		if prop == prLV || prop == prLVT {
			t.Errorf("entry %d: Hangul syllable range %04X..%04X belongs to the fast path", i, lo, hi)
		}
		if lo >= hangulSBase && lo <= hangulSLast {
			t.Errorf("entry %d: range %04X..%04X inside Hangul syllable block", i, lo, hi)
		}
		prevHigh = hi
	}
}
