package clusterbreak

// Unicode Grapheme_Cluster_Break properties from UAX #29, plus
// Extended_Pictographic from UTS #51. Every code point carries exactly one
// of these values; code points absent from the table carry prAny.
const (
	prAny = iota // Default/any property (must be 0)

	prCR                   // Carriage return
	prLF                   // Line feed
	prControl              // Control and format characters
	prExtend               // Extending characters (combining marks, emoji modifiers, ZWNJ)
	prZWJ                  // Zero Width Joiner
	prRegionalIndicator    // Flag emoji components (paired)
	prPrepend              // Characters that don't break before the following char
	prSpacingMark          // Spacing combining marks
	prL                    // Hangul leading consonant (Jamo L)
	prV                    // Hangul vowel (Jamo V)
	prT                    // Hangul trailing consonant (Jamo T)
	prLV                   // Hangul syllable LV
	prLVT                  // Hangul syllable LVT
	prExtendedPictographic // Emoji and pictographic characters
)

// Hangul syllable composition constants (The Unicode Standard, chapter
// 3.12). A precomposed syllable is LV when its trailing-consonant index is
// zero, LVT otherwise.
const (
	hangulSBase  = 0xac00
	hangulSLast  = 0xd7a3
	hangulTCount = 28
)

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property]. Returns the
// matching entry, or a zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// propertyGraphemes returns the grapheme cluster break property of the
// given code point while fast tracking ASCII characters and precomposed
// Hangul syllables. It is total: unmapped code points, including U+FFFD
// produced by decoding malformed UTF-8, yield prAny.
func propertyGraphemes(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return prAny
	}
	if r == 0x0a {
		return prLF
	}
	if r == 0x0d {
		return prCR
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return prControl
	}
	if r >= hangulSBase && r <= hangulSLast {
		if (r-hangulSBase)%hangulTCount == 0 {
			return prLV
		}
		return prLVT
	}
	return propertySearch(graphemeCodePoints, r)[2]
}

// IsExtendingChar reports whether the code point extends the preceding
// grapheme cluster without starting a new one, that is, whether its
// grapheme cluster break property is Extend or ZWJ. This covers combining
// marks, emoji skin tone modifiers, variation selectors, and the zero
// width joiner. Spacing marks are not extending characters.
func IsExtendingChar(r rune) bool {
	prop := propertyGraphemes(r)
	return prop == prExtend || prop == prZWJ
}
