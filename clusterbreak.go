package clusterbreak

import "unicode/utf8"

// FindClusterBreak returns the position, in bytes, of the grapheme cluster
// boundary nearest to pos in the requested direction. With forward true, it
// returns the smallest boundary greater than pos, or len(b) if the rest of
// the slice belongs to the cluster containing pos. With forward false, it
// returns the largest boundary less than pos, or 0.
//
// With includeExtending true (the usual setting), extending characters such
// as combining marks, emoji modifiers, and the zero width joiner merge into
// the preceding cluster per rules GB9 and GB9a. With includeExtending
// false, those rules are suppressed and every extending character starts a
// cluster of its own.
//
// The function is total: pos is clamped to [0, len(b)], a pos inside a
// multi-byte rune is moved back to the start of that rune, and malformed
// UTF-8 is stepped over byte by byte as if each offending byte were a
// single unclassified code point. The result always falls on a rune start.
func FindClusterBreak(b []byte, pos int, forward, includeExtending bool) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b) {
		pos = len(b)
	}
	if forward {
		return nextClusterBreak(b, pos, includeExtending)
	}
	return prevClusterBreak(b, pos, includeExtending)
}

// FindClusterBreakInString is like [FindClusterBreak] but its input is a
// string.
func FindClusterBreakInString(str string, pos int, forward, includeExtending bool) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(str) {
		pos = len(str)
	}
	if forward {
		return nextClusterBreakInString(str, pos, includeExtending)
	}
	return prevClusterBreakInString(str, pos, includeExtending)
}

// nextClusterBreak scans forward from pos and returns the first boundary
// after the cluster continuing through pos.
func nextClusterBreak(b []byte, pos int, includeExtending bool) int {
	if pos >= len(b) {
		return len(b)
	}

	pos = alignRuneStart(b, pos)
	r, length := utf8.DecodeRune(b[pos:])
	prev := propertyGraphemes(r)

	// Rules GB11 and GB12/GB13 depend on text to the left of the start
	// position; recover that context with a bounded look-behind so that a
	// scan from any offset agrees with a scan of the whole input.
	riRun := 0
	if prev == prRegionalIndicator {
		riRun = riRunBefore(b, pos) + 1
	}
	picto := pictoStateBefore(b, pos, prev)

	for pos += length; pos < len(b); pos += length {
		r, length = utf8.DecodeRune(b[pos:])
		cur := propertyGraphemes(r)
		if breakBetween(prev, cur, riRun, picto, includeExtending) {
			return pos
		}
		if cur == prRegionalIndicator {
			riRun++
		} else {
			riRun = 0
		}
		picto = nextPictoState(picto, cur)
		prev = cur
	}
	return len(b)
}

// nextClusterBreakInString is like nextClusterBreak but operates on a
// string.
func nextClusterBreakInString(str string, pos int, includeExtending bool) int {
	if pos >= len(str) {
		return len(str)
	}

	pos = alignRuneStartInString(str, pos)
	r, length := utf8.DecodeRuneInString(str[pos:])
	prev := propertyGraphemes(r)

	riRun := 0
	if prev == prRegionalIndicator {
		riRun = riRunBeforeInString(str, pos) + 1
	}
	picto := pictoStateBeforeInString(str, pos, prev)

	for pos += length; pos < len(str); pos += length {
		r, length = utf8.DecodeRuneInString(str[pos:])
		cur := propertyGraphemes(r)
		if breakBetween(prev, cur, riRun, picto, includeExtending) {
			return pos
		}
		if cur == prRegionalIndicator {
			riRun++
		} else {
			riRun = 0
		}
		picto = nextPictoState(picto, cur)
		prev = cur
	}
	return len(str)
}

// prevClusterBreak scans backward from pos. It probes forward from
// successively earlier rune starts: the first probe whose cluster ends
// strictly before pos has found the cluster preceding pos, and that end is
// the boundary sought. This reuses the forward rule evaluation unchanged
// instead of mirroring the rule table for reverse order.
func prevClusterBreak(b []byte, pos int, includeExtending bool) int {
	for probe := pos; probe > 0; {
		_, length := utf8.DecodeLastRune(b[:probe])
		probe -= length
		if found := nextClusterBreak(b, probe, includeExtending); found < pos {
			return found
		}
	}
	return 0
}

// prevClusterBreakInString is like prevClusterBreak but operates on a
// string.
func prevClusterBreakInString(str string, pos int, includeExtending bool) int {
	for probe := pos; probe > 0; {
		_, length := utf8.DecodeLastRuneInString(str[:probe])
		probe -= length
		if found := nextClusterBreakInString(str, probe, includeExtending); found < pos {
			return found
		}
	}
	return 0
}

// alignRuneStart moves pos back to the start of the rune containing it.
// Only a position inside a well-formed multi-byte sequence moves: a stray
// continuation byte is its own one-byte code point and already starts a
// cluster, so positions within a run of malformed bytes stay put.
func alignRuneStart(b []byte, pos int) int {
	start := pos
	for start > 0 && start > pos-utf8.UTFMax && !utf8.RuneStart(b[start]) {
		start--
	}
	if start < pos {
		if _, length := utf8.DecodeRune(b[start:]); start+length > pos {
			return start
		}
	}
	return pos
}

// alignRuneStartInString is like alignRuneStart but operates on a string.
func alignRuneStartInString(str string, pos int) int {
	start := pos
	for start > 0 && start > pos-utf8.UTFMax && !utf8.RuneStart(str[start]) {
		start--
	}
	if start < pos {
		if _, length := utf8.DecodeRuneInString(str[start:]); start+length > pos {
			return start
		}
	}
	return pos
}

// riRunBefore counts the consecutive regional indicator code points ending
// at pos.
func riRunBefore(b []byte, pos int) int {
	run := 0
	for pos > 0 {
		r, length := utf8.DecodeLastRune(b[:pos])
		if propertyGraphemes(r) != prRegionalIndicator {
			break
		}
		run++
		pos -= length
	}
	return run
}

// riRunBeforeInString is like riRunBefore but operates on a string.
func riRunBeforeInString(str string, pos int) int {
	run := 0
	for pos > 0 {
		r, length := utf8.DecodeLastRuneInString(str[:pos])
		if propertyGraphemes(r) != prRegionalIndicator {
			break
		}
		run++
		pos -= length
	}
	return run
}

// pictoStateBefore computes the GB11 chain state in effect when a scan's
// first code point, located at pos, has the given property. The chain
// tracked is the one ending immediately before the scan's second code
// point, so the first code point itself participates.
func pictoStateBefore(b []byte, pos, prop int) int {
	switch prop {
	case prExtendedPictographic:
		return pictoEmoji
	case prExtend, prZWJ:
	default:
		return pictoNone
	}
	for pos > 0 {
		r, length := utf8.DecodeLastRune(b[:pos])
		switch propertyGraphemes(r) {
		case prExtend:
			pos -= length
		case prExtendedPictographic:
			if prop == prZWJ {
				return pictoZWJ
			}
			return pictoEmoji
		default:
			return pictoNone
		}
	}
	return pictoNone
}

// pictoStateBeforeInString is like pictoStateBefore but operates on a
// string.
func pictoStateBeforeInString(str string, pos, prop int) int {
	switch prop {
	case prExtendedPictographic:
		return pictoEmoji
	case prExtend, prZWJ:
	default:
		return pictoNone
	}
	for pos > 0 {
		r, length := utf8.DecodeLastRuneInString(str[:pos])
		switch propertyGraphemes(r) {
		case prExtend:
			pos -= length
		case prExtendedPictographic:
			if prop == prZWJ {
				return pictoZWJ
			}
			return pictoEmoji
		default:
			return pictoNone
		}
	}
	return pictoNone
}
