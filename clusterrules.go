package clusterbreak

// GB11 chain states. The tracker records whether the text immediately
// preceding the code point under consideration ends in an emoji ZWJ
// sequence prefix.
const (
	pictoNone  = iota
	pictoEmoji // \p{Extended_Pictographic} Extend* seen
	pictoZWJ   // \p{Extended_Pictographic} Extend* ZWJ seen, GB11 armed
)

// breakBetween decides whether a grapheme cluster boundary exists between
// two adjacent code points with the given properties. The decision is a
// pure function of the ordered pair (prev, cur) and two pieces of left
// context:
//
//   - riRun is the number of consecutive regional indicator code points
//     immediately preceding cur, including prev (GB12/GB13);
//   - pictoState is the GB11 chain state of the text ending right
//     before cur.
//
// includeExtending gates GB9 and GB9a only: when false, Extend, ZWJ, and
// SpacingMark characters start a cluster of their own instead of merging
// with their base. Classification is unaffected.
//
// Rules are evaluated in UAX #29 priority order; the first match wins.
//
// Unicode version 14.0.0.
func breakBetween(prev, cur, riRun, pictoState int, includeExtending bool) bool {
	switch {
	// GB3: CR × LF.
	case prev == prCR && cur == prLF:
		return false

	// GB4: (Control | CR | LF) ÷.
	case prev == prControl || prev == prCR || prev == prLF:
		return true

	// GB5: ÷ (Control | CR | LF).
	case cur == prControl || cur == prCR || cur == prLF:
		return true

	// GB9: × (Extend | ZWJ), suppressed when extending characters are
	// requested as separate clusters.
	case cur == prExtend || cur == prZWJ:
		return !includeExtending

	// GB9a: × SpacingMark, same gate as GB9.
	case cur == prSpacingMark:
		return !includeExtending

	// GB9b: Prepend ×.
	case prev == prPrepend:
		return false

	// GB6: L × (L | V | LV | LVT).
	case prev == prL && (cur == prL || cur == prV || cur == prLV || cur == prLVT):
		return false

	// GB7: (LV | V) × (V | T).
	case (prev == prLV || prev == prV) && (cur == prV || cur == prT):
		return false

	// GB8: (LVT | T) × T.
	case (prev == prLVT || prev == prT) && cur == prT:
		return false

	// GB12/GB13: an RI pair forms a flag only when prev sits at an even
	// position in its run of regional indicators, i.e. when the run
	// ending at cur has odd length.
	case prev == prRegionalIndicator && cur == prRegionalIndicator:
		return riRun%2 == 0

	// GB11: \p{Extended_Pictographic} Extend* ZWJ × \p{Extended_Pictographic}.
	case pictoState == pictoZWJ && cur == prExtendedPictographic:
		return false

	// GB999: Any ÷ Any.
	default:
		return true
	}
}

// nextPictoState advances the GB11 chain state after consuming a code
// point with the given property.
func nextPictoState(state, prop int) int {
	switch prop {
	case prExtendedPictographic:
		return pictoEmoji
	case prExtend:
		if state == pictoEmoji {
			return pictoEmoji
		}
		return pictoNone
	case prZWJ:
		if state == pictoEmoji {
			return pictoZWJ
		}
		return pictoNone
	default:
		return pictoNone
	}
}
