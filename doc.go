/*
Package clusterbreak locates boundaries between Unicode grapheme clusters,
the units users perceive as single "characters". A cluster may span several
code points: a base letter with combining marks, an emoji with a skin tone
modifier, a ZWJ sequence, a regional indicator flag pair, or a composed
Hangul syllable.

This package conforms to the default grapheme cluster boundary rules of
Unicode Standard Annex #29 (https://unicode.org/reports/tr29/), Unicode
version 14.0.0.

# Overview

The central operation answers one question: given a byte position inside a
string, where is the nearest cluster boundary in a requested direction?

	s := "🇩🇪🇫🇷"
	end := clusterbreak.FindClusterBreakInString(s, 0, true, true)
	fmt.Println(s[:end]) // 🇩🇪

Unlike a streaming segmenter, [FindClusterBreak] and
[FindClusterBreakInString] start at an arbitrary offset and touch only the
code points near it, which suits cursor movement, selection extension, and
deletion in editors and terminal applications:

  - forward selects the scan direction;
  - includeExtending selects whether combining marks, emoji modifiers, and
    zero width joiners merge into the preceding cluster (rules GB9/GB9a).
    Passing false makes each extending character a cluster of its own,
    which some editors use for fine-grained deletion.

For iterating whole strings there is the [Graphemes] iterator and
[ClusterCount]:

	clusterbreak.ClusterCount("👨‍👩‍👧‍👦") // 1, despite 7 code points

[IsExtendingChar] exposes the underlying classification of extending
characters.

# Guarantees

All functions are total. They never panic and never return an error: out of
range positions are clamped, positions inside a multi-byte rune are moved
to the rune start, and malformed UTF-8 is treated as a sequence of
unclassified one-byte code points. Results always fall on rune starts.

The classification tables are immutable package data; every call is
reentrant and safe for unlimited concurrent use without locking.

# Scope

This package performs boundary detection only. Normalization, collation,
display width, word, sentence, and line segmentation, and locale-specific
tailoring are out of scope.
*/
package clusterbreak
