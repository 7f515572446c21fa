package clusterbreak_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/scalecode-solutions/clusterbreak"
)

// corpus mixes scripts and boundary rules: controls, combining marks,
// Hangul (precomposed and jamo), Indic spacing marks, prepend characters,
// regional indicator flags, and emoji ZWJ sequences.
var corpus = []string{
	"",
	"Hello, world!",
	"café naïve",
	"éêëx",
	"a\r\nb\nc\rd",
	"안녕하세요",
	"각가",
	"각ᆨ",
	"नमस्ते",
	"कः",
	"น้ำใส",
	"؀١٢",
	"🇩🇪🇫🇷🇺🇸",
	"🇩🇪x🇫🇷",
	"💪🏽👍🏻",
	"👨‍👩‍👧‍👦",
	"🏳️‍🌈!",
	"a‍🎤",
	"👨‍🎤🎸",
	"mixed 🇯🇵 text 한 with かな",
}

// boundaries returns all cluster boundaries of str in increasing order,
// including 0 and len(str) for non-empty input.
func boundaries(str string, includeExtending bool) []int {
	if str == "" {
		return []int{0}
	}
	bounds := []int{0}
	for pos := 0; pos < len(str); {
		pos = clusterbreak.FindClusterBreakInString(str, pos, true, includeExtending)
		bounds = append(bounds, pos)
	}
	return bounds
}

func TestBoundariesMatchUniseg(t *testing.T) {
	for _, str := range corpus {
		var ours, theirs []string

		g := clusterbreak.NewGraphemes(str)
		for g.Next() {
			ours = append(ours, g.Str())
		}
		u := uniseg.NewGraphemes(str)
		for u.Next() {
			theirs = append(theirs, u.Str())
		}

		require.Equal(t, theirs, ours, "segmentation of %q", str)
		require.Equal(t, uniseg.GraphemeClusterCount(str), clusterbreak.ClusterCount(str), "cluster count of %q", str)
	}
}

func TestMonotonicCoverage(t *testing.T) {
	for _, str := range corpus {
		bounds := boundaries(str, true)
		require.Equal(t, 0, bounds[0], "input %q", str)
		require.Equal(t, len(str), bounds[len(bounds)-1], "input %q", str)
		for i := 1; i < len(bounds); i++ {
			require.Greater(t, bounds[i], bounds[i-1], "input %q", str)
			if bounds[i] < len(str) {
				require.True(t, utf8.RuneStart(str[bounds[i]]), "input %q: boundary %d splits a rune", str, bounds[i])
			}
		}
	}
}

func TestForwardBackwardRoundTrip(t *testing.T) {
	for _, str := range corpus {
		bounds := boundaries(str, true)
		for i := 1; i < len(bounds); i++ {
			p, q := bounds[i-1], bounds[i]
			require.Equal(t, p, clusterbreak.FindClusterBreakInString(str, q, false, true),
				"input %q: backward from boundary %d", str, q)
		}
		// Scanning forward from a boundary always makes progress.
		for _, b := range bounds {
			if b == len(str) {
				continue
			}
			require.Greater(t, clusterbreak.FindClusterBreakInString(str, b, true, true), b, "input %q", str)
		}
	}
}

func TestCRLFNeverSplit(t *testing.T) {
	for _, str := range corpus {
		if !strings.Contains(str, "\r\n") {
			continue
		}
		for i := 0; i+1 < len(str); i++ {
			if str[i] != '\r' || str[i+1] != '\n' {
				continue
			}
			lf := i + 1
			for pos := 0; pos <= len(str); pos++ {
				require.NotEqual(t, lf, clusterbreak.FindClusterBreakInString(str, pos, true, true), "input %q, pos %d", str, pos)
				require.NotEqual(t, lf, clusterbreak.FindClusterBreakInString(str, pos, false, true), "input %q, pos %d", str, pos)
			}
		}
	}
}

// Suppressing GB9/GB9a only ever adds boundaries, so the default boundary
// set must be a subset of the includeExtending=false one.
func TestExtendingBoundariesSubset(t *testing.T) {
	for _, str := range corpus {
		merged := boundaries(str, true)
		split := boundaries(str, false)
		require.Subset(t, split, merged, "input %q", str)
	}
}

// A precomposed character and its canonical decomposition form one cluster
// either way.
func TestDecomposedEquivalence(t *testing.T) {
	for _, str := range []string{"é", "ñ", "ü", "각", "한"} {
		nfd := norm.NFD.String(str)
		require.NotEqual(t, str, nfd)
		require.Equal(t, 1, clusterbreak.ClusterCount(nfd), "decomposition of %q", str)
		require.Equal(t, len(nfd), clusterbreak.FindClusterBreakInString(nfd, 0, true, true), "decomposition of %q", str)
	}
}

// The scanner must be total over arbitrary byte sequences: no panics, in
// range results, progress in both directions, and agreement between the
// byte slice and string variants.
func TestArbitraryBytesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte{
		'a', 'b', '\r', '\n', 0x00,
		0x80, 0x81, 0xbf, // stray continuation bytes
		0xc3, 0xe0, 0xf0, // leading bytes, often truncated
		0xff, 0xfe, // never valid in UTF-8
	}
	pieces := []string{"é", "🇩🇪", "👨‍🎤", "각"}

	for i := 0; i < 300; i++ {
		var sb strings.Builder
		for n := rng.Intn(12); n > 0; n-- {
			if rng.Intn(4) == 0 {
				sb.WriteString(pieces[rng.Intn(len(pieces))])
			} else {
				sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
			}
		}
		str := sb.String()
		b := []byte(str)

		for pos := 0; pos <= len(str); pos++ {
			for _, includeExtending := range []bool{true, false} {
				next := clusterbreak.FindClusterBreakInString(str, pos, true, includeExtending)
				require.Equal(t, next, clusterbreak.FindClusterBreak(b, pos, true, includeExtending), "input %q, pos %d", str, pos)
				require.LessOrEqual(t, next, len(str), "input %q, pos %d", str, pos)
				if pos < len(str) {
					require.Greater(t, next, pos, "input %q, pos %d", str, pos)
				} else {
					require.Equal(t, len(str), next, "input %q, pos %d", str, pos)
				}

				prev := clusterbreak.FindClusterBreakInString(str, pos, false, includeExtending)
				require.Equal(t, prev, clusterbreak.FindClusterBreak(b, pos, false, includeExtending), "input %q, pos %d", str, pos)
				require.GreaterOrEqual(t, prev, 0, "input %q, pos %d", str, pos)
				if pos > 0 {
					require.Less(t, prev, pos, "input %q, pos %d", str, pos)
				} else {
					require.Equal(t, 0, prev, "input %q, pos %d", str, pos)
				}
			}
		}
	}
}
