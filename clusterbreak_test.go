package clusterbreak

import "testing"

func TestFindClusterBreak(t *testing.T) {
	tests := []struct {
		name             string
		str              string
		pos              int
		forward          bool
		includeExtending bool
		want             int
	}{
		{"empty forward", "", 0, true, true, 0},
		{"empty backward", "", 0, false, true, 0},
		{"ascii forward", "ab", 0, true, true, 1},
		{"ascii backward", "ab", 2, false, true, 1},
		{"ascii backward to start", "ab", 1, false, true, 0},

		// GB3/GB4/GB5: CR LF and controls.
		{"crlf", "\r\n", 0, true, true, 2},
		{"crlf from between", "\r\n", 1, true, true, 2},
		{"crlf backward", "\r\n", 2, false, true, 0},
		{"crlf backward from between", "\r\n", 1, false, true, 0},
		{"crlf embedded", "a\r\nb", 1, true, true, 3},
		{"crlf embedded backward", "a\r\nb", 3, false, true, 1},
		{"control splits", "a\x00b", 0, true, true, 1},
		{"control own cluster", "a\x00b", 1, true, true, 2},
		{"after control", "a\x00b", 2, true, true, 3},

		// GB9: extending characters.
		{"combining mark", "é", 0, true, true, 3},
		{"combining mark excluded", "é", 0, true, false, 1},
		{"combining mark backward", "éx", 4, false, true, 3},
		{"combining backward to start", "éx", 3, false, true, 0},
		{"combining backward excluded", "éx", 3, false, false, 1},
		{"emoji modifier", "💪🏽", 0, true, true, 8},
		{"emoji modifier backward", "💪🏽", 8, false, true, 0},
		{"modifier midpoint", "💪🏽", 4, true, true, 8},

		// GB9a: spacing marks.
		{"spacing mark", "कः", 0, true, true, 6},
		{"spacing mark excluded", "कः", 0, true, false, 3},
		{"thai am", "น้ำ", 0, true, true, 9},

		// GB9b: prepend.
		{"prepend", "؀١", 0, true, true, 4},
		{"prepend not gated", "؀١", 0, true, false, 4},

		// GB6/GB7/GB8: Hangul.
		{"jamo lvt", "각", 0, true, true, 9},
		{"syllable pair", "가각", 0, true, true, 3},
		{"syllable plus jamo t", "각", 0, true, true, 6},

		// GB11: emoji ZWJ sequences.
		{"zwj pair", "👨‍🎤", 0, true, true, 11},
		{"zwj pair backward", "👨‍🎤", 11, false, true, 0},
		{"zwj family", "👨‍👩‍👧‍👦", 0, true, true, 25},
		{"zwj family backward", "👨‍👩‍👧‍👦", 25, false, true, 0},
		{"rainbow flag", "🏳️‍🌈", 0, true, true, 14},
		{"zwj without pictographic base", "a‍🎤", 0, true, true, 4},
		{"zwj excluded splits", "👨‍🎤", 0, true, false, 4},
		{"zwj excluded keeps gb11", "👨‍🎤", 4, true, false, 11},

		// GB12/GB13: regional indicator pairs.
		{"first flag", "🇩🇪🇫🇷", 0, true, true, 8},
		{"second flag", "🇩🇪🇫🇷", 8, true, true, 16},
		{"flag midpoint", "🇩🇪🇫🇷", 4, true, true, 8},
		{"flags backward", "🇩🇪🇫🇷", 16, false, true, 8},
		{"flags backward again", "🇩🇪🇫🇷", 8, false, true, 0},

		// Degraded input: malformed UTF-8 and out-of-range positions.
		{"invalid byte", "\xff\xfea", 0, true, true, 1},
		{"invalid byte again", "\xff\xfea", 1, true, true, 2},
		{"invalid byte backward", "\xff\xfea", 3, false, true, 2},
		{"mid-rune forward", "😀x", 2, true, true, 4},
		{"mid-rune backward", "😀x", 2, false, true, 0},
		{"pos below range", "ab", -1, true, true, 1},
		{"pos above range forward", "ab", 5, true, true, 2},
		{"pos above range backward", "ab", 99, false, true, 1},
		{"pos below range backward", "ab", -3, false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindClusterBreakInString(tt.str, tt.pos, tt.forward, tt.includeExtending); got != tt.want {
				t.Errorf("FindClusterBreakInString(%q, %d, %v, %v) = %d, want %d",
					tt.str, tt.pos, tt.forward, tt.includeExtending, got, tt.want)
			}
			if got := FindClusterBreak([]byte(tt.str), tt.pos, tt.forward, tt.includeExtending); got != tt.want {
				t.Errorf("FindClusterBreak(%q, %d, %v, %v) = %d, want %d",
					tt.str, tt.pos, tt.forward, tt.includeExtending, got, tt.want)
			}
		})
	}
}

func TestClusterCount(t *testing.T) {
	tests := []struct {
		str  string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"café", 4},
		{"é", 1},
		{"\r\n", 1},
		{"a\r\nb", 3},
		{"안녕", 2},
		{"각", 1},
		{"कः", 1},
		{"น้ำ", 1},
		{"🇩🇪🇫🇷", 2},
		{"👨‍👩‍👧‍👦", 1},
		{"🏳️‍🌈", 1},
		{"💪🏽!", 2},
	}

	for _, tt := range tests {
		if got := ClusterCount(tt.str); got != tt.want {
			t.Errorf("ClusterCount(%q) = %d, want %d", tt.str, got, tt.want)
		}
	}
}

func TestGraphemes(t *testing.T) {
	g := NewGraphemes("a🇩🇪b")

	if got := g.Str(); got != "" {
		t.Errorf("Str() before Next() = %q, want empty", got)
	}

	type cluster struct {
		str      string
		from, to int
	}
	want := []cluster{
		{"a", 0, 1},
		{"🇩🇪", 1, 9},
		{"b", 9, 10},
	}
	var got []cluster
	for g.Next() {
		from, to := g.Positions()
		got = append(got, cluster{g.Str(), from, to})
	}
	if len(got) != len(want) {
		t.Fatalf("got %d clusters, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cluster %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if g.Next() {
		t.Error("Next() after exhaustion = true, want false")
	}

	g.Reset()
	if !g.Next() {
		t.Fatal("Next() after Reset() = false, want true")
	}
	if got := g.Str(); got != "a" {
		t.Errorf("first cluster after Reset() = %q, want %q", got, "a")
	}
	if runes := g.Runes(); len(runes) != 1 || runes[0] != 'a' {
		t.Errorf("Runes() = %v, want [a]", runes)
	}
	if b := g.Bytes(); string(b) != "a" {
		t.Errorf("Bytes() = %q, want %q", b, "a")
	}
}
