package clusterbreak

// Graphemes iterates over the grapheme clusters of a string in forward
// order. Call [Graphemes.Next] to advance to the first (and each
// subsequent) cluster:
//
//	g := clusterbreak.NewGraphemes("🇩🇪🇫🇷")
//	for g.Next() {
//	    fmt.Println(g.Str())
//	}
//
// The zero value is an empty iterator. Iterators are cheap to create; no
// part of the input is copied or pre-scanned.
type Graphemes struct {
	str        string
	start, end int
}

// NewGraphemes returns an iterator over the grapheme clusters of str.
func NewGraphemes(str string) *Graphemes {
	return &Graphemes{str: str}
}

// Next advances the iterator to the next cluster. It returns false when
// the input is exhausted.
func (g *Graphemes) Next() bool {
	if g.end >= len(g.str) {
		return false
	}
	g.start = g.end
	g.end = nextClusterBreakInString(g.str, g.end, true)
	return true
}

// Str returns the current cluster as a substring of the original input.
// It returns the empty string before the first call to [Graphemes.Next]
// and after the input is exhausted.
func (g *Graphemes) Str() string {
	return g.str[g.start:g.end]
}

// Bytes returns the current cluster as a byte slice.
func (g *Graphemes) Bytes() []byte {
	return []byte(g.str[g.start:g.end])
}

// Runes returns the code points of the current cluster.
func (g *Graphemes) Runes() []rune {
	if g.start == g.end {
		return nil
	}
	return []rune(g.str[g.start:g.end])
}

// Positions returns the byte positions of the current cluster: the first
// return value is the position of its first byte, the second the position
// immediately after its last byte. Both are 0 before the first call to
// [Graphemes.Next].
func (g *Graphemes) Positions() (int, int) {
	return g.start, g.end
}

// Reset rewinds the iterator to the beginning of the string.
func (g *Graphemes) Reset() {
	g.start, g.end = 0, 0
}

// ClusterCount returns the number of grapheme clusters in the given
// string, that is, the number of user-perceived characters.
func ClusterCount(str string) int {
	n := 0
	for pos := 0; pos < len(str); n++ {
		pos = nextClusterBreakInString(str, pos, true)
	}
	return n
}
