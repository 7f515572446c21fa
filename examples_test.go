package clusterbreak_test

import (
	"fmt"

	"github.com/scalecode-solutions/clusterbreak"
)

func ExampleFindClusterBreakInString() {
	str := "🇩🇪🏳️‍🌈!"
	pos := 0
	for pos < len(str) {
		next := clusterbreak.FindClusterBreakInString(str, pos, true, true)
		fmt.Println(str[pos:next])
		pos = next
	}
	// Output: 🇩🇪
	//🏳️‍🌈
	//!
}

func ExampleFindClusterBreakInString_backward() {
	str := "ab" + "é" // "e" + combining acute accent
	pos := clusterbreak.FindClusterBreakInString(str, len(str), false, true)
	fmt.Println(pos, str[:pos])
	// Output: 2 ab
}

func ExampleFindClusterBreakInString_includeExtending() {
	str := "é" // "e" + combining acute accent
	fmt.Println(clusterbreak.FindClusterBreakInString(str, 0, true, true))
	fmt.Println(clusterbreak.FindClusterBreakInString(str, 0, true, false))
	// Output: 3
	//1
}

func ExampleClusterCount() {
	fmt.Println(clusterbreak.ClusterCount("👨‍👩‍👧‍👦"))
	// Output: 1
}

func ExampleIsExtendingChar() {
	fmt.Println(clusterbreak.IsExtendingChar('e'))
	fmt.Println(clusterbreak.IsExtendingChar(0x0301)) // combining acute accent
	// Output: false
	//true
}

func ExampleGraphemes() {
	g := clusterbreak.NewGraphemes("नमस्ते")
	for g.Next() {
		from, to := g.Positions()
		fmt.Println(g.Str(), from, to)
	}
	// Output: न 0 3
	//म 3 6
	//स् 6 12
	//ते 12 18
}
