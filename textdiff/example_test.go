package textdiff_test

import (
	"fmt"

	"github.com/katalvlaran/lcs"
	"github.com/katalvlaran/lcs/textdiff"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDiff
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Diff two three-line documents where one line was dropped and another
//	was appended — the everyday "what changed in this file" view.
func ExampleDiff() {
	a := "one\ntwo\nthree\n"
	b := "one\nthree\nfour\n"

	fmt.Print(textdiff.Diff(a, b, lcs.DeleteFirst))
	// Output:
	//   one
	// - two
	//   three
	// + four
}
