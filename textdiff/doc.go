// Package textdiff renders line-level diffs of text in the conventional
// two-column format:
//
//	  unchanged line
//	- line only in the source
//	+ line only in the destination
//
// It is a thin convenience layer over the lcs package: Lines splits text
// into line elements, the engine produces the edit script, and Format /
// Diff turn the script back into text.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lcs"
//	  "github.com/katalvlaran/lcs/textdiff"
//	)
//
//	fmt.Print(textdiff.Diff(oldText, newText, lcs.DeleteFirst))
//
// A trailing newline in the input does not produce an extra empty line
// element, so diffing two well-formed text files never reports a phantom
// change on the last line.
package textdiff
