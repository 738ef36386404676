// Package lcs computes the Longest Common Subsequence (LCS) of two
// sequences and derives an element-level diff (common / delete / insert
// operations) from it, with a deterministic tie-break policy.
//
// 🚀 What is LCS?
//
//	The longest common subsequence of two sequences is the longest run of
//	elements that appears in both, in order but not necessarily
//	contiguously.  It is the backbone of:
//	  • Line-oriented file diffing (the classic `diff` output)
//	  • Version-control change detection
//	  • Plagiarism & similarity measurement
//	  • Edit-distance style sequence comparison
//
// ✨ Key features:
//   - generic over any comparable element type (bytes, runes, strings, ...)
//   - eager O(m·n) table built once; Length and Backtrack are pure,
//     repeatable queries over the same immutable table
//   - deterministic tie-breaking: DeleteFirst or InsertFirst chooses
//     between equally optimal edit scripts
//   - round-trip guarantee: Common+Delete replays the source,
//     Common+Insert replays the destination
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lcs"
//
//	l := lcs.New([]rune("Hi!"), []rune("Hey!"))
//	l.Length() // 2 ('H' and '!')
//	for _, d := range l.Backtrack(lcs.DeleteFirst) {
//	  fmt.Println(d.Op, string(d.Elem))
//	}
//
// Performance:
//
//   - Time:   O(m·n) construction, O(1) Length, O(m+n) Backtrack
//   - Memory: O(m·n) for the table
//
// For line-level text diffing with the conventional "  " / "- " / "+ "
// rendering, see the textdiff subpackage; cmd/lcsdiff is a ready-made
// file-diff driver built on both.
package lcs
