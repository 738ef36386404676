package lcs

// LCS — Longest Common Subsequence engine.
//
// Description:
//
//	LCS compares two sequences by building the classic dynamic-programming
//	table once, eagerly, at construction.  Length and Backtrack are then
//	pure queries over that immutable table and may be called repeatedly,
//	in any order, including from multiple goroutines.
//
// Algorithm Outline:
//  1. Let m = len(source), n = len(dest).  Allocate an (n+1)×(m+1) table
//     with row 0 and column 0 zero (the LCS with an empty prefix is empty).
//  2. For y = 1..n, x = 1..m (row-major):
//     table[y][x] = table[y-1][x-1] + 1            if source[x-1] == dest[y-1]
//     table[y][x] = max(table[y][x-1], table[y-1][x])  otherwise
//  3. Length = table[n][m].
//  4. Backtrack walks from (x=m, y=n) to (0,0), emitting one op per step:
//     a matching element always becomes Common; otherwise the walk follows
//     the larger predecessor, and on a tie the requested Ordering decides.
//     The ops come out back-to-front and are reversed in place at the end.
//
// Complexity:
//
//	Time   = O(m·n) construction, O(1) Length, O(m+n) Backtrack
//	Memory = O(m·n)
//
// Errors: none.  Empty sequences are valid and yield Length 0 with an
// all-Insert (empty source) or all-Delete (empty dest) script.

// LCS holds the two input sequences and the precomputed table.  The
// sequences are borrowed, not copied; the caller must not mutate them for
// the lifetime of the engine.  The table is stored as one flat buffer with
// row stride m+1, avoiding n+1 separate row allocations.
type LCS[T comparable] struct {
	source []T
	dest   []T
	m, n   int
	table  []int
}

// New builds the full dynamic-programming table for source and dest and
// returns an engine ready for Length and Backtrack queries.  Never fails;
// either or both sequences may be empty.
func New[T comparable](source, dest []T) *LCS[T] {
	m, n := len(source), len(dest)
	l := &LCS[T]{
		source: source,
		dest:   dest,
		m:      m,
		n:      n,
		table:  make([]int, (n+1)*(m+1)),
	}

	stride := m + 1
	for y := 1; y <= n; y++ {
		row, prev := y*stride, (y-1)*stride
		for x := 1; x <= m; x++ {
			if source[x-1] == dest[y-1] {
				l.table[row+x] = l.table[prev+x-1] + 1
			} else if left, up := l.table[row+x-1], l.table[prev+x]; left > up {
				l.table[row+x] = left
			} else {
				l.table[row+x] = up
			}
		}
	}

	return l
}

// at returns table[y][x], the LCS length of source[0:x] and dest[0:y].
func (l *LCS[T]) at(x, y int) int {
	return l.table[y*(l.m+1)+x]
}

// Length returns the length of a longest common subsequence of the two
// full sequences.  Length of "Hi!" and "Hey!" is 2 ('H' and '!').  O(1).
func (l *LCS[T]) Length() int {
	return l.at(l.m, l.n)
}

// Backtrack reconstructs an edit script from the table, walking from the
// bottom-right corner to the origin.  Where several equally long paths
// exist, ordering decides which script is returned; the script length is
// always exactly m + n − Length().
func (l *LCS[T]) Backtrack(ordering Ordering) []Diff[T] {
	track := make([]Diff[T], 0, l.m+l.n-l.Length())

	x, y := l.m, l.n
	for x > 0 || y > 0 {
		switch {
		case x > 0 && y > 0 && l.source[x-1] == l.dest[y-1]:
			// A matching element is always part of the chosen LCS.
			x--
			y--
			track = append(track, Diff[T]{Op: Common, Elem: l.source[x]})
		case x == 0 || (y > 0 && (l.at(x, y-1) > l.at(x-1, y) ||
			(ordering == DeleteFirst && l.at(x, y-1) == l.at(x-1, y)))):
			// DeleteFirst selects the insertion here: ops are emitted
			// back-to-front, so after the final reversal the deletion
			// lands before it.
			y--
			track = append(track, Diff[T]{Op: Insert, Elem: l.dest[y]})
		default:
			x--
			track = append(track, Diff[T]{Op: Delete, Elem: l.source[x]})
		}
	}

	// reverse in place to forward (source/dest) order
	for i, j := 0, len(track)-1; i < j; i, j = i+1, j-1 {
		track[i], track[j] = track[j], track[i]
	}

	return track
}
