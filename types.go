package lcs

// Ordering selects which alternative wins when backtracking encounters a
// genuine tie — both predecessor cells of the table hold the same value, so
// two equally optimal edit scripts exist.  The choice never changes Length,
// only which script Backtrack returns.
//
//   - DeleteFirst — on a tie, the deletion is shown before the insertion
//     in the final (forward-ordered) script.  "abc" → "acb" yields
//     [Common a, Delete b, Common c, Insert b].
//
//   - InsertFirst — on a tie, the insertion is shown before the deletion.
//     "abc" → "acb" yields [Common a, Insert c, Common b, Delete c].
type Ordering int

const (
	// DeleteFirst prefers deletions before insertions on equally long paths.
	DeleteFirst Ordering = iota

	// InsertFirst prefers insertions before deletions on equally long paths.
	InsertFirst
)

// String returns "DeleteFirst" or "InsertFirst".
func (o Ordering) String() string {
	if o == DeleteFirst {
		return "DeleteFirst"
	}

	return "InsertFirst"
}

// Op tags a single diff operation.
type Op int

const (
	// Common marks an element present in both sequences, in order.
	Common Op = iota

	// Delete marks an element present only in the source sequence.
	Delete

	// Insert marks an element present only in the destination sequence.
	Insert
)

// String returns "common", "delete" or "insert".
func (op Op) String() string {
	switch op {
	case Common:
		return "common"
	case Delete:
		return "delete"
	default:
		return "insert"
	}
}

// Diff is one step of an edit script: an Op tag plus the element it applies
// to.  Elem is a value copy of the element taken from the source sequence
// (Common, Delete) or the destination sequence (Insert); the script stays
// valid even if the caller later discards the inputs.
//
// Concatenating the Elem of every Common and Delete op, in script order,
// reproduces the source sequence exactly; Common and Insert reproduce the
// destination.
type Diff[T comparable] struct {
	Op   Op
	Elem T
}
