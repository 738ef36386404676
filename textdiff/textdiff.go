package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lcs"
)

// Lines splits text into line elements on '\n'.  Empty text yields no
// lines, and a trailing newline terminates the last line rather than
// opening an empty one.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// prefix returns the two-character column tag for an op.
func prefix(op lcs.Op) string {
	switch op {
	case lcs.Delete:
		return "- "
	case lcs.Insert:
		return "+ "
	default:
		return "  "
	}
}

// Format writes one prefixed line per op, in script order, each terminated
// with '\n'.  The first writer error aborts the rendering and is returned.
func Format(w io.Writer, script []lcs.Diff[string]) error {
	for _, d := range script {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix(d.Op), d.Elem); err != nil {
			return fmt.Errorf("textdiff: write line: %w", err)
		}
	}

	return nil
}

// Diff is the end-to-end convenience: split a and b into lines, run the
// engine, and render the script with the given tie-break ordering.
func Diff(a, b string, ordering lcs.Ordering) string {
	script := lcs.New(Lines(a), Lines(b)).Backtrack(ordering)

	var out strings.Builder
	_ = Format(&out, script) // strings.Builder never fails

	return out.String()
}
