// Command lcsdiff prints a line diff of two files, computed via the
// longest common subsequence of their lines.
//
//	lcsdiff old.txt new.txt
//	lcsdiff --insert-first old.txt new.txt
//
// Unchanged lines are prefixed with two spaces, removed lines with "- "
// and added lines with "+ ".
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lcs"
	"github.com/katalvlaran/lcs/textdiff"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var insertFirst bool

	cmd := &cobra.Command{
		Use:   "lcsdiff <source> <dest>",
		Short: "Line diff of two files via longest common subsequence",
		Long: `Compute the longest common subsequence of the lines of two files
and print the resulting diff: "  " for unchanged lines, "- " for lines
removed from <source>, "+ " for lines added in <dest>.

Where the files admit several equally short diffs, deletions are shown
before the insertions they tie with; --insert-first flips that choice.`,
		Example: `  # What changed between two revisions of a file
  lcsdiff old/config.yaml new/config.yaml

  # Prefer additions first in ambiguous regions
  lcsdiff --insert-first old.txt new.txt`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
			dest, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read dest: %w", err)
			}

			ordering := lcs.DeleteFirst
			if insertFirst {
				ordering = lcs.InsertFirst
			}

			engine := lcs.New(textdiff.Lines(string(source)), textdiff.Lines(string(dest)))

			return textdiff.Format(cmd.OutOrStdout(), engine.Backtrack(ordering))
		},
	}

	cmd.Flags().BoolVar(&insertFirst, "insert-first", false, "prefer insertions before deletions on equally short diffs")

	return cmd
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lcsdiff: %v\n", err)
		os.Exit(1)
	}
}
