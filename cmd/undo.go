// Package cmd implements the command-line interface for filesan.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/filesan-cli/filesan/color"
	"github.com/filesan-cli/filesan/icon"
	"github.com/filesan-cli/filesan/organizer"
	"github.com/filesan-cli/filesan/style"
	"github.com/filesan-cli/filesan/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(undoCmd)
}

// undoCmd reverses the most recent organization run for a directory.
var undoCmd = &cobra.Command{
	Use:   "undo [path]",
	Short: "Replay the most recent run in reverse, restoring original paths",
	Long: `Load the undo journal committed by the last "filesan organize" run over the
target directory and move every organized file back to its original path.
The journal is deleted afterwards; it can never be replayed twice.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  filesan undo ~/Downloads",
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		abs := lo.Must(filepath.Abs(root))

		unlock := lockRoot(abs)
		stats, err := organizer.Undo(abs)
		unlock()
		handleErr(err)

		fmt.Printf(
			"%s %s\n",
			icon.Get(icon.Undo),
			style.Fg(color.Green)(fmt.Sprintf("Restored %s", util.Quantify(stats.Organized, "file", "files"))),
		)
		printSummary(stats)

		if stats.Errors > 0 {
			os.Exit(1)
		}
	},
}
