// Package cmd implements the command-line interface for filesan.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/filesan-cli/filesan/collision"
	"github.com/filesan-cli/filesan/color"
	"github.com/filesan-cli/filesan/icon"
	"github.com/filesan-cli/filesan/key"
	"github.com/filesan-cli/filesan/organizer"
	"github.com/filesan-cli/filesan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(organizeCmd)

	organizeCmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories (ignored folders are pruned)")
	organizeCmd.Flags().BoolP("dry-run", "d", false, "Preview every decision without moving any file")
	organizeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	organizeCmd.Flags().StringP("strategy", "s", "", "Duplicate strategy to apply (rename|skip|overwrite)")
	lo.Must0(organizeCmd.RegisterFlagCompletionFunc("strategy", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(collision.Strategies(), func(s collision.Strategy, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.OrganizeDuplicateStrategy, organizeCmd.Flags().Lookup("strategy")))
}

// organizeCmd classifies and relocates the files of a target directory.
var organizeCmd = &cobra.Command{
	Use:   "organize [path]",
	Short: "Classify files by extension and move them into category folders",
	Long: `Scan the target directory, resolve every file's category from its extension,
and relocate it into the matching category subfolder. A successful run commits
an undo journal inside the target directory; "filesan undo" replays it in
reverse. Only the most recent run is undoable.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  filesan organize ~/Downloads -r --dry-run",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			recursive = lo.Must(cmd.Flags().GetBool("recursive"))
			dryRun    = lo.Must(cmd.Flags().GetBool("dry-run"))
			yes       = lo.Must(cmd.Flags().GetBool("yes"))
		)

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		org, err := organizer.New(root)
		handleErr(err)

		if dryRun {
			fmt.Printf("%s %s\n", icon.Get(icon.Preview), style.Fg(color.Yellow)("Dry run - no files will be moved"))
		} else if !yes {
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Organize files under %s?", org.Root()),
				Default: true,
			}
			var proceed bool
			handleErr(survey.AskOne(&confirm, &proceed))
			if !proceed {
				return
			}
		}

		// Dry runs mutate nothing, so there is nothing to lock.
		unlock := func() {}
		if !dryRun {
			unlock = lockRoot(org.Root())
		}

		stats, err := org.Organize(recursive, dryRun)
		unlock()
		handleErr(err)

		printSummary(stats)

		if stats.Errors > 0 {
			os.Exit(1)
		}
	},
}
