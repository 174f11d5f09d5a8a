package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/history"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
	"github.com/trixio-cli/trixio/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	historyCmd.Flags().Bool("clear", false, "Forget every entry")
	historyCmd.Flags().StringP("filter", "f", "", "Keep only entries whose title contains this text")
	historyCmd.MarkFlagsMutuallyExclusive("json", "clear")

	historyCmd.AddCommand(historyRemoveCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show what was played, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		entries, err := history.List()
		handleErr(err)

		entries = util.Filter(entries, lo.Must(cmd.Flags().GetString("filter")), func(e *history.Entry) []string {
			return []string{e.Title}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd.OutOrStdout(), entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		for _, e := range entries {
			kind := icon.Get(icon.TV)
			if e.IsMovie {
				kind = icon.Get(icon.Movie)
			}

			cmd.Printf(
				"%s %s %s %s\n",
				kind,
				style.Bold(e.String()),
				style.Fg(color.Yellow)(e.ContentID),
				style.Faint(e.WatchedAt.Format("2006-01-02 15:04")),
			)
		}
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Forget the entries of the given title ids",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.List()
		handleErr(err)

		var removed int
		for _, e := range entries {
			if !lo.Contains(args, e.ContentID) {
				continue
			}

			handleErr(history.Remove(e))
			removed++
		}

		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Quantify(removed, "entry", "entries"))
	},
}
