package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/query"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	addOutputFlags(searchCmd)
	addPageFlag(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies and shows",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if !viper.GetBool(key.SearchShowQuerySuggestions) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		return query.SuggestMany(strings.Join(append(args, toComplete), " ")), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.TrimSpace(strings.Join(args, " "))
		if !query.Valid(q) {
			handleErr(fmt.Errorf("query %q is shorter than %d characters", q, viper.GetInt(key.SearchMinLength)))
		}

		a, err := newApp()
		handleErr(err)

		resp, err := a.client.Search(cmd.Context(), q, page(cmd))
		handleErr(err)

		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}

		handleErr(renderTitles(cmd, resp, lo.Ternary(lo.Must(cmd.Flags().GetBool("json")), "", q)))
	},
}
