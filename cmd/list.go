package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/catalog"
)

func addPageFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("page", "p", 1, "Result page, starting at 1")
}

func page(cmd *cobra.Command) int {
	return lo.Must(cmd.Flags().GetInt("page"))
}

// listCall is one of the catalog client's list methods.
type listCall func(ctx context.Context, client *catalog.Client) (catalog.Response, error)

// runList calls the catalog and prints the titles.
func runList(cmd *cobra.Command, call listCall) {
	a, err := newApp()
	handleErr(err)

	resp, err := call(cmd.Context(), a.client)
	handleErr(err)
	handleErr(renderTitles(cmd, resp, ""))
}

func init() {
	for _, c := range []*cobra.Command{trendingCmd, popularCmd, nowPlayingCmd, onTheAirCmd} {
		rootCmd.AddCommand(c)
		addOutputFlags(c)
	}

	for _, c := range []*cobra.Command{popularCmd, nowPlayingCmd, onTheAirCmd} {
		addPageFlag(c)
	}

	popularCmd.Flags().BoolP("tv", "t", false, "Popular shows instead of movies")
}

var trendingCmd = &cobra.Command{
	Use:       "trending [day|week]",
	Short:     "Titles trending today or this week",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"day", "week"},
	Run: func(cmd *cobra.Command, args []string) {
		window := catalog.DefaultTimeWindow
		if len(args) == 1 {
			window = args[0]
		}

		runList(cmd, func(ctx context.Context, client *catalog.Client) (catalog.Response, error) {
			return client.Trending(ctx, window)
		})
	},
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Popular movies or shows",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, tv := page(cmd), lo.Must(cmd.Flags().GetBool("tv"))
		runList(cmd, func(ctx context.Context, client *catalog.Client) (catalog.Response, error) {
			if tv {
				return client.PopularTV(ctx, p)
			}
			return client.PopularMovies(ctx, p)
		})
	},
}

var nowPlayingCmd = &cobra.Command{
	Use:     "now-playing",
	Short:   "Movies currently in theaters",
	Aliases: []string{"cinema"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := page(cmd)
		runList(cmd, func(ctx context.Context, client *catalog.Client) (catalog.Response, error) {
			return client.NowPlaying(ctx, p)
		})
	},
}

var onTheAirCmd = &cobra.Command{
	Use:   "on-the-air",
	Short: "Shows with an episode airing in the next days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := page(cmd)
		runList(cmd, func(ctx context.Context, client *catalog.Client) (catalog.Response, error) {
			return client.OnTheAir(ctx, p)
		})
	},
}
