package cmd

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/history"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/open"
	"github.com/trixio-cli/trixio/playback"
	"github.com/trixio-cli/trixio/style"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("tv", "t", false, "The id is a show")
	playCmd.Flags().IntP("season", "s", 0, "Season number")
	playCmd.Flags().IntP("episode", "e", 0, "Episode number")
	playCmd.Flags().BoolP("print", "P", false, "Print the stream address instead of opening it")
	playCmd.Flags().BoolP("json", "j", false, "Print the stream descriptor as JSON instead of opening it")
	playCmd.Flags().BoolP("last", "l", false, "Resume the most recent history entry")
	playCmd.MarkFlagsMutuallyExclusive("print", "json")
	playCmd.MarkFlagsRequiredTogether("season", "episode")
}

var errNothingToResume = errors.New("watch history is empty")

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Open a movie or episode in the player",
	Example: "  trixio play 603\n" +
		"  trixio play 1399 --tv -s 1 -e 2\n" +
		"  trixio play --last --print",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		handleErr(err)

		target, name, err := resolveTarget(cmd, args, a)
		handleErr(err)

		d := a.redirector.Descriptor(target)

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(printJSON(cmd.OutOrStdout(), d))
			return
		case lo.Must(cmd.Flags().GetBool("print")):
			cmd.Println(d.RelayedURL)
			return
		}

		CheckDependencies()

		fmt.Printf("%s %s %s\n", icon.Get(icon.Play), style.Bold(name), style.Faint(d.RelayedURL))
		handleErr(open.Run(d.RelayedURL, viper.GetString(key.PlaybackPlayer)))

		if viper.GetBool(key.HistorySaveOnPlay) {
			if err := history.Save(name, target, d); err != nil {
				log.Warn(err)
				fmt.Printf("%s history not saved: %s\n", style.Fg(color.Yellow)(icon.Get(icon.Fail)), err)
			}
		}
	},
}

// resolveTarget builds the playback target from flags or the history and
// looks up a display name for it.
func resolveTarget(cmd *cobra.Command, args []string, a *app) (playback.Target, string, error) {
	if lo.Must(cmd.Flags().GetBool("last")) {
		entries, err := history.List()
		if err != nil {
			return playback.Target{}, "", err
		}
		if len(entries) == 0 {
			return playback.Target{}, "", errNothingToResume
		}
		return entries[0].Target(), entries[0].Title, nil
	}

	if len(args) == 0 {
		return playback.Target{}, "", errors.New("an id or --last is required")
	}

	id, err := parseID(args[0])
	if err != nil {
		return playback.Target{}, "", err
	}

	var (
		season  = lo.Must(cmd.Flags().GetInt("season"))
		episode = lo.Must(cmd.Flags().GetInt("episode"))
	)

	switch {
	case !lo.Must(cmd.Flags().GetBool("tv")):
		return playback.Movie(id), titleName(a.client.MovieDetails(cmd.Context(), id)).OrElse(id), nil
	case season > 0 && episode > 0:
		return playback.Episode(id, season, episode), titleName(a.client.TVDetails(cmd.Context(), id)).OrElse(id), nil
	default:
		return playback.Show(id), titleName(a.client.TVDetails(cmd.Context(), id)).OrElse(id), nil
	}
}

// titleName is empty when the catalog cannot be reached or names nothing.
func titleName(resp catalog.Response, err error) mo.Option[string] {
	if err != nil {
		log.Warn(err)
		return mo.None[string]()
	}

	title, err := catalog.DecodeTitle(resp)
	if err != nil || title.DisplayName() == "" {
		return mo.None[string]()
	}

	return mo.Some(title.DisplayName())
}
