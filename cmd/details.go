package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/style"
	"github.com/trixio-cli/trixio/util"
)

// parseID rejects ids that are not positive integers before any request is made.
func parseID(raw string) (string, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return "", fmt.Errorf("invalid title id: %q", raw)
	}
	return strconv.Itoa(id), nil
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().BoolP("tv", "t", false, "The id is a show")
	detailsCmd.Flags().IntP("season", "s", 0, "List the episodes of this season")
	detailsCmd.Flags().IntP("episode", "e", 0, "Show one episode of --season")
	detailsCmd.Flags().IntP("cast", "c", 10, "Cast members shown for movies")
	detailsCmd.Flags().BoolP("json", "j", false, "Output the raw catalog payload as JSON")
}

// wrapWidth is the terminal width capped for readability.
func wrapWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 80
	}
	return util.Min(width, 100)
}

func paragraph(text string) string {
	return indent.String(wordwrap.String(text, wrapWidth()-2), 2)
}

var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show a movie or show with its cast or seasons",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		handleErr(err)

		a, err := newApp()
		handleErr(err)

		var (
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
			isTV    = lo.Must(cmd.Flags().GetBool("tv"))
			season  = lo.Must(cmd.Flags().GetInt("season"))
			episode = lo.Must(cmd.Flags().GetInt("episode"))
		)

		if episode > 0 && season <= 0 {
			handleErr(errors.New("--episode needs --season"))
		}

		var sections []catalog.Section
		switch {
		case !isTV:
			sections = []catalog.Section{
				{Name: "details", Request: catalog.MovieDetailsRequest(id)},
				{Name: "credits", Request: catalog.MovieCreditsRequest(id)},
			}
		case season > 0:
			sections = []catalog.Section{
				{Name: "details", Request: catalog.TVDetailsRequest(id)},
				{Name: "season", Request: catalog.TVSeasonRequest(id, season)},
			}
		default:
			sections = []catalog.Section{
				{Name: "details", Request: catalog.TVDetailsRequest(id)},
			}
		}

		results := catalog.LoadSections(cmd.Context(), sections, a.client.Do)
		for _, r := range results {
			handleErr(r.Err)
		}

		if asJson {
			handleErr(printJSON(cmd.OutOrStdout(), lo.Associate(results, func(r catalog.SectionResult) (string, catalog.Response) {
				return r.Section.Name, r.Response
			})))
			return
		}

		title, err := catalog.DecodeTitle(results[0].Response)
		handleErr(err)
		if isTV {
			title.MediaType = "tv"
		} else {
			title.MediaType = "movie"
		}

		printTitles(cmd.OutOrStdout(), []*catalog.Title{title}, "")
		cmd.Println(style.Faint(a.client.ImageURL(title.PosterPath, "")))
		if title.Overview != "" {
			cmd.Println()
			cmd.Println(paragraph(title.Overview))
		}
		cmd.Println()

		switch {
		case !isTV:
			var credits catalog.Credits
			handleErr(catalog.Decode(map[string]any(results[1].Response), &credits))
			printCast(cmd, credits, lo.Must(cmd.Flags().GetInt("cast")))
		case season > 0 && episode > 0:
			resp, err := a.client.TVEpisode(cmd.Context(), id, season, episode)
			handleErr(err)

			var e catalog.Episode
			handleErr(catalog.Decode(map[string]any(resp), &e))
			printEpisode(cmd, season, e)
		case season > 0:
			var s catalog.Season
			handleErr(catalog.Decode(map[string]any(results[1].Response), &s))
			printEpisodes(cmd, s)
		default:
			printSeasons(cmd, title)
		}
	},
}

func printCast(cmd *cobra.Command, credits catalog.Credits, limit int) {
	cmd.Println(style.Title("Cast"))
	cast := credits.Cast
	if limit > 0 && len(cast) > limit {
		cast = cast[:limit]
	}

	if len(cast) == 0 {
		cmd.Println(style.Faint("no cast listed"))
		return
	}

	for _, m := range cast {
		if m.Character == "" {
			cmd.Println(style.Bold(m.Name))
			continue
		}
		cmd.Printf("%s %s\n", style.Bold(m.Name), style.Faint("as "+m.Character))
	}
}

func printSeasons(cmd *cobra.Command, title *catalog.Title) {
	cmd.Println(style.Title("Seasons"))
	if len(title.Seasons) == 0 {
		cmd.Println(style.Faint("no seasons listed"))
		return
	}

	for _, s := range title.Seasons {
		cmd.Printf(
			"%s %s %s\n",
			style.Fg(color.Yellow)(fmt.Sprintf("%2d", s.SeasonNumber)),
			style.Bold(s.Name),
			style.Faint(util.Quantify(s.EpisodeCount, "episode", "episodes")),
		)
	}
}

func printEpisodes(cmd *cobra.Command, season catalog.Season) {
	cmd.Println(style.Title(lo.Ternary(season.Name != "", season.Name, fmt.Sprintf("Season %d", season.SeasonNumber))))
	if len(season.Episodes) == 0 {
		cmd.Println(style.Faint("no episodes listed"))
		return
	}

	for _, e := range season.Episodes {
		line := fmt.Sprintf("%s %s", style.Fg(color.Yellow)(fmt.Sprintf("%2d", e.EpisodeNumber)), style.Bold(e.Name))
		if e.AirDate != "" {
			line += " " + style.Faint(e.AirDate)
		}
		cmd.Println(line)
	}
}

func printEpisode(cmd *cobra.Command, season int, e catalog.Episode) {
	cmd.Println(style.Title(fmt.Sprintf("S%02dE%02d %s", season, e.EpisodeNumber, e.Name)))
	if e.AirDate != "" {
		cmd.Println(style.Faint(e.AirDate))
	}
	if e.Overview != "" {
		cmd.Println(paragraph(e.Overview))
	}
}
