package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
	"github.com/trixio-cli/trixio/util"
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cmd.Flags().StringP("filter", "f", "", "Keep only titles whose name or overview contains this text")
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func titleIcon(t *catalog.Title) string {
	if t.IsMovie() {
		return icon.Get(icon.Movie)
	}
	return icon.Get(icon.TV)
}

func titleFields(t *catalog.Title) []string {
	return []string{t.DisplayName(), t.Overview}
}

// printTitles writes one line per title: icon, name, year, id and rating.
// Occurrences of mark are highlighted in the name.
func printTitles(w io.Writer, titles []*catalog.Title, mark string) {
	if len(titles) == 0 {
		_, _ = fmt.Fprintln(w, style.Faint("no titles"))
		return
	}

	for _, t := range titles {
		name := util.Highlight(t.DisplayName(), mark, style.Mark)
		line := strings.TrimSpace(fmt.Sprintf("%s %s", titleIcon(t), style.Bold(name)))

		if year := t.Year(); year != "" {
			line += " " + style.Faint("("+year+")")
		}

		line += " " + style.Fg(color.Yellow)(t.ContentID())

		if t.VoteAverage > 0 {
			line += " " + style.Fg(color.Green)(fmt.Sprintf("★ %.1f", t.VoteAverage))
		}

		_, _ = fmt.Fprintln(w, line)
	}
}

// renderTitles decodes resp and prints it the way the flags on cmd ask for.
func renderTitles(cmd *cobra.Command, resp catalog.Response, mark string) error {
	titles, err := catalog.Titles(resp)
	if err != nil {
		return err
	}

	titles = lo.Filter(titles, func(t *catalog.Title, _ int) bool {
		return !t.IsPerson()
	})
	titles = util.Filter(titles, lo.Must(cmd.Flags().GetString("filter")), titleFields)

	if lo.Must(cmd.Flags().GetBool("json")) {
		return printJSON(cmd.OutOrStdout(), titles)
	}

	printTitles(cmd.OutOrStdout(), titles, mark)
	return nil
}
