package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
)

func init() {
	rootCmd.AddCommand(homeCmd)
	homeCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	homeCmd.Flags().IntP("limit", "n", 5, "Titles shown per section")
}

type sectionOutput struct {
	Name   string           `json:"name"`
	Titles []*catalog.Title `json:"titles"`
	Error  string           `json:"error,omitempty"`
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the home page sections",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		handleErr(err)

		var (
			limit   = lo.Must(cmd.Flags().GetInt("limit"))
			results = catalog.LoadSections(cmd.Context(), catalog.HomeSections(), a.client.Do)
			outputs = make([]sectionOutput, 0, len(results))
		)

		for _, r := range results {
			out := sectionOutput{Name: r.Section.Name, Titles: []*catalog.Title{}}
			if r.Err != nil {
				out.Error = r.Err.Error()
				outputs = append(outputs, out)
				continue
			}

			titles, err := catalog.Titles(r.Response)
			if err != nil {
				out.Error = err.Error()
			} else {
				if limit > 0 && len(titles) > limit {
					titles = titles[:limit]
				}
				out.Titles = titles
			}
			outputs = append(outputs, out)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd.OutOrStdout(), outputs))
			return
		}

		for i, out := range outputs {
			cmd.Println(style.Title(out.Name))
			if out.Error != "" {
				cmd.Println(fmt.Sprintf("%s %s", icon.Get(icon.Fail), out.Error))
			} else {
				printTitles(cmd.OutOrStdout(), out.Titles, "")
			}

			if i < len(outputs)-1 {
				cmd.Println()
			}
		}
	},
}
