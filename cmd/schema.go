package cmd

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/history"
	"github.com/trixio-cli/trixio/playback"
)

// schemas maps names to the types printed with --json by other commands.
var schemas = map[string]any{
	"title":      &catalog.Title{},
	"descriptor": &playback.Descriptor{},
	"history":    &history.Entry{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:         "schema <title|descriptor|history>",
	Short:       "Print the JSON schema of a --json output",
	Args:        cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs:   lo.Keys(schemas),
	Annotations: public(),
	Run: func(cmd *cobra.Command, args []string) {
		v, ok := schemas[args[0]]
		if !ok {
			handleErr(fmt.Errorf("unknown schema %q", args[0]))
		}

		reflector := &jsonschema.Reflector{DoNotReference: true}
		handleErr(printJSON(cmd.OutOrStdout(), reflector.Reflect(v)))
	},
}
