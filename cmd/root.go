// Package cmd implements the trixio command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/style"
	"github.com/trixio-cli/trixio/tui"
	"github.com/trixio-cli/trixio/util"
	"github.com/trixio-cli/trixio/version"
	"github.com/trixio-cli/trixio/where"
)

// annotationPublic marks commands usable without unlocking.
const annotationPublic = "public"

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("language", "L", "", "Catalog language, e.g. en-US")
	lo.Must0(viper.BindPFlag(key.CatalogLanguage, rootCmd.PersistentFlags().Lookup("language")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record played titles in the watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().BoolP("continue", "c", false, "Start from the watch history")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Trixio,
	Short: "Browse the movie and TV catalog and stream through CORS relays",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.Primary).Render("    - Browse the movie and TV catalog and stream through CORS relays"),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isPublic(cmd) {
			return nil
		}

		if !newGate().Unlocked() {
			return errLocked
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		a, err := newApp()
		handleErr(err)

		CheckDependencies()

		handleErr(tui.Run(cmd.Context(), &tui.Options{
			Redirector:      a.redirector,
			Fetch:           a.client.Do,
			Player:          viper.GetString(key.PlaybackPlayer),
			SaveHistory:     viper.GetBool(key.HistorySaveOnPlay),
			OnRelaySelected: persistRelay,
			Continue:        lo.Must(cmd.Flags().GetBool("continue")),
		}))
	},
}

var errLocked = errors.New("locked: run `" + constant.Trixio + " login` first")

// isPublic reports whether cmd or any parent is marked public.
func isPublic(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationPublic]; ok {
			return true
		}
	}

	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}

	return false
}

func public() map[string]string {
	return map[string]string{annotationPublic: "true"}
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
