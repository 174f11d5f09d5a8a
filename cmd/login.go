package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/auth"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("password", "p", "", "Password, prompted for when omitted")

	rootCmd.AddCommand(logoutCmd)
}

var loginCmd = &cobra.Command{
	Use:         "login",
	Short:       "Unlock the catalog for this session",
	Annotations: public(),
	Run: func(cmd *cobra.Command, args []string) {
		gate := newGate()

		if gate.Disabled() {
			fmt.Printf("%s no password configured, nothing to unlock\n", icon.Get(icon.Success))
			return
		}

		if expiry, ok := gate.Expiry().Get(); ok {
			fmt.Printf("%s already unlocked until %s\n", icon.Get(icon.Success), expiry.Format(time.Kitchen))
			return
		}

		attempt := lo.Must(cmd.Flags().GetString("password"))
		if attempt == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "Password",
			}, &attempt, survey.WithValidator(survey.Required)))
		}

		err := gate.Unlock(attempt)
		if errors.Is(err, auth.ErrWrongPassword) {
			handleErr(fmt.Errorf("%s %w", icon.Get(icon.Lock), err))
		}
		handleErr(err)

		fmt.Printf(
			"%s unlocked until %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(gate.Expiry().OrEmpty().Format(time.Kitchen)),
		)
	},
}

var logoutCmd = &cobra.Command{
	Use:         "logout",
	Short:       "Lock the catalog again",
	Annotations: public(),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(newGate().Lock())
		fmt.Printf("%s locked\n", style.Fg(color.Green)(icon.Get(icon.Lock)))
	},
}
