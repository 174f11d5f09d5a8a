package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/network"
	"github.com/trixio-cli/trixio/style"
)

func init() {
	rootCmd.AddCommand(relayCmd)
	relayCmd.AddCommand(relayListCmd, relayUseCmd, relayCheckCmd)
	relayCheckCmd.Flags().DurationP("timeout", "T", 10*time.Second, "Per-relay timeout")
}

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Inspect and switch CORS relays",
}

var relayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured relays",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		handleErr(err)

		active, _ := a.redirector.ActiveRelay()
		for i, relay := range a.redirector.Relays() {
			marker := "  "
			if i == active {
				marker = style.Fg(color.Green)(icon.Get(icon.Relay)) + " "
			}
			cmd.Printf("%s%s %s\n", marker, style.Fg(color.Yellow)(strconv.Itoa(i)), relay)
		}
	},
}

var relayUseCmd = &cobra.Command{
	Use:   "use <index>",
	Short: "Make a relay active and remember the choice",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(fmt.Errorf("invalid relay index: %q", args[0]))
		}

		a, err := newApp()
		handleErr(err)

		if !a.redirector.SelectRelay(index) {
			handleErr(fmt.Errorf("relay index %d out of range 0-%d", index, len(a.redirector.Relays())-1))
		}

		handleErr(persistRelay(index))

		_, relay := a.redirector.ActiveRelay()
		fmt.Printf("%s using relay %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(relay))
	},
}

type relayProbe struct {
	Relay   string
	Status  string
	Latency time.Duration
	Err     error
}

func probeRelay(ctx context.Context, client *http.Client, relay string, timeout time.Duration) relayProbe {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	probe := relayProbe{Relay: relay}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+relay, nil)
	if err != nil {
		probe.Err = err
		return probe
	}

	start := time.Now()
	resp, err := client.Do(req)
	probe.Latency = time.Since(start)
	if err != nil {
		probe.Err = err
		return probe
	}
	_ = resp.Body.Close()

	probe.Status = resp.Status
	return probe
}

var relayCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every relay and report latency",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		handleErr(err)

		var (
			relays  = a.redirector.Relays()
			timeout = lo.Must(cmd.Flags().GetDuration("timeout"))
			client  = network.TLSClient()
			probes  = make([]relayProbe, len(relays))
			wg      sync.WaitGroup
		)

		wg.Add(len(relays))
		for i, relay := range relays {
			go func(i int, relay string) {
				defer wg.Done()
				probes[i] = probeRelay(cmd.Context(), client, relay, timeout)
			}(i, relay)
		}
		wg.Wait()

		for i, p := range probes {
			if p.Err != nil {
				cmd.Printf("%s %s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Fg(color.Yellow)(strconv.Itoa(i)), p.Relay, style.Faint(p.Err.Error()))
				continue
			}

			cmd.Printf(
				"%s %s %s %s %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Yellow)(strconv.Itoa(i)),
				p.Relay,
				style.Faint(p.Status),
				style.Bold(p.Latency.Round(time.Millisecond).String()),
			)
		}
	},
}
