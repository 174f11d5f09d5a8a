// Package open hands URLs to a media player or the system default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/log"
)

// ErrUnsupported is returned on platforms without a known launcher.
var ErrUnsupported = fmt.Errorf("unsupported OS: %s", runtime.GOOS)

// Available reports whether app can be found on PATH. An empty app means the
// system handler, which is always assumed present.
func Available(app string) bool {
	if app == "" {
		return true
	}
	_, err := exec.LookPath(app)
	return err == nil
}

// Run opens input with app, or the system handler when app is empty, and
// waits for it to exit.
func Run(input, app string) error {
	cmd, err := Command(input, app)
	if err != nil {
		return err
	}

	log.Infof("launching %s", strings.Join(cmd.Args, " "))
	return cmd.Run()
}

// Start is Run without waiting.
func Start(input, app string) error {
	cmd, err := Command(input, app)
	if err != nil {
		return err
	}

	log.Infof("starting %s", strings.Join(cmd.Args, " "))
	return cmd.Start()
}

// Command builds the launcher invocation for the current platform.
func Command(input, app string) (*exec.Cmd, error) {
	if app == "" {
		return system(input)
	}
	return with(input, app)
}

func system(input string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	default:
		return nil, ErrUnsupported
	}
}

func with(input, app string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Windows:
		// cmd's start treats & as a separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), nil
	case constant.Darwin:
		if Available(app) {
			return exec.Command(app, input), nil
		}
		return exec.Command("open", "-a", app, input), nil
	case constant.Linux:
		return exec.Command(app, input), nil
	case constant.Android:
		return exec.Command("termux-open", "--choose", input), nil
	default:
		return nil, ErrUnsupported
	}
}
