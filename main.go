package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/trixio-cli/trixio/cmd"
	"github.com/trixio-cli/trixio/config"
	"github.com/trixio-cli/trixio/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Execute(ctx)
}
