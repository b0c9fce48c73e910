package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}
