package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ChainSafe/ksymdump/cmd"
	"github.com/ChainSafe/ksymdump/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cmd.NewApp(os.Args[0])
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		stop()
		logger := logging.New(os.Stderr, false)
		logger.Fatal().Err(err).Msg("ksymdump failed")
	}
}
