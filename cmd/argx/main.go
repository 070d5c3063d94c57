package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/teranos/argx/cmd/argx/commands"
	"github.com/teranos/argx/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCmd().ExecuteContext(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
