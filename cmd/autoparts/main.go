package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/app"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		// the logger may not be initialised yet
		fmt.Fprintln(os.Stderr, "autoparts:", err)
		return 1
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ Auto parts store error", logger.ErrorF(err))
		return 1
	}
	return 0
}
