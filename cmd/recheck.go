package main

import (
	"context"

	"breachwatch/internal/config"
	"breachwatch/internal/monitor"
	"breachwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// recheckCommand constructs the 'recheck' subcommand that enqueues an
// immediate re-check sweep instead of waiting for the next periodic run. The
// job is unique across pending states, so invoking this while a sweep is
// already queued is a no-op.
func recheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "recheck",
		Short: "Enqueues an immediate re-check sweep of stale monitored items",
		Run: func(_ *cobra.Command, _ []string) {
			ctx := context.Background()

			strg, closeStorage := getPostgres(ctx, cfg)
			defer closeStorage()

			added, err := strg.AddJob(ctx, monitor.RecheckArgs{}, nil)
			if err != nil {
				logger.Fatal(ctx, "could not enqueue re-check sweep", zap.Error(err))
			}

			if !added {
				logger.Info(ctx, "a re-check sweep is already queued, nothing to do")

				return
			}

			logger.Info(ctx, "re-check sweep enqueued")
		},
	}
}
