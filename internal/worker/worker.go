package worker

import (
	"context"
	"fmt"
	"log/slog"

	"breachwatch/internal/config"
	"breachwatch/internal/monitor"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start wires the re-check worker into a River client, registers the periodic
// sweep (which also runs once at startup) and starts the client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	st storage.Storage,
	m monitor.Monitor,
	cfg *config.Config) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRecheckWorker(m, st, cfg.Worker.Staleness, cfg.Worker.BatchSize))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.Worker.MaxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Worker.RecheckInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return monitor.RecheckArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
