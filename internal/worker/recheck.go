package worker

import (
	"context"
	"fmt"
	"time"

	"breachwatch/internal/monitor"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RecheckWorker is a River worker that sweeps monitored items whose last
// successful lookup is older than the staleness window (or that have never
// been looked up) and re-scans each of them. A single sweep is capped at
// batchSize items; items left over stay stale and are picked up by the next
// periodic run, so a large backlog drains gradually instead of hammering the
// external source.
type RecheckWorker struct {
	river.WorkerDefaults[monitor.RecheckArgs]

	monitor   monitor.Monitor
	storage   storage.Storage
	staleness time.Duration
	batchSize uint
}

// NewRecheckWorker constructs a RecheckWorker.
func NewRecheckWorker(m monitor.Monitor, st storage.Storage, staleness time.Duration, batchSize uint) *RecheckWorker {
	return &RecheckWorker{
		monitor:   m,
		storage:   st,
		staleness: staleness,
		batchSize: batchSize,
	}
}

// Work runs one re-check sweep. Per-item scan failures are logged and the
// sweep continues; only a failure to load the batch itself fails the job.
func (w *RecheckWorker) Work(ctx context.Context, job *river.Job[monitor.RecheckArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	cutoff := time.Now().Add(-w.staleness)
	items, err := w.storage.StaleItems(ctx, cutoff, w.batchSize)
	if err != nil {
		logger.Error(ctx, "could not load stale items", zap.Error(err))

		return fmt.Errorf("could not load stale items: %w", err)
	}

	var appended int
	for i := range items {
		n, err := w.monitor.Scan(ctx, &items[i])
		if err != nil {
			logger.Error(ctx, "re-check scan failed",
				zap.String("itemID", items[i].ID.String()),
				zap.Error(err))

			continue
		}

		appended += n
	}

	logger.Info(ctx, "re-check sweep finished",
		zap.Int("items", len(items)),
		zap.Int("newExposures", appended))

	return nil
}
