package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend and should
// be atomic with respect to any surrounding transaction when the backend
// supports it. The boolean result reports whether a job was actually inserted
// (false when a unique job with the same arguments already exists).
type JobStorage interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
