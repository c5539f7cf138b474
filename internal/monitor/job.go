package monitor

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RecheckArgs is the argument type for the periodic stale-item re-check job
// submitted to River. It carries no payload; the worker derives its batch from
// the items' last_checked timestamps.
type RecheckArgs struct{}

// Kind returns the River job kind used to register and dispatch the re-check
// worker.
func (RecheckArgs) Kind() string { return "RecheckStaleItems" }

// InsertOpts keeps at most one re-check job queued or running at a time; a
// periodic trigger that fires while the previous sweep is still going is
// dropped as a duplicate.
func (RecheckArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
