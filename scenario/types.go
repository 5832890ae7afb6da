// Package scenario defines the job, result and option types for the
// concurrent batch runner.
package scenario

import (
	"errors"

	"github.com/katalvlaran/chronocluster/cluster"
)

var (
	// ErrNoJobs indicates Run was called with an empty job list.
	ErrNoJobs = errors.New("scenario: at least one job is required")

	// ErrDuplicateID indicates two jobs share an ID; results would not be addressable.
	ErrDuplicateID = errors.New("scenario: job IDs must be unique")
)

// Job is one independent reduction: a scenario identifier, its complete
// gap-free chronological feature matrix, and the requested cluster count.
type Job struct {
	ID          string
	Periods     [][]float64
	TargetCount int
}

// Result pairs a job ID with its reduced typical periods, exactly as a
// serial cluster.Reduce call would have produced them.
type Result struct {
	ID       string
	Clusters []cluster.Cluster
}

// Options configures a batch run.
//
// Fields:
//   - Workers — maximum concurrently running jobs; values ≤ 0 use
//     runtime.GOMAXPROCS(0).
//   - OnMerge — optional per-merge progress hook, invoked with the job ID.
//     Jobs run concurrently, so the hook must be safe for concurrent use.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	Workers int
	OnMerge func(jobID string, ev cluster.MergeEvent)
}

// DefaultOptions returns the default batch policy: GOMAXPROCS workers,
// no progress hook.
func DefaultOptions() Options {
	return Options{}
}
