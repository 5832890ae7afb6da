package scenario

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chronocluster/cluster"
)

// Run executes every job through cluster.ReduceContext on a bounded worker
// pool and returns the results in job order.
//
// Error Conditions:
//   - ErrNoJobs       : jobs is empty.
//   - ErrDuplicateID  : two jobs share an ID (checked before any work).
//   - cluster errors  : the first failing job fails the batch; its error is
//     wrapped with the job ID and remains matchable via errors.Is.
//   - ctx errors      : cancellation aborts in-flight reductions through
//     cluster.ErrCanceled.
//
// Steps:
//  1. Validate the batch shape: non-empty, unique IDs.
//  2. Resolve options: worker limit (≤0 → GOMAXPROCS), progress hook.
//  3. Launch one errgroup goroutine per job, limited to the worker count.
//     Each goroutine writes its Result into the job's own slot, so no two
//     goroutines share a memory location.
//  4. Wait; on any failure the group context cancels the remaining jobs and
//     Run returns the first error with no partial results.
//
// Determinism: each job's output is byte-identical to a serial
// cluster.Reduce call, and the returned slice is ordered by job position,
// so a batch is as reproducible as its individual reductions.
func Run(ctx context.Context, jobs []Job, opts *Options) ([]Result, error) {
	// 1. Batch-shape validation, before any clustering work.
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	seen := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		if _, dup := seen[job.ID]; dup {
			return nil, fmt.Errorf("job %q: %w", job.ID, ErrDuplicateID)
		}
		seen[job.ID] = struct{}{}
	}

	// 2. Resolve options.
	workers := runtime.GOMAXPROCS(0)
	var onMerge func(string, cluster.MergeEvent)
	if opts != nil {
		if opts.Workers > 0 {
			workers = opts.Workers
		}
		onMerge = opts.OnMerge
	}

	// 3. Fan out, one slot per job.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make([]Result, len(jobs))
	for i, job := range jobs {
		i, job := i, job // per-iteration copies for the closure (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			var cOpts cluster.Options
			if onMerge != nil {
				cOpts.OnMerge = func(ev cluster.MergeEvent) { onMerge(job.ID, ev) }
			}

			clusters, err := cluster.ReduceContext(gctx, job.Periods, job.TargetCount, &cOpts)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.ID, err)
			}
			results[i] = Result{ID: job.ID, Clusters: clusters}

			return nil
		})
	}

	// 4. All-or-nothing.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
