// Package scenario fans a set of independent clustering jobs — typically
// one weather/demand scenario or historical year each — across a bounded
// worker pool and collects their reduced typical periods.
//
// 🚀 Why a separate package?
//
//	The clustering engine is a pure function: invocations share no state,
//	so N scenarios parallelize trivially. This package is that caller: it
//	owns the fan-out, the worker limit, the job-order result layout and
//	the all-or-nothing failure policy, keeping cluster/ itself free of
//	any concurrency.
//
// ✨ Semantics:
//   - per-job output is identical to a serial cluster.Reduce call
//   - results return in job order, regardless of completion order
//   - the first failing job cancels the rest and fails the whole batch;
//     a silently skipped scenario would corrupt downstream weight sums
//   - job IDs must be unique so results stay addressable
//
// ⚙️ Usage:
//
//	jobs := []scenario.Job{
//	  {ID: "1995", Periods: year1995, TargetCount: 672},
//	  {ID: "1996", Periods: year1996, TargetCount: 672},
//	}
//	results, err := scenario.Run(ctx, jobs, nil)
//	if err != nil {
//	  // handle ErrNoJobs / ErrDuplicateID / wrapped cluster errors
//	}
//
// Errors from the engine arrive wrapped with the offending job ID and stay
// matchable via errors.Is (e.g. cluster.ErrTargetCount).
package scenario
