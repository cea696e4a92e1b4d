// Package syncer decides when to fetch and how to fold fetch results
// into the snapshot store.
//
// # Overview
//
// Two small pieces share one State:
//
//   - Scheduler: a pure due-time policy over the sync state and clock
//   - Reconciler: the single writer that applies a fetch outcome to
//     the store and mutates the state
//
// The control loop polls Scheduler.Due each tick; when a cycle is due
// it runs the fetch client and hands the outcome to Reconciler.Apply.
//
// # Reconciliation Rules
//
// Availability wins over freshness:
//
//   - Success: every page overwritten as live, failure streak reset,
//     last success updated
//   - Partial: fetched pages overwritten as live, failed pages left
//     untouched (they keep their cache or default snapshot), failure
//     streak reset — partial progress still counts as contact
//   - Failure: no store writes, failure streak incremented; existing
//     snapshots keep their origin and simply age
//
// The last-attempt time is stamped on every cycle regardless of
// outcome.
//
// # Backoff
//
// Once the failure streak exceeds the threshold, the effective
// interval doubles per additional failure, capped at a bounded
// multiple of the base interval so a dead network is retried at a
// slower but never-zero cadence. A manual refresh bypasses the
// schedule entirely and clears the streak.
package syncer
