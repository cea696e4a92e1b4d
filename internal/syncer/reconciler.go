package syncer

import (
	"log"
	"time"

	"badgeview/internal/feed"
	"badgeview/internal/snapshot"
)

// Reconciler folds a fetch cycle's outcome into the snapshot store and
// the sync state. It is the only writer of both.
type Reconciler struct {
	Store *snapshot.Store
	State *State
}

// Apply reconciles one cycle. Pages that were fetched overwrite their
// snapshots as live; pages that failed keep whatever snapshot they
// already had, so a single endpoint being down never discards good
// cached data. Any contact at all resets the failure streak; only a
// cycle that retrieved nothing counts as a failure.
func (r *Reconciler) Apply(outcome feed.Outcome, now time.Time) {
	r.State.LastAttempt = now

	if outcome.Kind() == feed.KindFailure {
		r.State.ConsecutiveFailures++
		if outcome.Err != nil {
			log.Printf("sync failed (streak %d): %v", r.State.ConsecutiveFailures, outcome.Err)
		}
		return
	}

	for page, payload := range outcome.Payloads {
		if err := r.Store.Put(page, payload, snapshot.OriginLive); err != nil {
			// The in-memory snapshot is already updated; losing the
			// persisted copy costs one power cycle of freshness.
			log.Printf("persist %s snapshot: %v", page, err)
		}
	}
	for page, err := range outcome.Failed {
		log.Printf("page %s not refreshed: %v", page, err)
	}

	r.State.ConsecutiveFailures = 0
	r.State.LastSuccess = now
}
