// Package snapshot persists the most recently accepted payload for
// each badge page.
//
// # Overview
//
// The store is the badge's memory between sync cycles and across power
// cycles. Every page has at most one current snapshot; reading a page
// never fails, because a page with no accepted payload resolves to an
// embedded default-origin placeholder.
//
// # Provenance
//
// Each snapshot carries an Origin tag:
//
//   - live: accepted from a fetch this session
//   - cache: fetched in an earlier session and reloaded from disk
//   - default: embedded placeholder, never fetched successfully
//
// Origin is set only on successful writes. A failed sync cycle leaves
// snapshots untouched; they simply age.
//
// # Persistence
//
// One JSON file per page under the data directory, written with a
// write-then-rename replace so a power loss mid-write leaves either
// the old file or the new one. On startup, a file that is missing,
// unreadable, or malformed degrades only its own page to the default
// placeholder; the other pages reload normally.
//
// # Ownership
//
// The reconciler is the store's only writer. The UI is a read-only
// consumer through Get. There is no locking: everything runs inside
// the control loop's single update context.
package snapshot
