// Package feed fetches published badge documents from their static
// hosting root.
//
// # Overview
//
// A companion job periodically regenerates a small set of JSON
// documents from the GitHub API and publishes them as static files.
// This package is the consumer side of that contract: it knows the
// endpoint names, mirrors the document schemas, and aggregates one
// fetch cycle's results into a single Outcome.
//
// # Endpoints
//
// All endpoints live under one base URL (typically
// https://<user>.github.io/<repo>/api):
//
//   - badge_compact.json: combined minimal document, tried first so a
//     healthy cycle costs one request
//   - profile.json, stats.json, activity.json, qr.json: per-page
//     documents, fetched independently when the compact form does not
//     cover a page
//   - badge_simple.txt: newline-separated plain-text fallback covering
//     the overview, statistics, and QR pages
//
// # Fetch Cycle
//
// FetchAll never returns a Go error. It returns an Outcome that is one
// of three kinds:
//
//   - Success: every page has a validated payload
//   - Partial: some pages succeeded; Failed records a reason per page
//     that did not
//   - Failure: nothing was retrieved; Err carries a representative
//     reason
//
// Endpoints are attempted independently with bounded retries, so a
// single broken document cannot poison the rest of the cycle.
//
// # Error Taxonomy
//
// Failures are classified into four reasons consumed by the sync
// layer:
//
//   - ErrNetworkUnavailable: transport-level failure (DNS, refused)
//   - ErrTimeout: deadline exceeded on a request
//   - HTTPError: non-2xx status from the hosting root
//   - MalformedError: document decoded but is unusable for its page;
//     never retried, since static files do not heal mid-cycle
//
// # Validation
//
// Payload.Validate enforces each page's required fields. A document
// missing a required field is malformed for that page only and is
// reported through the Outcome like any other per-page failure.
package feed
