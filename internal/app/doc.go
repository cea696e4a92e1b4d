// Package app wires configuration, storage, fetching, and the UI into
// the running badge.
//
// # Startup Order
//
//  1. Load the TOML config (missing file falls back to defaults)
//  2. Open the snapshot store and reload persisted pages, so cached
//     data is available before the first page is drawn
//  3. Build the fetch client against the configured hosting root
//  4. Hand everything to the UI, whose update loop owns the sync
//     schedule from then on
//
// Startup never requires the network: a first boot with zero
// connectivity renders placeholder content for every page and the
// scheduler keeps retrying in the background.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable config, an unusable
// data directory, or an invalid hosting root. Everything that happens
// after the UI starts — fetch failures, malformed documents, failed
// snapshot writes — is recovered inside the sync layer and never
// tears down the loop.
package app
