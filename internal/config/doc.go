// Package config loads the badge's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/badgeview/config.toml
//  3. If the file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or out of range, the
//     affected fields fall back individually
//
// Missing config files are NOT an error; the badge works out of the
// box against the default hosting root. Invalid TOML is an error.
//
// # TOML Format
//
// Every field is optional:
//
//	username = "octocat"
//	badge_repo = "badger-github-badge"
//	base_url = ""               # overrides the derived hosting root
//	data_dir = "~/.local/share/badgeview"
//	sync_interval_secs = 1800
//	request_timeout_secs = 10
//	max_retries = 3
//	retry_delay_secs = 2
//	failure_threshold = 5
//	backoff_factor = 2
//	max_backoff_multiple = 4
//
// The hosting root defaults to
// https://<username>.github.io/<badge_repo>/api, matching where the
// data generation job publishes its documents.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths
// are made absolute, for both the config file location and data_dir.
package config
