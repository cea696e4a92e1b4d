// Package pages defines the badge's logical pages and the navigator
// that cycles through them.
//
// # Pages
//
// The badge displays four screens in a fixed order:
//
//   - Overview: profile name, username, follower and repo counts
//   - Statistics: stars, forks, and top languages
//   - Activity: recent public events
//   - QRCode: a scannable link to the profile
//
// Page values serialize as stable string identifiers ("overview",
// "stats", "activity", "qr") which double as snapshot file names.
//
// # Navigation
//
// Navigator is a minimal state machine over the page cycle. Next and
// Prev both wrap, so four presses of either button return to the
// starting page. The navigator never fails and never terminates; it
// holds only the current page and is owned by the UI's update loop.
package pages
