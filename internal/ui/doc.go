// Package ui renders the badge pages in a terminal and hosts the
// control loop.
//
// # Overview
//
// On the physical badge, a single cooperative loop polls buttons and a
// sync timer and pushes pixels to the e-ink panel. This package is the
// workstation rendition of that loop as a Bubble Tea program: Update
// is the one mutation context, key messages are the buttons, a
// once-a-second tick is the sync timer, and View is the render
// boundary.
//
// # Control Loop
//
// Each tick polls the scheduler. When a sync is due, the fetch runs as
// a command off the loop and reports back with a message; the
// reconciler applies the outcome inside Update. Navigation messages
// are handled the moment they arrive and render from whatever the
// store already holds, so a slow fetch never blocks a page turn.
//
// # Rendering
//
// View resolves the current page through the snapshot store, which
// never fails: live, cached, or placeholder content is always
// available. The footer shows the snapshot's origin and age so stale
// data is visible without ever replacing content with an error.
//
// The QR page encodes the profile URL with half-height block
// characters so it fits the window and scans straight off the terminal.
package ui
