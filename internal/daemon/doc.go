// Package daemon coordinates the long-running mediaconv process that UI
// shells talk to.
//
// It holds the flock-based single-instance lock, serves the local HTTP API
// (command dispatch, status, window sessions, and the websocket event stream),
// and owns the window registry and event hub for the lifetime of the process.
//
// Keep orchestration logic here: command behaviour lives in internal/api and
// window lifecycle in internal/window, while the daemon focuses on startup,
// shutdown, and exposing those services over transports.
package daemon
