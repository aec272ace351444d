// Package dialog drives the host platform's native file and folder pickers.
//
// The Picker interface models the three selections the UI needs: many files,
// one folder, one file. Native implements it by running the platform's picker
// process (zenity or kdialog on Linux and BSD, osascript on macOS, PowerShell
// Windows Forms on Windows) and reading the chosen paths from stdout.
//
// A user cancelling the dialog is not an error: Native reports it as an empty
// selection. Errors are reserved for pickers that could not run at all, and
// callers in this repository absorb those too.
package dialog
