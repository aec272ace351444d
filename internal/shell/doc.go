// Package shell opens filesystem locations with the desktop's default handler.
//
// Opening is fire-and-forget: the handler process is started and reaped in the
// background, and launch failures are logged rather than returned.
package shell
