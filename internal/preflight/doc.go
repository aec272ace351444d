// Package preflight provides readiness checks for the directories and
// external programs mediaconv depends on.
//
// Results are informational. The daemon reports them on /api/status and
// the CLI "mediaconv status" command renders them; no command refuses to
// run because a check failed.
package preflight
