package preflight

import (
	"strings"

	"mediaconv/internal/config"
	"mediaconv/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll checks the directories the daemon reads and writes.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if strings.TrimSpace(cfg.Paths.DefaultOutputDir) != "" {
		results = append(results, CheckDirectoryAccess("Default output directory", cfg.Paths.DefaultOutputDir))
	}
	return results
}

// CheckSystemDeps evaluates the external programs for the given config.
// dialogBinary and openerBinary are the picker and shell handler commands
// resolved for this platform.
func CheckSystemDeps(cfg *config.Config, dialogBinary, openerBinary string) []deps.Status {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{
			Name:        "Dialog",
			Command:     dialogBinary,
			Description: "Required for file and folder pickers",
		},
		{
			Name:        "Opener",
			Command:     openerBinary,
			Description: "Required to reveal the output directory",
		},
	})
	ffmpeg := "ffmpeg"
	if cfg != nil {
		ffmpeg = cfg.FFmpegBinary()
	}
	return append(statuses, deps.CheckFFmpeg(ffmpeg))
}
