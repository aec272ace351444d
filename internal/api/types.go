package api

import (
	"mediaconv/internal/deps"
	"mediaconv/internal/preflight"
)

// Command names accepted by Invoke.
const (
	CommandPickFiles          = "pick_files"
	CommandPickFolder         = "pick_folder"
	CommandPickOutput         = "pick_output"
	CommandOpenOutput         = "open_output"
	CommandOpenSettingsWindow = "open_settings_window"
	CommandPickFFmpeg         = "pick_ffmpeg"
	CommandCheckFFmpeg        = "check_ffmpeg"
	CommandStartConversion    = "start_conversion"
	CommandStopConversion     = "stop_conversion"
)

// Commands returns every command name in display order.
func Commands() []string {
	return []string{
		CommandPickFiles,
		CommandPickFolder,
		CommandPickOutput,
		CommandOpenOutput,
		CommandOpenSettingsWindow,
		CommandPickFFmpeg,
		CommandCheckFFmpeg,
		CommandStartConversion,
		CommandStopConversion,
	}
}

// OpenOutputRequest carries the open_output argument.
type OpenOutputRequest struct {
	Path string `json:"path"`
}

// StartConversionRequest carries the start_conversion arguments.
type StartConversionRequest struct {
	FFmpegPath string `json:"ffmpegPath"`
	OutputDir  string `json:"outputDir"`
}

// CommandResponse wraps a command result for HTTP consumers.
type CommandResponse struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running       bool               `json:"running"`
	PID           int                `json:"pid"`
	LockFilePath  string             `json:"lockFilePath"`
	SocketPath    string             `json:"socketPath"`
	APIBind       string             `json:"apiBind"`
	DialogBackend string             `json:"dialogBackend"`
	Windows       []string           `json:"windows"`
	EventClients  int                `json:"eventClients"`
	Dependencies  []DependencyStatus `json:"dependencies"`
	Checks        []CheckResult      `json:"checks"`
}

// DependencyStatus captures availability of an external dependency.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// CheckResult mirrors a preflight directory check.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// WindowListResponse lists live window labels.
type WindowListResponse struct {
	Windows []string `json:"windows"`
}

// FromDependencyStatuses converts dependency checks into DTOs.
func FromDependencyStatuses(statuses []deps.Status) []DependencyStatus {
	out := make([]DependencyStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, DependencyStatus{
			Name:        s.Name,
			Command:     s.Command,
			Description: s.Description,
			Optional:    s.Optional,
			Available:   s.Available,
			Detail:      s.Detail,
		})
	}
	return out
}

// FromPreflightResults converts directory checks into DTOs.
func FromPreflightResults(results []preflight.Result) []CheckResult {
	out := make([]CheckResult, 0, len(results))
	for _, r := range results {
		out = append(out, CheckResult(r))
	}
	return out
}
