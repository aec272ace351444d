package ipc

import (
	"mediaconv/internal/api"
	"mediaconv/internal/queue"
)

// Empty is the request for methods without arguments.
type Empty struct{}

// ShutdownResponse acknowledges a shutdown request.
type ShutdownResponse struct {
	Stopping bool `json:"stopping"`
}

// StatusResponse is the daemon status DTO.
type StatusResponse = api.DaemonStatus

// DependencyStatus describes availability of an external dependency.
type DependencyStatus = api.DependencyStatus

// ItemsResponse carries queue items from pick_files and pick_folder.
type ItemsResponse struct {
	Items []queue.Item `json:"items"`
}

// PathResponse carries a picked path; empty when cancelled.
type PathResponse struct {
	Path string `json:"path"`
}

// OpenOutputRequest names the directory to reveal.
type OpenOutputRequest = api.OpenOutputRequest

// StartConversionRequest carries conversion parameters.
type StartConversionRequest = api.StartConversionRequest

// CheckResponse carries the check_ffmpeg result.
type CheckResponse struct {
	OK bool `json:"ok"`
}

// CloseWindowRequest reports a UI window close.
type CloseWindowRequest struct {
	Label string `json:"label"`
}

// CloseWindowResponse reports whether the window was present.
type CloseWindowResponse struct {
	Closed bool `json:"closed"`
}
