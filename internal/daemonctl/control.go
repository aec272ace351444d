// Package daemonctl starts, stops, and inspects a mediaconv daemon process
// from the CLI.
package daemonctl

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"mediaconv/internal/api"
	"mediaconv/internal/config"
	"mediaconv/internal/dialog"
	"mediaconv/internal/ipc"
	"mediaconv/internal/preflight"
	"mediaconv/internal/shell"
)

// ErrDaemonNotRunning indicates daemon IPC is unavailable.
var ErrDaemonNotRunning = errors.New("daemon not running")

// LaunchOptions controls daemon process launch behavior.
type LaunchOptions struct {
	ConfigPath string
	LogLevel   string
	Headless   bool
}

type StartState string

const (
	StartStateStarted        StartState = "started"
	StartStateAlreadyRunning StartState = "already_running"
)

// StartResult captures daemon start orchestration state.
type StartResult struct {
	State StartState
	PID   int
}

// Launch starts a detached "serve" process from executablePath.
func Launch(executablePath string, opts LaunchOptions) error {
	if strings.TrimSpace(executablePath) == "" {
		return fmt.Errorf("resolve executable: executable path is empty")
	}

	args := []string{"serve"}
	if cfg := strings.TrimSpace(opts.ConfigPath); cfg != "" {
		args = append(args, "--config", cfg)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		args = append(args, "--log-level", level)
	}
	if opts.Headless {
		args = append(args, "--headless")
	}

	proc := exec.Command(executablePath, args...)
	if err := proc.Start(); err != nil {
		return fmt.Errorf("launch daemon: %w", err)
	}
	return proc.Process.Release()
}

// WaitForClient waits for IPC socket availability and returns a connected client.
func WaitForClient(socketPath string, timeout time.Duration) (*ipc.Client, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		client, err := ipc.Dial(socketPath)
		if err == nil {
			return client, nil
		}
		lastErr = err
		time.Sleep(200 * time.Millisecond)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("timeout waiting for daemon")
	}
	return nil, fmt.Errorf("daemon failed to start: %w", lastErr)
}

// EnsureStarted launches the daemon unless one already answers on socketPath.
func EnsureStarted(socketPath, executablePath string, opts LaunchOptions, waitTimeout time.Duration) (StartResult, error) {
	state := StartStateAlreadyRunning
	client, err := ipc.Dial(socketPath)
	if err != nil {
		if launchErr := Launch(executablePath, opts); launchErr != nil {
			return StartResult{}, launchErr
		}
		client, err = WaitForClient(socketPath, waitTimeout)
		if err != nil {
			return StartResult{}, err
		}
		state = StartStateStarted
	}
	defer client.Close()

	status, err := client.Status()
	if err != nil {
		return StartResult{State: state}, nil
	}
	return StartResult{State: state, PID: status.PID}, nil
}

// WaitForShutdown waits for daemon IPC to disappear.
func WaitForShutdown(socketPath string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		client, err := ipc.Dial(socketPath)
		if err != nil {
			if isDaemonUnavailable(err) {
				return nil
			}
			time.Sleep(200 * time.Millisecond)
			continue
		}
		_ = client.Close()
		time.Sleep(200 * time.Millisecond)
	}
	return fmt.Errorf("daemon did not stop within %s", timeout)
}

// Stop asks the daemon to exit and waits for its socket to go away.
func Stop(socketPath string, timeout time.Duration) (int, error) {
	client, err := ipc.Dial(socketPath)
	if err != nil {
		if isDaemonUnavailable(err) {
			return 0, ErrDaemonNotRunning
		}
		return 0, err
	}
	pid := 0
	if status, statusErr := client.Status(); statusErr == nil {
		pid = status.PID
	}
	_, err = client.Shutdown()
	_ = client.Close()
	if err != nil {
		return pid, fmt.Errorf("request shutdown: %w", err)
	}
	return pid, WaitForShutdown(socketPath, timeout)
}

// BuildStatusSnapshot returns the live daemon status, or an offline snapshot
// with locally resolved dependency and directory checks when the daemon is
// not reachable.
func BuildStatusSnapshot(socketPath string, cfg *config.Config) (*ipc.StatusResponse, error) {
	if cfg == nil {
		return nil, errors.New("configuration not available")
	}

	client, err := ipc.Dial(socketPath)
	if err == nil {
		defer client.Close()
		if resp, statusErr := client.Status(); statusErr == nil && resp != nil {
			return resp, nil
		}
	}

	dialogBackend := cfg.Dialog.Backend
	if picker, pickErr := dialog.NewNative(cfg.Dialog.Backend, nil, nil); pickErr == nil {
		dialogBackend = picker.Backend()
	}
	opener := shell.New(nil, nil)
	return &ipc.StatusResponse{
		LockFilePath:  cfg.LockPath(),
		SocketPath:    socketPath,
		APIBind:       cfg.Paths.APIBind,
		DialogBackend: dialogBackend,
		Windows:       []string{},
		Dependencies:  api.FromDependencyStatuses(preflight.CheckSystemDeps(cfg, dialogBackend, opener.Command())),
		Checks:        api.FromPreflightResults(preflight.RunAll(cfg)),
	}, nil
}

func isDaemonUnavailable(err error) bool {
	return os.IsNotExist(err) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, syscall.ENOENT) ||
		errors.Is(err, syscall.ECONNREFUSED)
}
