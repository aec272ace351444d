package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"mediaconv/internal/config"
	"mediaconv/internal/logging"
)

// ErrUnsupported reports a backend name this package does not know.
var ErrUnsupported = errors.New("unsupported dialog backend")

// Options customizes a single picker invocation.
type Options struct {
	Title string
	// Directory seeds the picker's starting location when non-empty.
	Directory string
}

// Picker presents native selection dialogs. Implementations return an empty
// result with a nil error when the user cancels.
type Picker interface {
	PickFiles(ctx context.Context, opts Options) ([]string, error)
	PickFolder(ctx context.Context, opts Options) (string, error)
	PickFile(ctx context.Context, opts Options) (string, error)
}

// Runner executes a picker process and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// selection selects among pickers: one file, many files, or one folder.
type selection int

const (
	selectFile selection = iota
	selectFiles
	selectFolder
)

// backend turns a selection into a picker command line.
type backend interface {
	name() string
	command(sel selection, opts Options) (string, []string)
}

// Native runs the platform picker process for each selection.
type Native struct {
	backend backend
	runner  Runner
	logger  *slog.Logger
}

// NewNative builds a picker for the named backend. "auto" (or empty) picks the
// conventional picker for the build target. A nil runner executes real
// processes.
func NewNative(name string, runner Runner, logger *slog.Logger) (*Native, error) {
	b, err := resolveBackend(name)
	if err != nil {
		return nil, err
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &Native{
		backend: b,
		runner:  runner,
		logger:  logging.NewComponentLogger(logger, "dialog"),
	}, nil
}

// Backend returns the resolved backend name.
func (n *Native) Backend() string {
	return n.backend.name()
}

// PickFiles returns the selected files in the picker's order.
func (n *Native) PickFiles(ctx context.Context, opts Options) ([]string, error) {
	return n.run(ctx, selectFiles, opts)
}

// PickFolder returns the selected folder, or "" when cancelled.
func (n *Native) PickFolder(ctx context.Context, opts Options) (string, error) {
	paths, err := n.run(ctx, selectFolder, opts)
	if err != nil || len(paths) == 0 {
		return "", err
	}
	return paths[0], nil
}

// PickFile returns the selected file, or "" when cancelled.
func (n *Native) PickFile(ctx context.Context, opts Options) (string, error) {
	paths, err := n.run(ctx, selectFile, opts)
	if err != nil || len(paths) == 0 {
		return "", err
	}
	return paths[0], nil
}

func (n *Native) run(ctx context.Context, sel selection, opts Options) ([]string, error) {
	name, args := n.backend.command(sel, opts)
	n.logger.Debug("launching picker",
		logging.String("backend", n.backend.name()),
		logging.String("binary", name))
	out, err := n.runner.Run(ctx, name, args...)
	if err != nil {
		if isCancel(err) {
			n.logger.Debug("picker cancelled", logging.String("backend", n.backend.name()))
			return nil, nil
		}
		return nil, fmt.Errorf("run %s picker: %w", n.backend.name(), err)
	}
	return parseSelection(out), nil
}

// isCancel reports whether err is a picker exiting with status 1, which is how
// zenity, kdialog, and osascript signal a dismissed dialog.
func isCancel(err error) bool {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode() == 1
	}
	return false
}

func parseSelection(out []byte) []string {
	lines := strings.Split(string(out), "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, filepath.Clean(line))
	}
	return paths
}

func resolveBackend(name string) (backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", config.DialogAuto:
		return autoBackend(), nil
	case config.DialogZenity:
		return zenity{}, nil
	case config.DialogKDialog:
		return kdialog{}, nil
	case config.DialogOsascript:
		return osascript{}, nil
	case config.DialogPowerShell:
		return powershell{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}
