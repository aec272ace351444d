package shell

import (
	"context"
	"log/slog"
	"os/exec"

	"mediaconv/internal/logging"
)

// Process is a started handler process.
type Process interface {
	Wait() error
}

// Spawner starts name with args without waiting for it to exit.
type Spawner func(name string, args ...string) (Process, error)

// Opener reveals paths and URLs using the platform handler.
type Opener struct {
	command string
	spawn   Spawner
	logger  *slog.Logger
}

// New builds an Opener for the build target. A nil spawner starts real
// processes.
func New(logger *slog.Logger, spawn Spawner) *Opener {
	if spawn == nil {
		spawn = startProcess
	}
	return &Opener{
		command: openCommand,
		spawn:   spawn,
		logger:  logging.NewComponentLogger(logger, "shell"),
	}
}

// Command returns the handler binary used by Open.
func (o *Opener) Command() string {
	return o.command
}

// Open hands target to the platform handler. An empty target is a no-op.
// The handler's exit status is discarded and launch failures are only logged,
// so Open always returns nil.
func (o *Opener) Open(ctx context.Context, target string) error {
	if target == "" {
		return nil
	}
	logger := logging.WithContext(ctx, o.logger)
	proc, err := o.spawn(o.command, target)
	if err != nil {
		logging.WarnWithContext(logger, "open handler failed to start", "shell_open_failed",
			logging.String("target", target),
			logging.String("binary", o.command),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "install a desktop file handler ("+o.command+")"),
			logging.String(logging.FieldImpact, "location was not opened"),
		)
		return nil
	}
	logger.Debug("open handler started",
		logging.String("target", target),
		logging.String("binary", o.command))
	go func() {
		_ = proc.Wait()
	}()
	return nil
}

func startProcess(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}
