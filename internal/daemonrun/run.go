// Package daemonrun assembles and runs the mediaconv daemon process.
package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"mediaconv/internal/api"
	"mediaconv/internal/config"
	"mediaconv/internal/daemon"
	"mediaconv/internal/dialog"
	"mediaconv/internal/events"
	"mediaconv/internal/ipc"
	"mediaconv/internal/jobs"
	"mediaconv/internal/logging"
	"mediaconv/internal/shell"
	"mediaconv/internal/window"
)

const pidFileName = "mediaconvd.pid"

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel    string
	Development bool
	// Headless disables window rendering and browser launch.
	Headless bool
}

// Runtime bundles the services a daemon process serves.
type Runtime struct {
	Daemon   *daemon.Daemon
	Hub      *events.Hub
	Registry *window.Registry
}

// Build wires the command service, window registry, and event hub for cfg.
func Build(cfg *config.Config, logger *slog.Logger, opts Options) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	picker, err := dialog.NewNative(cfg.Dialog.Backend, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("dialog backend: %w", err)
	}
	opener := shell.New(logger, nil)
	hub := events.NewHub(logger)

	var d *daemon.Daemon
	var host window.Host = window.NewEventHost(hub)
	switch {
	case opts.Headless:
		host = window.Headless{}
	case cfg.Window.LaunchBrowser:
		host = window.NewBrowserHost(host, func() string { return apiBaseURL(d, cfg.Paths.APIBind) }, opener)
	}
	registry := window.NewRegistry(host, logger)

	service := api.NewService(api.Dependencies{
		Picker:           picker,
		Opener:           opener,
		Settings:         window.NewManager(registry, window.SettingsOptions(cfg.Window), logger),
		Jobs:             jobs.NewController(hub, logger),
		DefaultOutputDir: cfg.Paths.DefaultOutputDir,
		Logger:           logger,
	})

	d, err = daemon.New(cfg, logger, daemon.Options{
		Service:  service,
		Windows:  registry,
		Hub:      hub,
		Platform: daemon.Platform{DialogBackend: picker.Backend(), OpenerCommand: opener.Command()},
	})
	if err != nil {
		return nil, fmt.Errorf("create daemon: %w", err)
	}
	return &Runtime{Daemon: d, Hub: hub, Registry: registry}, nil
}

// apiBaseURL prefers the bound listener address so a ":0" bind resolves to
// the real port.
func apiBaseURL(d *daemon.Daemon, bind string) string {
	if d != nil {
		if addr := d.APIAddress(); addr != "" {
			return "http://" + addr
		}
	}
	return "http://" + bind
}

// Run starts the mediaconv daemon and blocks until the context is cancelled,
// a termination signal arrives, or a client requests shutdown over IPC.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	signalCtx, stop := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithCancel(signalCtx)
	defer cancel()

	logger, err := logging.New(logging.Options{
		Level:       firstNonEmpty(opts.LogLevel, cfg.Logging.Level),
		Format:      cfg.Logging.Format,
		Outputs:     logging.DaemonOutputs(cfg),
		Development: opts.Development,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	rt, err := Build(cfg, logger, opts)
	if err != nil {
		return err
	}
	defer rt.Daemon.Close()

	if err := rt.Daemon.Start(runCtx); err != nil {
		return err
	}
	logDependencySnapshot(logger, rt.Daemon.Status(runCtx))

	pidPath := filepath.Join(cfg.Paths.StateDir, pidFileName)
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer os.Remove(pidPath)

	ipcServer, err := ipc.NewServer(runCtx, cfg.SocketPath(), rt.Daemon, logger, ipc.WithShutdown(cancel))
	if err != nil {
		return fmt.Errorf("start IPC server: %w", err)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	<-runCtx.Done()
	logger.Info("mediaconv daemon shutting down",
		logging.String(logging.FieldEventType, "daemon_shutdown"))
	return nil
}

// PIDPath returns the pid file written by Run for cfg.
func PIDPath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.StateDir, pidFileName)
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}

func logDependencySnapshot(logger *slog.Logger, status daemon.Status) {
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "dependency_snapshot"),
		logging.String("dialog_backend", status.DialogBackend),
	}
	for _, dep := range status.Dependencies {
		attrs = append(attrs, logging.Bool(strings.ToLower(dep.Name)+"_available", dep.Available))
	}
	logger.Info("dependency snapshot", logging.Args(attrs...)...)

	for _, check := range status.Checks {
		if check.Passed {
			continue
		}
		logger.Info("directory check failed",
			logging.String(logging.FieldEventType, "preflight_check_failed"),
			logging.String("check", check.Name),
			logging.String("detail", check.Detail))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
