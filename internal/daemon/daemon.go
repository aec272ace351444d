package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gofrs/flock"

	"mediaconv/internal/api"
	"mediaconv/internal/config"
	"mediaconv/internal/deps"
	"mediaconv/internal/events"
	"mediaconv/internal/logging"
	"mediaconv/internal/preflight"
	"mediaconv/internal/window"
)

// ErrAlreadyRunning reports that another process holds the daemon lock.
var ErrAlreadyRunning = errors.New("another mediaconv daemon instance is already running")

// Options carries the services the daemon exposes.
type Options struct {
	Service  *api.Service
	Windows  *window.Registry
	Hub      *events.Hub
	Platform Platform
}

// Platform names the external programs resolved for this host.
type Platform struct {
	DialogBackend string
	OpenerCommand string
}

// Daemon owns the runtime services and enforces single-instance execution.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	service  *api.Service
	windows  *window.Registry
	hub      *events.Hub
	platform Platform

	lockPath string
	lock     *flock.Flock
	api      *apiServer

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running       bool
	PID           int
	LockFilePath  string
	SocketPath    string
	APIBind       string
	DialogBackend string
	Windows       []string
	EventClients  int
	Dependencies  []deps.Status
	Checks        []preflight.Result
}

// New constructs a daemon around initialized services.
func New(cfg *config.Config, logger *slog.Logger, opts Options) (*Daemon, error) {
	if cfg == nil || opts.Service == nil || opts.Windows == nil || opts.Hub == nil {
		return nil, errors.New("daemon requires config, command service, window registry, and event hub")
	}

	lockPath := cfg.LockPath()
	d := &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		service:  opts.Service,
		windows:  opts.Windows,
		hub:      opts.Hub,
		platform: opts.Platform,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and begins serving the HTTP API.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.api.start(d.ctx); err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return fmt.Errorf("start api server: %w", err)
	}

	d.running.Store(true)
	d.logger.Info("mediaconv daemon started",
		logging.String(logging.FieldEventType, "daemon_started"),
		logging.String("lock", d.lockPath),
		logging.String("api", d.api.address()))
	return nil
}

// Stop shuts down the HTTP API, disconnects event clients, and releases the
// daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	d.hub.Close()
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "daemon_lock_release_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove "+d.lockPath+" if no daemon is running"),
		)
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("mediaconv daemon stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Running reports whether Start succeeded and Stop has not been called.
func (d *Daemon) Running() bool {
	return d.running.Load()
}

// Service returns the command service.
func (d *Daemon) Service() *api.Service {
	return d.service
}

// Windows returns the window registry.
func (d *Daemon) Windows() *window.Registry {
	return d.windows
}

// APIAddress returns the address the HTTP API listens on, or "" when stopped.
func (d *Daemon) APIAddress() string {
	return d.api.address()
}

// Status reports runtime and dependency information.
func (d *Daemon) Status(context.Context) Status {
	bind := d.api.address()
	if bind == "" {
		bind = d.cfg.Paths.APIBind
	}
	return Status{
		Running:       d.running.Load(),
		PID:           os.Getpid(),
		LockFilePath:  d.lockPath,
		SocketPath:    d.cfg.SocketPath(),
		APIBind:       bind,
		DialogBackend: d.platform.DialogBackend,
		Windows:       d.windows.Labels(),
		EventClients:  d.hub.Clients(),
		Dependencies:  preflight.CheckSystemDeps(d.cfg, d.platform.DialogBackend, d.platform.OpenerCommand),
		Checks:        preflight.RunAll(d.cfg),
	}
}

// StatusDTO converts Status into its transport form.
func (s Status) StatusDTO() api.DaemonStatus {
	return api.DaemonStatus{
		Running:       s.Running,
		PID:           s.PID,
		LockFilePath:  s.LockFilePath,
		SocketPath:    s.SocketPath,
		APIBind:       s.APIBind,
		DialogBackend: s.DialogBackend,
		Windows:       s.Windows,
		EventClients:  s.EventClients,
		Dependencies:  api.FromDependencyStatuses(s.Dependencies),
		Checks:        api.FromPreflightResults(s.Checks),
	}
}
