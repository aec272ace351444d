package window

import (
	"context"
	"log/slog"

	"mediaconv/internal/logging"
)

// Manager keeps the settings window a singleton.
type Manager struct {
	registry *Registry
	settings Options
	logger   *slog.Logger
}

// NewManager opens settings windows with the given options.
func NewManager(registry *Registry, settings Options, logger *slog.Logger) *Manager {
	return &Manager{
		registry: registry,
		settings: settings,
		logger:   logging.NewComponentLogger(logger, "window"),
	}
}

// OpenSettings creates the settings window, or shows and focuses the existing
// one. Host failures are logged and never returned.
func (m *Manager) OpenSettings(ctx context.Context) error {
	logger := logging.WithContext(ctx, m.logger)
	_, created, err := m.registry.Open(ctx, m.settings)
	if err != nil {
		logging.WarnWithContext(logger, "settings window unavailable", "window_build_failed",
			logging.String(logging.FieldWindow, m.settings.Label),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that a UI client is attached to the daemon"),
			logging.String(logging.FieldImpact, "settings window not shown"),
		)
		return nil
	}
	if created {
		logger.Info("settings window opened",
			logging.String(logging.FieldWindow, m.settings.Label),
			logging.String("route", m.settings.Route))
	} else {
		logger.Debug("settings window refocused", logging.String(logging.FieldWindow, m.settings.Label))
	}
	return nil
}

// Registry returns the backing registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}
