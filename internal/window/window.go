package window

import (
	"context"
	"sync"

	"mediaconv/internal/config"
)

const (
	// SettingsLabel keys the settings window in the registry.
	SettingsLabel = "settings"
	// SettingsRoute is the UI route rendered inside the settings window.
	SettingsRoute = "index.html?settings=1"
)

// Options describes a window to create.
type Options struct {
	Label     string `json:"label"`
	Route     string `json:"route"`
	Title     string `json:"title"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Resizable bool   `json:"resizable"`
}

// SettingsOptions returns the settings window presentation from cfg.
func SettingsOptions(cfg config.Window) Options {
	return Options{
		Label:     SettingsLabel,
		Route:     SettingsRoute,
		Title:     cfg.SettingsTitle,
		Width:     cfg.SettingsWidth,
		Height:    cfg.SettingsHeight,
		Resizable: true,
	}
}

// Window is a live handle to a rendered surface.
type Window struct {
	opts    Options
	host    Host
	once    sync.Once
	onClose func(*Window)
}

// Label returns the registry key.
func (w *Window) Label() string {
	return w.opts.Label
}

// Options returns the options the window was created with.
func (w *Window) Options() Options {
	return w.opts
}

// Show makes the window visible.
func (w *Window) Show(ctx context.Context) error {
	return w.host.Show(ctx, w.opts.Label)
}

// Focus raises the window and gives it input focus.
func (w *Window) Focus(ctx context.Context) error {
	return w.host.Focus(ctx, w.opts.Label)
}

// Close reports that the UI closed the window. The registry forgets the
// handle; later calls are no-ops.
func (w *Window) Close(ctx context.Context) {
	w.once.Do(func() {
		w.host.Destroy(ctx, w.opts.Label)
		if w.onClose != nil {
			w.onClose(w)
		}
	})
}
