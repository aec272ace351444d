package window

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"mediaconv/internal/logging"
)

// Registry maps labels to live windows. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	windows map[string]*Window
	host    Host
	logger  *slog.Logger
}

// NewRegistry creates an empty registry rendering through host.
func NewRegistry(host Host, logger *slog.Logger) *Registry {
	if host == nil {
		host = Headless{}
	}
	return &Registry{
		windows: make(map[string]*Window),
		host:    host,
		logger:  logging.NewComponentLogger(logger, "window"),
	}
}

// Get returns the live window for label.
func (r *Registry) Get(label string) (*Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.windows[label]
	return w, ok
}

// Labels returns the labels of live windows, sorted.
func (r *Registry) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	labels := make([]string, 0, len(r.windows))
	for label := range r.windows {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// Open returns the window for opts.Label, creating it when absent. When the
// window already exists it is shown and focused instead, and created is false.
func (r *Registry) Open(ctx context.Context, opts Options) (w *Window, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.windows[opts.Label]; ok {
		if err := existing.Show(ctx); err != nil {
			return existing, false, fmt.Errorf("show window %s: %w", opts.Label, err)
		}
		if err := existing.Focus(ctx); err != nil {
			return existing, false, fmt.Errorf("focus window %s: %w", opts.Label, err)
		}
		return existing, false, nil
	}

	if err := r.host.Create(ctx, opts); err != nil {
		return nil, false, fmt.Errorf("build window %s: %w", opts.Label, err)
	}
	w = &Window{opts: opts, host: r.host, onClose: r.forget}
	r.windows[opts.Label] = w
	return w, true, nil
}

// Close handles a UI close report for label. It reports whether a window was
// present.
func (r *Registry) Close(ctx context.Context, label string) bool {
	w, ok := r.Get(label)
	if !ok {
		return false
	}
	w.Close(ctx)
	return true
}

func (r *Registry) forget(w *Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.windows[w.Label()]; ok && current == w {
		delete(r.windows, w.Label())
		r.logger.Debug("window released", logging.String(logging.FieldWindow, w.Label()))
	}
}
