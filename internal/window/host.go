package window

import (
	"context"
	"strings"

	"mediaconv/internal/events"
)

// Host renders window surfaces.
type Host interface {
	Create(ctx context.Context, opts Options) error
	Show(ctx context.Context, label string) error
	Focus(ctx context.Context, label string) error
	Destroy(ctx context.Context, label string)
}

// Headless renders nothing. It backs daemons with no UI attached.
type Headless struct{}

func (Headless) Create(context.Context, Options) error { return nil }

func (Headless) Show(context.Context, string) error { return nil }

func (Headless) Focus(context.Context, string) error { return nil }

func (Headless) Destroy(context.Context, string) {}

// EventHost asks connected UI clients to render windows by publishing
// lifecycle events.
type EventHost struct {
	publisher events.Publisher
}

// NewEventHost publishes to p; a nil p discards events.
func NewEventHost(p events.Publisher) *EventHost {
	if p == nil {
		p = events.Discard
	}
	return &EventHost{publisher: p}
}

func (h *EventHost) Create(_ context.Context, opts Options) error {
	h.publisher.Publish(events.Event{Type: events.TypeWindowOpened, Label: opts.Label, Data: opts})
	return nil
}

func (h *EventHost) Show(_ context.Context, label string) error {
	h.publisher.Publish(events.Event{Type: events.TypeWindowShown, Label: label})
	return nil
}

// Focus is folded into Show for UI clients.
func (h *EventHost) Focus(context.Context, string) error { return nil }

func (h *EventHost) Destroy(_ context.Context, label string) {
	h.publisher.Publish(events.Event{Type: events.TypeWindowClosed, Label: label})
}

// URLOpener opens a URL with the desktop handler.
type URLOpener interface {
	Open(ctx context.Context, target string) error
}

// BrowserHost wraps another host and also opens each new window's route in
// the default browser.
type BrowserHost struct {
	Host
	baseURL func() string
	opener  URLOpener
}

// NewBrowserHost opens routes through opener, relative to the URL baseURL
// returns when each window is created.
func NewBrowserHost(inner Host, baseURL func() string, opener URLOpener) *BrowserHost {
	if inner == nil {
		inner = Headless{}
	}
	return &BrowserHost{Host: inner, baseURL: baseURL, opener: opener}
}

func (h *BrowserHost) Create(ctx context.Context, opts Options) error {
	if err := h.Host.Create(ctx, opts); err != nil {
		return err
	}
	return h.opener.Open(ctx, h.URL(opts.Route))
}

// URL resolves route against the base URL.
func (h *BrowserHost) URL(route string) string {
	return strings.TrimRight(h.baseURL(), "/") + "/" + strings.TrimLeft(route, "/")
}
