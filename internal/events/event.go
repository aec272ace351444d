package events

import "time"

// Event types.
const (
	TypeWindowOpened      = "window.opened"
	TypeWindowShown       = "window.shown"
	TypeWindowClosed      = "window.closed"
	TypeJobStartRequested = "job.start_requested"
	TypeJobStopRequested  = "job.stop_requested"
)

// Event is one notification delivered to UI clients.
type Event struct {
	Type      string    `json:"type"`
	Label     string    `json:"label,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher accepts events for delivery.
type Publisher interface {
	Publish(Event)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(Event)

// Publish calls f.
func (f PublisherFunc) Publish(ev Event) { f(ev) }

// Discard drops every event.
var Discard Publisher = PublisherFunc(func(Event) {})
