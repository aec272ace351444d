package jobs

import (
	"context"
	"testing"

	"mediaconv/internal/events"
)

func TestStartAndStopAlwaysSucceed(t *testing.T) {
	var got []events.Event
	controller := NewController(events.PublisherFunc(func(ev events.Event) { got = append(got, ev) }), nil)
	ctx := context.Background()

	for _, req := range []StartRequest{{}, {FFmpegPath: "/usr/bin/ffmpeg", OutputDir: "/out"}} {
		if err := controller.Start(ctx, req); err != nil {
			t.Fatalf("Start(%+v): %v", req, err)
		}
	}
	if err := controller.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[1].Type != events.TypeJobStartRequested {
		t.Fatalf("unexpected event type %q", got[1].Type)
	}
	if req, ok := got[1].Data.(StartRequest); !ok || req.OutputDir != "/out" {
		t.Fatalf("unexpected event data %#v", got[1].Data)
	}
	if got[2].Type != events.TypeJobStopRequested {
		t.Fatalf("unexpected event type %q", got[2].Type)
	}
}

func TestNilPublisherDiscards(t *testing.T) {
	if err := NewController(nil, nil).Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
