// Package jobs accepts conversion start and stop requests. No conversion
// engine is attached yet: requests are logged and announced to UI clients,
// and always succeed.
package jobs

import (
	"context"
	"log/slog"

	"mediaconv/internal/events"
	"mediaconv/internal/logging"
)

// StartRequest carries the conversion parameters chosen in the UI.
type StartRequest struct {
	FFmpegPath string `json:"ffmpegPath"`
	OutputDir  string `json:"outputDir"`
}

// Controller receives job control requests.
type Controller struct {
	publisher events.Publisher
	logger    *slog.Logger
}

// NewController announces requests through p; a nil p discards them.
func NewController(p events.Publisher, logger *slog.Logger) *Controller {
	if p == nil {
		p = events.Discard
	}
	return &Controller{
		publisher: p,
		logger:    logging.NewComponentLogger(logger, "jobs"),
	}
}

// Start records a start request. Arguments are not validated.
func (c *Controller) Start(ctx context.Context, req StartRequest) error {
	logging.WithContext(ctx, c.logger).Info("conversion start requested",
		logging.String(logging.FieldEventType, "job_start_requested"),
		logging.String("ffmpeg_path", req.FFmpegPath),
		logging.String("output_dir", req.OutputDir))
	c.publisher.Publish(events.Event{Type: events.TypeJobStartRequested, Data: req})
	return nil
}

// Stop records a stop request.
func (c *Controller) Stop(ctx context.Context) error {
	logging.WithContext(ctx, c.logger).Info("conversion stop requested",
		logging.String(logging.FieldEventType, "job_stop_requested"))
	c.publisher.Publish(events.Event{Type: events.TypeJobStopRequested})
	return nil
}
