package api

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"mediaconv/internal/dialog"
	"mediaconv/internal/jobs"
	"mediaconv/internal/logging"
	"mediaconv/internal/queue"
)

const (
	outputDialogTitle = "Select output folder"
	ffmpegDialogTitle = "Select ffmpeg binary"
)

// Opener reveals a path with the desktop handler.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// SettingsWindow opens or refocuses the settings window.
type SettingsWindow interface {
	OpenSettings(ctx context.Context) error
}

// JobController receives conversion requests.
type JobController interface {
	Start(ctx context.Context, req jobs.StartRequest) error
	Stop(ctx context.Context) error
}

// Dependencies wires the collaborators behind each command.
type Dependencies struct {
	Picker           dialog.Picker
	Opener           Opener
	Settings         SettingsWindow
	Jobs             JobController
	DefaultOutputDir string
	Logger           *slog.Logger
	// NewID overrides queue item identities; nil uses random UUIDs.
	NewID queue.IDFunc
}

// Service implements the UI command surface.
type Service struct {
	queue     *queue.Builder
	picker    dialog.Picker
	opener    Opener
	settings  SettingsWindow
	jobs      JobController
	outputDir string
	logger    *slog.Logger
}

// NewService constructs a Service from its collaborators.
func NewService(d Dependencies) *Service {
	logger := logging.NewComponentLogger(d.Logger, "api")
	return &Service{
		queue:     queue.NewBuilder(d.Picker, d.Logger, queue.WithIDFunc(d.NewID)),
		picker:    d.Picker,
		opener:    d.Opener,
		settings:  d.Settings,
		jobs:      d.Jobs,
		outputDir: d.DefaultOutputDir,
		logger:    logger,
	}
}

// begin tags ctx with the command name and a correlation id when the caller
// did not supply one.
func (s *Service) begin(ctx context.Context, command string) (context.Context, *slog.Logger) {
	ctx = logging.WithCommand(ctx, command)
	if _, ok := logging.CorrelationIDFromContext(ctx); !ok {
		ctx = logging.WithCorrelationID(ctx, uuid.NewString())
	}
	logger := logging.WithContext(ctx, s.logger)
	logger.Debug("command invoked")
	return ctx, logger
}

// PickFiles opens a multi-file picker and returns one queue item per file.
func (s *Service) PickFiles(ctx context.Context) ([]queue.Item, error) {
	ctx, _ = s.begin(ctx, CommandPickFiles)
	return s.queue.PickFiles(ctx), nil
}

// PickFolder opens a folder picker and returns zero or one placeholder item.
func (s *Service) PickFolder(ctx context.Context) ([]queue.Item, error) {
	ctx, _ = s.begin(ctx, CommandPickFolder)
	return s.queue.PickFolder(ctx), nil
}

// PickOutput opens a folder picker seeded with the default output directory
// and returns the chosen path, or "" when cancelled.
func (s *Service) PickOutput(ctx context.Context) (string, error) {
	ctx, logger := s.begin(ctx, CommandPickOutput)
	folder, err := s.picker.PickFolder(ctx, dialog.Options{Title: outputDialogTitle, Directory: s.outputDir})
	if err != nil {
		warnDialog(logger, err)
		return "", nil
	}
	return folder, nil
}

// OpenOutput reveals path in the file browser. An empty path does nothing.
func (s *Service) OpenOutput(ctx context.Context, path string) error {
	ctx, _ = s.begin(ctx, CommandOpenOutput)
	_ = s.opener.Open(ctx, path)
	return nil
}

// OpenSettingsWindow creates the settings window or focuses the existing one.
func (s *Service) OpenSettingsWindow(ctx context.Context) error {
	ctx, _ = s.begin(ctx, CommandOpenSettingsWindow)
	_ = s.settings.OpenSettings(ctx)
	return nil
}

// PickFFmpeg opens a single-file picker for the ffmpeg binary. The choice is
// not validated.
func (s *Service) PickFFmpeg(ctx context.Context) (string, error) {
	ctx, logger := s.begin(ctx, CommandPickFFmpeg)
	path, err := s.picker.PickFile(ctx, dialog.Options{Title: ffmpegDialogTitle})
	if err != nil {
		warnDialog(logger, err)
		return "", nil
	}
	return path, nil
}

// CheckFFmpeg reports ffmpeg readiness. No probe is performed yet; callers
// wanting real availability should read the daemon status dependencies.
func (s *Service) CheckFFmpeg(ctx context.Context) (bool, error) {
	s.begin(ctx, CommandCheckFFmpeg)
	return true, nil
}

// StartConversion forwards a start request to the job controller.
func (s *Service) StartConversion(ctx context.Context, req StartConversionRequest) error {
	ctx, _ = s.begin(ctx, CommandStartConversion)
	_ = s.jobs.Start(ctx, jobs.StartRequest{FFmpegPath: req.FFmpegPath, OutputDir: req.OutputDir})
	return nil
}

// StopConversion forwards a stop request to the job controller.
func (s *Service) StopConversion(ctx context.Context) error {
	ctx, _ = s.begin(ctx, CommandStopConversion)
	_ = s.jobs.Stop(ctx)
	return nil
}

func warnDialog(logger *slog.Logger, err error) {
	logging.WarnWithContext(logger, "picker failed", "dialog_failed",
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "install zenity or kdialog, or set dialog.backend"),
		logging.String(logging.FieldImpact, "selection treated as cancelled"),
	)
}
