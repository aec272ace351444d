package queue

import (
	"context"
	"log/slog"

	"mediaconv/internal/dialog"
	"mediaconv/internal/logging"
)

const (
	filesDialogTitle  = "Select media files"
	folderDialogTitle = "Select a folder"
)

// Builder turns picker selections into queue items.
type Builder struct {
	picker dialog.Picker
	newID  IDFunc
	logger *slog.Logger
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithIDFunc overrides identity generation.
func WithIDFunc(fn IDFunc) BuilderOption {
	return func(b *Builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// NewBuilder wraps picker.
func NewBuilder(picker dialog.Picker, logger *slog.Logger, opts ...BuilderOption) *Builder {
	b := &Builder{
		picker: picker,
		newID:  NewID,
		logger: logging.NewComponentLogger(logger, "queue"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PickFiles prompts for media files and returns one item per selected path,
// in selection order. Cancellation and picker failures yield an empty slice.
func (b *Builder) PickFiles(ctx context.Context) []Item {
	paths, err := b.picker.PickFiles(ctx, dialog.Options{Title: filesDialogTitle})
	if err != nil {
		b.warnPicker(ctx, "file picker failed", err)
		return []Item{}
	}
	items := make([]Item, 0, len(paths))
	for _, path := range paths {
		items = append(items, NewItem(path, b.newID))
	}
	b.logger.Debug("files picked", logging.Int("count", len(items)))
	return items
}

// PickFolder prompts for a folder and returns a single placeholder item for
// it, or an empty slice when nothing was chosen.
func (b *Builder) PickFolder(ctx context.Context) []Item {
	folder, err := b.picker.PickFolder(ctx, dialog.Options{Title: folderDialogTitle})
	if err != nil {
		b.warnPicker(ctx, "folder picker failed", err)
		return []Item{}
	}
	if folder == "" {
		return []Item{}
	}
	return []Item{NewFolderItem(folder, b.newID)}
}

func (b *Builder) warnPicker(ctx context.Context, msg string, err error) {
	logging.WarnWithContext(logging.WithContext(ctx, b.logger), msg, "dialog_failed",
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "install zenity or kdialog, or set dialog.backend"),
		logging.String(logging.FieldImpact, "selection treated as cancelled"),
	)
}
