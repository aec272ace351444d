package logging

import (
	"log/slog"
	"slices"
)

// Attr aliases slog.Attr so callers import a single logging package.
type Attr = slog.Attr

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

// Error renders err under the "error" key; a nil error logs as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Args converts attrs to the variadic form accepted by slog.Logger methods.
func Args(attrs ...Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}

// NewComponentLogger tags logger with a component attribute. A nil logger
// yields a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

var warnDefaults = []Attr{
	slog.String(FieldErrorHint, "check the daemon log for details"),
	slog.String(FieldImpact, "command completed without the requested effect"),
}

// WarnWithContext logs a warning carrying event_type, error_hint, and impact.
// Attributes supplied by the caller take precedence over the defaults.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	attrs = withDefault(attrs, slog.String(FieldEventType, eventType))
	for _, def := range warnDefaults {
		attrs = withDefault(attrs, def)
	}
	logger.Warn(msg, Args(attrs...)...)
}

func withDefault(attrs []Attr, def Attr) []Attr {
	if slices.ContainsFunc(attrs, func(a Attr) bool { return a.Key == def.Key }) {
		return attrs
	}
	return append(attrs, def)
}
