package logging

import "log/slog"

// The helpers below tolerate a nil logger so callers built without one
// (tests, the stdio transport before setup) can log unconditionally.

func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, args...)
}

// Error appends the error (when non-nil) under the "error" key.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	logger.Error(msg, args...)
}
