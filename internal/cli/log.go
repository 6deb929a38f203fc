package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled, prefixed records to w with wall-clock timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// timed runs step and, when it succeeds, logs what at info level with the
// elapsed time in milliseconds. Failures are returned unlogged; the caller
// decides how to report them.
func timed(l *log.Logger, what string, step func() error) error {
	began := time.Now()
	if err := step(); err != nil {
		return err
	}
	l.Info(what, "took", time.Since(began).Round(time.Millisecond))
	return nil
}

// sessionLoggerKey keys the command logger in a context.
type sessionLoggerKey struct{}

// contextWithLogger attaches l for commands further down the cobra tree.
func contextWithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, sessionLoggerKey{}, l)
}

// commandLogger returns the logger attached to ctx, or the package default
// when a command runs outside the root pre-run.
func commandLogger(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(sessionLoggerKey{}).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
