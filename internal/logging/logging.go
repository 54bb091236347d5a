// Package logging builds the client's logger.
package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. Only warnings and errors are
// shown unless debug is set.
func New(debug bool, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type ctxKey struct{}

// WithLogger attaches log to ctx.
func WithLogger(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger attached to ctx, or a discarding logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if log, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok && log != nil {
		return log
	}
	return Discard()
}

// Redirect points the logger attached to ctx at w and returns a func that
// restores the previous output. Loggers it cannot redirect are left alone.
func Redirect(ctx context.Context, w io.Writer) (restore func()) {
	var log *logrus.Logger
	switch l := FromContext(ctx).(type) {
	case *logrus.Logger:
		log = l
	case *logrus.Entry:
		log = l.Logger
	default:
		return func() {}
	}
	prev := log.Out
	log.SetOutput(w)
	return func() { log.SetOutput(prev) }
}
