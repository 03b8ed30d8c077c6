package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the subset of structured-logging functionality used by the
// bindings. Every algorithm invocation emits one debug event through it.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(err error, msg string, fields map[string]any)
}

type zerologLogger struct {
	l zerolog.Logger
}

// New returns a Logger writing zerolog events to w. A nil writer binds to
// stderr.
func New(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &zerologLogger{
		l: zerolog.New(w).With().Timestamp().Str("component", "lattice").Logger(),
	}
}

func (z *zerologLogger) event(e *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

func (z *zerologLogger) Debug(msg string, fields map[string]any) {
	z.event(z.l.Debug(), msg, fields)
}

func (z *zerologLogger) Info(msg string, fields map[string]any) {
	z.event(z.l.Info(), msg, fields)
}

func (z *zerologLogger) Warn(msg string, fields map[string]any) {
	z.event(z.l.Warn(), msg, fields)
}

func (z *zerologLogger) Error(err error, msg string, fields map[string]any) {
	z.event(z.l.Error().Err(err), msg, fields)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = New(nil)
)

// SetDefault replaces the logger used by the algorithm packages. Passing
// nil restores the zerolog-backed default.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if l == nil {
		l = New(nil)
	}
	defaultLogger = l
}

// Default returns the current process-wide logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Invocation logs one completed native call at debug level.
func Invocation(algorithm string, params int, elapsed time.Duration, err error) {
	l := Default()
	fields := map[string]any{
		"algorithm":   algorithm,
		"params":      params,
		"duration_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		l.Error(err, "native invocation failed", fields)
		return
	}
	l.Debug("native invocation complete", fields)
}
