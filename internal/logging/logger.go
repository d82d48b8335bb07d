package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"

	"github.com/trebuchet-org/courier/internal/adapters/logbuffer"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// ParseLevel maps a level name to a slog level. Unknown names yield info.
func ParseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a new logger based on runtime configuration. Records
// always go to the log buffer; stderr output is added when the runtime
// config asks for it.
func NewLogger(cfg *config.RuntimeConfig, buf *logbuffer.Buffer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)

	handlers := []slog.Handler{logbuffer.NewHandler(buf, level)}

	if cfg.LogToStderr {
		opts := &slog.HandlerOptions{
			Level:     level,
			AddSource: level == slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// Remove time for cleaner output
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				// Shorten source paths
				if a.Key == slog.SourceKey {
					if source, ok := a.Value.Any().(*slog.Source); ok {
						source.File = shortPath(source.File)
					}
				}
				return a
			},
		}
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(fanout(handlers))
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	// Try to make paths relative to the module root
	if idx := strings.Index(file, "courier/"); idx != -1 {
		return file[idx+len("courier/"):]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	// Last resort: just the filename
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
