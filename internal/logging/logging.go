// Package logging provides the structured logging conventions of the
// simulator.
//
// Design principles:
//   - Logging is dependency-injected, never global
//   - Each component owns its own scoped logger
//   - Logger scoping happens once at construction time
//   - slog.With() is used to attach default attributes
//   - If no logger is provided, a discard logger is used
//
// Global configuration (output format, level, destination) belongs only
// in main(). Components must never call slog.SetDefault or access
// global loggers.
//
// The kitchen's event stream is ordinary slog records; severity encodes
// outcome: order losses at ERROR, placements and deliveries at INFO,
// run boundaries at WARN, courier bookkeeping at DEBUG.
package logging

import (
	"context"
	"log/slog"
)

// discardHandler is a handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard returns a logger that discards all output.
// Use this as a default when no logger is provided.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default returns the provided logger if non-nil, otherwise returns a discard logger.
// This is the standard pattern for optional logger parameters:
//
//	func New(orders []order.Order, cfg *config.Config, logger *slog.Logger) *Kitchen {
//	    logger = logging.Default(logger)
//	    return &Kitchen{logger: logger.With("component", "kitchen")}
//	}
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}

// LevelFromDebug maps the --debug_level flag to a slog level: 0 keeps
// only warnings and errors, 1 adds the order event stream, 2 adds
// courier and intake bookkeeping.
func LevelFromDebug(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelWarn
	case level == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
