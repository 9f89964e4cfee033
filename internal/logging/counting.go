package logging

import (
	"context"
	"log/slog"
	"sync"
)

// CountingHandler wraps another handler and tallies the records it
// handles per level. The simulator reports the tallies at the end of a
// run; tests use them to assert event volumes.
//
// Clones made by WithAttrs and WithGroup share the tallies, so counts
// from component-scoped loggers all land in one place.
type CountingHandler struct {
	next   slog.Handler
	mu     *sync.Mutex
	counts map[slog.Level]int
}

// NewCountingHandler wraps next. Records filtered out by next's Enabled
// are not counted.
func NewCountingHandler(next slog.Handler) *CountingHandler {
	return &CountingHandler{
		next:   next,
		mu:     &sync.Mutex{},
		counts: make(map[slog.Level]int),
	}
}

func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *CountingHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	h.counts[r.Level]++
	h.mu.Unlock()
	return h.next.Handle(ctx, r)
}

func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CountingHandler{next: h.next.WithAttrs(attrs), mu: h.mu, counts: h.counts}
}

func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{next: h.next.WithGroup(name), mu: h.mu, counts: h.counts}
}

// Count returns how many records were handled at exactly level.
func (h *CountingHandler) Count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[level]
}

// Counts returns a copy of the per-level tallies.
func (h *CountingHandler) Counts() map[slog.Level]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[slog.Level]int, len(h.counts))
	for level, n := range h.counts {
		out[level] = n
	}
	return out
}
