package kitchen

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"ordersim/internal/config"
	"ordersim/internal/notify"
	"ordersim/internal/order"
	"ordersim/internal/shelf"
)

// captureHandler captures log records for testing.
// Uses a shared records pointer so WithAttrs clones share the same storage.
type captureHandler struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
}

func newCaptureHandler() *captureHandler {
	var mu sync.Mutex
	var records []slog.Record
	return &captureHandler{
		mu:      &mu,
		records: &records,
	}
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &captureHandler{
		mu:      h.mu,
		records: h.records, // Share the same records slice.
		attrs:   newAttrs,
	}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return h
}

// byKind returns the captured records carrying the given event kind.
func (h *captureHandler) byKind(kind string) []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range *h.records {
		if v, ok := recordAttr(r, "kind"); ok && v.String() == kind {
			out = append(out, r)
		}
	}
	return out
}

func (h *captureHandler) kindCount(kind string) int {
	return len(h.byKind(kind))
}

// recordAttr returns the value of the named call-site attr.
func recordAttr(r slog.Record, key string) (slog.Value, bool) {
	var found slog.Value
	ok := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = a.Value
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// fakeClock is a manual clock for single-goroutine allocator and
// sweeper tests.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func caps(hot, cold, frozen, overflow int) shelf.Capacity {
	return shelf.Capacity{
		shelf.Hot:      hot,
		shelf.Cold:     cold,
		shelf.Frozen:   frozen,
		shelf.Overflow: overflow,
	}
}

func testConfig(capacity shelf.Capacity) *config.Config {
	return &config.Config{
		Capacity:           capacity,
		IntakeOrdersPerSec: 4,
		PickupMinSec:       5,
		PickupMaxSec:       5,
		CleanupDelay:       60,
	}
}

// testKitchen builds a kitchen over an empty order list with a manual
// clock and a capturing logger; tests drive placements directly.
func testKitchen(capacity shelf.Capacity) (*Kitchen, *fakeClock, *captureHandler) {
	clk := newFakeClock()
	h := newCaptureHandler()
	k := New(nil, testConfig(capacity), slog.New(h))
	k.now = clk.now
	return k, clk, h
}

func makeOrder(id string, temp order.Temp, life int, rate float64) order.Order {
	return order.Order{ID: id, Name: id, Temp: temp, ShelfLife: life, DecayRate: rate}
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// canceled reports whether an order's courier has been told to stand
// down.
func canceled(c *notify.Signal) bool {
	return c.Fired()
}
