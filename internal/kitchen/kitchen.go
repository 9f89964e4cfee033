// Package kitchen implements the order-fulfillment engine: a rate-paced
// intake, one courier per order, a periodic cleanup sweeper and the
// shelf allocator, all sharing one order table under a single lock.
//
// Orders are never deleted during a run. Delivery and waste close an
// order's placement history; counters and shelf occupancy are derived
// from the table on demand.
package kitchen

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"ordersim/internal/config"
	"ordersim/internal/logging"
	"ordersim/internal/notify"
	"ordersim/internal/order"
	"ordersim/internal/shelf"
)

// Kitchen runs one simulation over a fixed order list. The zero value
// is not usable; construct with New.
type Kitchen struct {
	cfg    *config.Config
	orders []order.Order
	logger *slog.Logger

	// now is the clock for all transitions; tests substitute it.
	now func() time.Time

	mu      sync.Mutex
	states  map[int]*order.State
	cancels map[int]*notify.Signal
	// rng draws courier waits; guarded by mu.
	rng *rand.Rand

	fulfillWg sync.WaitGroup
	courierWg sync.WaitGroup
}

// New assembles a kitchen for one run over the given orders. The config
// must already be validated. A nil logger discards the event stream.
func New(orders []order.Order, cfg *config.Config, logger *slog.Logger) *Kitchen {
	return &Kitchen{
		cfg:     cfg,
		orders:  orders,
		logger:  logging.Default(logger).With("component", "kitchen"),
		now:     time.Now,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		states:  make(map[int]*order.State),
		cancels: make(map[int]*notify.Signal),
	}
}

// Seed makes courier wait draws reproducible. Call before Run.
func (k *Kitchen) Seed(seed uint64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.rng = rand.New(rand.NewPCG(seed, seed))
}

// Run executes one simulation: it starts the sweeper, feeds orders in
// at the configured rate and blocks until every accepted order reached
// a terminal state. A canceled ctx stops intake early; orders already
// accepted still run to completion.
func (k *Kitchen) Run(ctx context.Context) error {
	k.logger.Warn("run starting",
		"orders", len(k.orders),
		"intake_interval", k.cfg.IntakeInterval(),
		"cleanup_interval", k.cfg.CleanupInterval())

	var sweepWg sync.WaitGroup
	stop := notify.New()
	sweepWg.Go(func() { k.cleanupLoop(stop) })

	err := k.acceptOrders(ctx)

	// Fulfillments register couriers, so they must be drained before
	// the courier wait can be trusted.
	k.fulfillWg.Wait()
	k.logger.Debug("waiting for couriers")
	k.courierWg.Wait()

	stop.Set()
	sweepWg.Wait()

	t := k.Totals()
	k.logger.Warn("run finished",
		"orders", t.Total,
		"delivered", t.Delivered,
		"wasted", t.Wasted,
		"active", t.Active)
	return err
}

// Totals are the run counters, derived from the order table.
type Totals struct {
	Total     int
	Active    int
	Delivered int
	Wasted    int
}

// Snapshot is a point-in-time view for progress reporting.
type Snapshot struct {
	Totals  Totals
	Shelves shelf.Counts
}

// Totals derives the run counters.
func (k *Kitchen) Totals() Totals {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.totalsLocked()
}

func (k *Kitchen) totalsLocked() Totals {
	t := Totals{Total: len(k.states)}
	for _, st := range k.states {
		switch {
		case st.CurrentShelf() == shelf.Waste:
			t.Wasted++
		case st.Closed():
			t.Delivered++
		default:
			t.Active++
		}
	}
	return t
}

// Snapshot derives the counters and the per-shelf occupancy, waste
// tally included, in one consistent view.
func (k *Kitchen) Snapshot() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()
	return Snapshot{Totals: k.totalsLocked(), Shelves: k.shelfCountsLocked()}
}
