package order

import (
	"math"
	"time"

	"ordersim/internal/shelf"
)

// Placement is one segment of an order's shelf history: a shelf and the
// interval the order spent on it. RemovedAt is zero while the segment
// is open. Value is the order's value at the instant the segment closed
// and is meaningful only then.
type Placement struct {
	Shelf     shelf.Kind
	AddedAt   time.Time
	RemovedAt time.Time
	Value     float64
}

// Open reports whether the segment has not been closed yet.
func (p Placement) Open() bool { return p.RemovedAt.IsZero() }

// seconds returns the segment length, using now for the open end.
func (p Placement) seconds(now time.Time) float64 {
	end := p.RemovedAt
	if p.Open() {
		end = now
	}
	return end.Sub(p.AddedAt).Seconds()
}

// State is the record the kitchen keeps for one accepted order: the
// immutable order plus its append-only placement history and the
// courier wait drawn for it. The history is never empty, only its last
// segment may be open, and records are never deleted during a run;
// waste is just a terminal closed segment.
//
// State carries no clock. Every method that needs the current time
// takes it as a parameter, so one transition uses exactly one timestamp
// and adjacent segments meet with no drift. The caller is responsible
// for locking.
type State struct {
	Order     Order
	History   []Placement
	PickupSec int
}

// NewState records a newly accepted order with its first placement
// opened at now.
func NewState(o Order, now time.Time, k shelf.Kind, pickupSec int) *State {
	return &State{
		Order:     o,
		History:   []Placement{{Shelf: k, AddedAt: now}},
		PickupSec: pickupSec,
	}
}

// CurrentShelf returns the shelf of the last history segment, open or
// closed. A wasted order reports Waste forever.
func (s *State) CurrentShelf() shelf.Kind {
	return s.History[len(s.History)-1].Shelf
}

// Closed reports whether the history has no open segment: the order was
// delivered or wasted and every derived quantity is frozen.
func (s *State) Closed() bool {
	return !s.History[len(s.History)-1].Open()
}

// Age returns the total seconds the order existed across all segments,
// with an open last segment aged up to now.
func (s *State) Age(now time.Time) float64 {
	total := 0.0
	for _, p := range s.History {
		total += p.seconds(now)
	}
	return total
}

// Value computes the order's value at now:
//
//	value = 1 - (Σ seconds_i · decayRate · modifier_i) / shelfLife
//
// where modifier_i is 1 for time on the home shelf and 2 elsewhere.
// Closed segments contribute their recorded span, so a closed history
// yields the same value for any now.
func (s *State) Value(now time.Time) float64 {
	decayed := 0.0
	for _, p := range s.History {
		decayed += p.seconds(now) * s.Order.DecayRate * s.Order.decayModifier(p.Shelf)
	}
	return 1 - decayed/float64(s.Order.ShelfLife)
}

// TTL returns how many seconds the order can sit on its current shelf,
// counted from the moment it landed there, before its value reaches
// zero. Decay banked by earlier segments shortens it; it goes negative
// when those segments already spent more than the whole shelf life, and
// is +Inf for an order that does not decay. Time already spent on the
// current shelf does not move it.
func (s *State) TTL() float64 {
	last := len(s.History) - 1
	rate := s.Order.DecayRate * s.Order.decayModifier(s.History[last].Shelf)
	if rate == 0 {
		return math.Inf(1)
	}
	banked := 0.0
	for _, p := range s.History[:last] {
		banked += p.RemovedAt.Sub(p.AddedAt).Seconds() * s.Order.DecayRate * s.Order.decayModifier(p.Shelf)
	}
	return (float64(s.Order.ShelfLife) - banked) / rate
}

// PickupTTL is the eviction metric: the shelf time the order can
// survive minus the worst case still to wait for its courier. Negative
// means the courier arrives to a dead order; the allocator discards the
// smallest first.
func (s *State) PickupTTL(now time.Time) float64 {
	return s.TTL() - (float64(s.PickupSec) - s.Age(now))
}

// LastValue returns the closing value once the order is closed.
func (s *State) LastValue() (float64, bool) {
	if !s.Closed() {
		return 0, false
	}
	return s.History[len(s.History)-1].Value, true
}

// Close seals the open segment at now, recording the value at that
// instant. Closing an already closed state is a no-op, so finalizers
// need no coordination beyond the kitchen lock.
func (s *State) Close(now time.Time) {
	last := &s.History[len(s.History)-1]
	if !last.Open() {
		return
	}
	last.Value = s.Value(now)
	last.RemovedAt = now
}

// Move closes the current segment and opens a new one on dst. Both
// sides of the transition share the single now, so the adjacent
// segments meet exactly. Must not be called on a closed state.
func (s *State) Move(now time.Time, dst shelf.Kind) {
	s.Close(now)
	s.History = append(s.History, Placement{Shelf: dst, AddedAt: now})
}

// MoveToWaste discards the order: the current segment closes at now and
// a terminal waste segment is appended already closed, inheriting the
// same instant and value. Wasting an order that is already on the waste
// shelf is a no-op.
func (s *State) MoveToWaste(now time.Time) {
	if s.CurrentShelf() == shelf.Waste {
		return
	}
	s.Close(now)
	v := s.History[len(s.History)-1].Value
	s.History = append(s.History, Placement{
		Shelf:     shelf.Waste,
		AddedAt:   now,
		RemovedAt: now,
		Value:     v,
	})
}
