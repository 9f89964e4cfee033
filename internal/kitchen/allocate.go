package kitchen

import (
	"math"
	"time"

	"ordersim/internal/order"
	"ordersim/internal/shelf"
)

// shelfCountsLocked derives per-shelf occupancy from the order table.
// Delivered orders hold no slot; wasted orders tally under the virtual
// waste shelf, which has no capacity to press against. Callers hold
// k.mu.
func (k *Kitchen) shelfCountsLocked() shelf.Counts {
	counts := make(shelf.Counts)
	for _, st := range k.states {
		switch {
		case st.CurrentShelf() == shelf.Waste:
			counts[shelf.Waste]++
		case !st.Closed():
			counts[st.CurrentShelf()]++
		}
	}
	return counts
}

// makeRoom picks the shelf for a new order whose home shelf is home,
// evicting or recovering as needed, and returns the shelf to place on.
// Callers hold k.mu.
//
// Policy, in order: the home shelf if it has room; the overflow shelf
// if it has room; otherwise free an overflow slot, first by moving an
// overflow order back to a home shelf with room (the least utilized
// home wins, oldest order on a tie), else by discarding the overflow
// order closest to dying before its pickup.
func (k *Kitchen) makeRoom(home shelf.Kind, now time.Time) shelf.Kind {
	counts := k.shelfCountsLocked()
	if !counts.Full(home, k.cfg.Capacity) {
		return home
	}
	if !counts.Full(shelf.Overflow, k.cfg.Capacity) {
		return shelf.Overflow
	}
	if k.recoverOneLocked(counts, now) {
		return shelf.Overflow
	}
	k.evictOneLocked(now)
	return shelf.Overflow
}

// recoverOneLocked moves at most one active overflow order back to a
// home shelf with room, preferring the least utilized home shelf and
// the lowest order number on a tie. Reports whether an order moved.
// Callers hold k.mu.
func (k *Kitchen) recoverOneLocked(counts shelf.Counts, now time.Time) bool {
	bestNum := -1
	var best *order.State
	bestUtil := math.Inf(1)
	for num, st := range k.states {
		if st.Closed() || st.CurrentShelf() != shelf.Overflow {
			continue
		}
		home := st.Order.Temp.Shelf()
		if counts.Full(home, k.cfg.Capacity) {
			continue
		}
		util := counts.Utilization(home, k.cfg.Capacity)
		if best == nil || util < bestUtil || (util == bestUtil && num < bestNum) {
			best, bestNum, bestUtil = st, num, util
		}
	}
	if best == nil {
		return false
	}

	home := best.Order.Temp.Shelf()
	best.Move(now, home)
	k.logger.Info("order recovered",
		"kind", EventRecovered,
		"order", bestNum,
		"shelf", home,
		"value", best.Value(now))
	return true
}

// evictOneLocked discards the active overflow order with the smallest
// pickup TTL, lowest order number on a tie, and cancels its courier.
// The overflow shelf can only be full of active orders, so finding no
// candidate means the occupancy bookkeeping is broken and the run
// aborts. Callers hold k.mu.
func (k *Kitchen) evictOneLocked(now time.Time) {
	worstNum := -1
	var worst *order.State
	worstTTL := math.Inf(1)
	for num, st := range k.states {
		if st.Closed() || st.CurrentShelf() != shelf.Overflow {
			continue
		}
		ttl := st.PickupTTL(now)
		if worst == nil || ttl < worstTTL || (ttl == worstTTL && num < worstNum) {
			worst, worstNum, worstTTL = st, num, ttl
		}
	}
	if worst == nil {
		panic("kitchen: overflow full with no active orders")
	}

	worst.MoveToWaste(now)
	k.cancelLocked(worstNum)
	v, _ := worst.LastValue()
	k.logger.Error("order discarded",
		"kind", EventDiscarded,
		"order", worstNum,
		"pickup_ttl", worstTTL,
		"value", v)
}
