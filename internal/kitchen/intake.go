package kitchen

import (
	"context"

	"golang.org/x/time/rate"

	"ordersim/internal/notify"
	"ordersim/internal/order"
)

// acceptOrders feeds the order list into the kitchen at the configured
// rate. Every order, the first included, waits one full intake interval
// before it is accepted. Fulfillment runs on its own goroutine so a
// slow placement never skews the pacing.
func (k *Kitchen) acceptOrders(ctx context.Context) error {
	lim := rate.NewLimiter(rate.Limit(k.cfg.IntakeOrdersPerSec), 1)
	lim.Allow() // drain the initial token so the first order waits too

	k.logger.Info("accepting orders",
		"count", len(k.orders),
		"per_sec", k.cfg.IntakeOrdersPerSec)

	for num, ord := range k.orders {
		if err := lim.Wait(ctx); err != nil {
			k.logger.Warn("intake aborted", "accepted", num, "reason", err)
			return err
		}
		k.fulfillWg.Go(func() { k.fulfillOrder(num, ord) })
	}
	return nil
}

// fulfillOrder places one accepted order and dispatches its courier.
func (k *Kitchen) fulfillOrder(num int, ord order.Order) {
	pickupSec, cancel := k.placeOrder(num, ord)
	k.courierWg.Go(func() { k.dispatchOrder(num, pickupSec, cancel) })
}

// placeOrder makes room for the order, draws its courier wait and
// records it in the table with a fresh cancellation signal, all under
// one lock hold so no one can observe a half-placed order.
func (k *Kitchen) placeOrder(num int, ord order.Order) (int, *notify.Signal) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	dst := k.makeRoom(ord.Temp.Shelf(), now)
	pickupSec := k.drawPickupSecLocked()
	k.states[num] = order.NewState(ord, now, dst, pickupSec)
	cancel := notify.New()
	k.cancels[num] = cancel

	k.logger.Info("order placed",
		"kind", EventNew,
		"order", num,
		"name", ord.Name,
		"shelf", dst,
		"pickup_sec", pickupSec)
	return pickupSec, cancel
}

// drawPickupSecLocked draws a whole-second courier wait uniformly from
// the configured window, both ends inclusive. Callers hold k.mu.
func (k *Kitchen) drawPickupSecLocked() int {
	lo, hi := k.cfg.PickupRange()
	if hi == lo {
		return lo
	}
	return lo + k.rng.IntN(hi-lo+1)
}
