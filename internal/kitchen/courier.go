package kitchen

import (
	"time"

	"ordersim/internal/notify"
	"ordersim/internal/shelf"
)

// cancelLocked fires the courier cancellation for order num. Callers
// hold k.mu and must have moved the order to waste first, so a courier
// that wakes on the signal observes the waste placement.
func (k *Kitchen) cancelLocked(num int) {
	if c, ok := k.cancels[num]; ok {
		c.Set()
	}
}

// dispatchOrder is the courier for order num: it waits out pickupSec,
// or a cancellation, whichever comes first, then finalizes the order
// under the lock. Finding the order on the waste shelf means it died
// while the courier was driving; anything else is picked up and
// delivered.
func (k *Kitchen) dispatchOrder(num, pickupSec int, cancel *notify.Signal) {
	k.logger.Debug("courier dispatched", "order", num, "pickup_sec", pickupSec)

	timer := time.NewTimer(time.Duration(pickupSec) * time.Second)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-cancel.C():
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	st := k.states[num]
	if st.CurrentShelf() == shelf.Waste {
		v, _ := st.LastValue()
		k.logger.Error("pickup canceled",
			"kind", EventPickupCanceled,
			"order", num,
			"value", v,
			"age", st.Age(now))
		return
	}

	st.Close(now)
	v, _ := st.LastValue()
	k.logger.Info("order delivered",
		"kind", EventDelivered,
		"order", num,
		"shelf", st.CurrentShelf(),
		"value", v,
		"age", st.Age(now))
}
