package kitchen

import (
	"time"

	"ordersim/internal/notify"
)

// cleanupLoop runs the shelf sweeper until stop fires, one sweep per
// cleanup interval. The first sweep happens a full interval in, so a
// run shorter than the interval is never swept.
func (k *Kitchen) cleanupLoop(stop *notify.Signal) {
	ticker := time.NewTicker(k.cfg.CleanupInterval())
	defer ticker.Stop()
	for {
		select {
		case <-stop.C():
			return
		case <-ticker.C:
			k.sweep()
		}
	}
}

// sweep wastes every active order whose value reached zero and cancels
// its courier, then tries to recover one overflow order into the room
// that opened up.
func (k *Kitchen) sweep() {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	for num, st := range k.states {
		if st.Closed() {
			continue
		}
		v := st.Value(now)
		if v > 0 {
			continue
		}
		from := st.CurrentShelf()
		st.MoveToWaste(now)
		k.cancelLocked(num)
		k.logger.Error("order unhealthy",
			"kind", EventUnhealthy,
			"order", num,
			"shelf", from,
			"value", v,
			"age", st.Age(now))
	}
	k.recoverOneLocked(k.shelfCountsLocked(), now)
}
