package kitchen

// Event kinds carried on every order-transition record as the "kind"
// attr. Consumers filter on these rather than on message text.
//
// Severity encodes outcome: losses (unhealthy, discarded,
// pickup_canceled) are logged at ERROR, placements, deliveries and
// recoveries at INFO.
const (
	EventNew            = "new"
	EventDelivered      = "delivered"
	EventPickupCanceled = "pickup_canceled"
	EventUnhealthy      = "unhealthy"
	EventRecovered      = "recovered"
	EventDiscarded      = "discarded"
)
