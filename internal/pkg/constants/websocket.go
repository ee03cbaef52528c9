package constants

// WebSocket notification event types
const (
	NotifyPoolJoined     = "POOL_JOINED"
	NotifyPoolWaiting    = "POOL_WAITING"
	NotifyPoolDispatched = "POOL_DISPATCHED"
	NotifyRideCancelled  = "RIDE_CANCELLED"
	NotifyRiderLeft      = "RIDER_CANCELLED"
	NotifyPriceUpdated   = "PRICE_UPDATED"
	NotifyTripAssigned   = "TRIP_ASSIGNED"
	NotifyTripCancelled  = "TRIP_CANCELLED"
	NotifyRideStarted    = "RIDE_STARTED"
	NotifyRideCompleted  = "RIDE_COMPLETED"
)
