package constants

// NATS Subjects
const (
	// Pooling events
	SubjectRidePooled    = "ride.pooled"
	SubjectRideCancelled = "ride.cancelled"
	SubjectPoolDissolved = "pool.dissolved"

	// Dispatch events
	SubjectPoolDispatched = "pool.dispatched"
	SubjectPriceUpdated   = "price.updated"

	// Trip lifecycle
	SubjectTripStarted   = "trip.started"
	SubjectTripCompleted = "trip.completed"
)
