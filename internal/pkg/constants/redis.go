package constants

// Redis key patterns
const (
	KeySweeperLock      = "sweeper:lock:%s"      // sweep job name
	KeyTripAvailability = "trip:%s:availability" // trip id
)

// TTL in seconds for the trip availability cache
const TripAvailabilityTTLSeconds = 60
