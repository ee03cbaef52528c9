package constants

// Redis key formats
const (
	// Cab geo index
	KeyCabGeo        = "cab:geo"         // GeoHash set of all cab locations
	KeyAvailableCabs = "cabs:available"  // Set of AVAILABLE cab IDs
	KeyCabLocation   = "cab:location:%s" // Format: cab:location:{cab_id}

	// Pool geo index
	KeyPoolGeo     = "pool:geo"     // GeoHash set of FORMING pool anchors
	KeyFormingPool = "pool:forming" // Set of FORMING pool IDs

	// Distributed locks
	KeyPoolLock = "lock:pool:%s" // Format: lock:pool:{pool_id}
	KeyCabLock  = "lock:cab:%s"  // Format: lock:cab:{cab_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "zone"
	FieldTimestamp = "ts"
)
