package matching

import (
	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
)

// Stop is one halt on a simulated shared route
type Stop struct {
	RequestID uuid.UUID
	Lat       float64
	Lng       float64
	IsPickup  bool
}

// BuildRoute orders all pickups by repeated nearest neighbor starting from
// the first member's pickup, then all drops by nearest neighbor continuing
// from the last pickup reached. With at most a handful of members the O(n^2)
// ordering is effectively constant.
func BuildRoute(members []*models.RideRequest) []Stop {
	if len(members) == 0 {
		return nil
	}

	pickups := make([]Stop, 0, len(members))
	drops := make([]Stop, 0, len(members))
	for _, m := range members {
		pickups = append(pickups, Stop{RequestID: m.ID, Lat: m.PickupLat, Lng: m.PickupLng, IsPickup: true})
		drops = append(drops, Stop{RequestID: m.ID, Lat: m.DropLat, Lng: m.DropLng})
	}

	route := make([]Stop, 0, 2*len(members))
	route = appendNearestNeighbor(route, pickups, pickups[0])
	route = appendNearestNeighbor(route, drops, route[len(route)-1])
	return route
}

// appendNearestNeighbor appends stops to route in nearest-neighbor order,
// starting the walk from the given origin stop.
func appendNearestNeighbor(route, stops []Stop, origin Stop) []Stop {
	remaining := make([]Stop, len(stops))
	copy(remaining, stops)
	current := origin

	for len(remaining) > 0 {
		best := 0
		bestDist := utils.DistanceKm(current.Lat, current.Lng, remaining[0].Lat, remaining[0].Lng)
		for i := 1; i < len(remaining); i++ {
			d := utils.DistanceKm(current.Lat, current.Lng, remaining[i].Lat, remaining[i].Lng)
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		current = remaining[best]
		route = append(route, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return route
}

// RouteDistanceKm sums consecutive stop-to-stop distances along the route
func RouteDistanceKm(route []Stop) float64 {
	total := 0.0
	for i := 1; i < len(route); i++ {
		total += utils.DistanceKm(route[i-1].Lat, route[i-1].Lng, route[i].Lat, route[i].Lng)
	}
	return total
}

// EstimateRouteDistance builds the shared route for the members and returns
// its total length. Recomputed whenever pool membership changes.
func EstimateRouteDistance(members []*models.RideRequest) float64 {
	return RouteDistanceKm(BuildRoute(members))
}

// DetourReport is one rider's detour outcome on a simulated route
type DetourReport struct {
	RequestID   uuid.UUID
	PoolRideKm  float64
	DirectKm    float64
	DetourKm    float64
	ToleranceKm float64
	Within      bool
}

// EvaluateDetours builds the shared route for the given members and measures
// each rider's detour against their own tolerance. A rider's pool-ride
// distance is the cumulative distance between their pickup and drop stops on
// the shared route; detour never goes negative.
func EvaluateDetours(members []*models.RideRequest) []DetourReport {
	route := BuildRoute(members)

	// cumulative[i] is the distance from the route start to stop i
	cumulative := make([]float64, len(route))
	for i := 1; i < len(route); i++ {
		cumulative[i] = cumulative[i-1] + utils.DistanceKm(route[i-1].Lat, route[i-1].Lng, route[i].Lat, route[i].Lng)
	}

	pickupAt := make(map[uuid.UUID]int, len(members))
	dropAt := make(map[uuid.UUID]int, len(members))
	for i, stop := range route {
		if stop.IsPickup {
			pickupAt[stop.RequestID] = i
		} else {
			dropAt[stop.RequestID] = i
		}
	}

	reports := make([]DetourReport, 0, len(members))
	for _, m := range members {
		poolRide := cumulative[dropAt[m.ID]] - cumulative[pickupAt[m.ID]]
		direct := utils.DistanceKm(m.PickupLat, m.PickupLng, m.DropLat, m.DropLng)
		detour := poolRide - direct
		if detour < 0 {
			detour = 0
		}
		reports = append(reports, DetourReport{
			RequestID:   m.ID,
			PoolRideKm:  poolRide,
			DirectKm:    direct,
			DetourKm:    detour,
			ToleranceKm: m.MaxDetourKm,
			Within:      detour <= m.MaxDetourKm,
		})
	}
	return reports
}

// AllWithinTolerance reports whether every member of the simulated route
// stays within their own detour tolerance.
func AllWithinTolerance(members []*models.RideRequest) bool {
	for _, report := range EvaluateDetours(members) {
		if !report.Within {
			return false
		}
	}
	return true
}
