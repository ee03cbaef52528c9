package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skycab/ridepool/internal/pkg/models"
)

// requestAt builds a request with all pickups at the airport and the drop
// offset south along the same meridian; 0.01 degrees of latitude is roughly
// 1.1 km.
const (
	airportLat = 13.1986
	airportLng = 77.7066
)

func requestAt(dropLatOffset, maxDetourKm float64) *models.RideRequest {
	return &models.RideRequest{
		ID:          uuid.New(),
		PickupLat:   airportLat,
		PickupLng:   airportLng,
		DropLat:     airportLat + dropLatOffset,
		DropLng:     airportLng,
		MaxDetourKm: maxDetourKm,
	}
}

func TestBuildRouteOrdersPickupsThenDrops(t *testing.T) {
	a := requestAt(-0.10, 10)
	b := requestAt(-0.05, 10)

	route := BuildRoute([]*models.RideRequest{a, b})

	assert.Len(t, route, 4)
	assert.True(t, route[0].IsPickup)
	assert.True(t, route[1].IsPickup)
	assert.False(t, route[2].IsPickup)
	assert.False(t, route[3].IsPickup)

	// drops walk outward from the airport, so the nearer drop comes first
	assert.Equal(t, b.ID, route[2].RequestID)
	assert.Equal(t, a.ID, route[3].RequestID)
}

func TestBuildRouteEmpty(t *testing.T) {
	assert.Nil(t, BuildRoute(nil))
	assert.Equal(t, 0.0, EstimateRouteDistance(nil))
}

func TestRouteDistanceSingleRiderEqualsDirect(t *testing.T) {
	a := requestAt(-0.10, 10)

	total := EstimateRouteDistance([]*models.RideRequest{a})
	// ~11.1 km straight down the meridian
	assert.InDelta(t, 11.1, total, 0.2)
}

func TestEvaluateDetoursSameCorridor(t *testing.T) {
	a := requestAt(-0.10, 3)
	b := requestAt(-0.101, 3)

	reports := EvaluateDetours([]*models.RideRequest{a, b})

	assert.Len(t, reports, 2)
	for _, r := range reports {
		assert.True(t, r.Within, "rider %s detour %.2f", r.RequestID, r.DetourKm)
		assert.LessOrEqual(t, r.DetourKm, 0.5)
	}
}

func TestDetourNeverNegative(t *testing.T) {
	a := requestAt(-0.10, 3)
	b := requestAt(-0.05, 3)

	for _, r := range EvaluateDetours([]*models.RideRequest{a, b}) {
		assert.GreaterOrEqual(t, r.DetourKm, 0.0)
	}
}

func TestThirdJoinerViolatesFirstRiderTolerance(t *testing.T) {
	// a and b ride the same southbound corridor
	a := requestAt(-0.05, 3)
	b := requestAt(-0.052, 3)

	// pair is fine on its own
	assert.True(t, AllWithinTolerance([]*models.RideRequest{a, b}))

	// c drops north of the airport, and being the closest drop it gets
	// visited first, dragging a and b the wrong way
	c := requestAt(0.04, 20)

	members := []*models.RideRequest{a, b, c}
	assert.False(t, AllWithinTolerance(members))

	reports := EvaluateDetours(members)
	byID := map[uuid.UUID]DetourReport{}
	for _, r := range reports {
		byID[r.RequestID] = r
	}

	// the newcomer is comfortably within its own generous tolerance,
	// the violation belongs to the earlier riders
	assert.True(t, byID[c.ID].Within)
	assert.False(t, byID[a.ID].Within)
	assert.Greater(t, byID[a.ID].DetourKm, 3.0)
}
