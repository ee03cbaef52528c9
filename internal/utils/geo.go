package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/skycab/ridepool/internal/pkg/models"
)

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm calculates the great-circle distance between two coordinates
// in kilometers using the Haversine formula.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180.0
	rLng1 := lng1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLng2 := lng2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLng := rLng2 - rLng1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// CalculateDistance calculates the distance between two points in kilometers
func CalculateDistance(point1, point2 GeoPoint) float64 {
	return DistanceKm(point1.Latitude, point1.Longitude, point2.Latitude, point2.Longitude)
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
