// Package geo provides great-circle math for catalog coordinates.
package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance in kilometres
// between two points given in floating-point degrees. Coordinate ranges are
// not validated; out-of-range input produces a mathematically defined but
// meaningless result.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
