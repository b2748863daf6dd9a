// Package geo provides great-circle distance math for geofence checks.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for all distance
// computations.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance in meters
// between two points given in decimal degrees.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinRadius reports whether the point (lat, lon) lies within radiusMeters
// of the center. A point exactly on the boundary counts as inside.
func WithinRadius(centerLat, centerLon, lat, lon float64, radiusMeters float64) bool {
	return DistanceMeters(centerLat, centerLon, lat, lon) <= radiusMeters
}

// ValidCoordinates reports whether lat/lon form a valid WGS 84 coordinate
// pair.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
