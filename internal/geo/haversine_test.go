package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{12.90, 77.60},
		{-90, 0},
		{90, 180},
		{45.5, -122.6},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// One degree of latitude on the 6371 km sphere is ~111.19 km.
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 10)

	// Bangalore office scenario: ~78 m between the zone center and a point
	// 0.0005 degrees off in both axes.
	d = DistanceMeters(12.90, 77.60, 12.9005, 77.6005)
	assert.InDelta(t, 78, d, 2)
	assert.Less(t, d, 150.0)
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	d1 := DistanceMeters(12.90, 77.60, 13.00, 77.70)
	d2 := DistanceMeters(13.00, 77.70, 12.90, 77.60)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestWithinRadius(t *testing.T) {
	// ~50 m north of the origin.
	assert.True(t, WithinRadius(0, 0, 0.00045, 0, 100))
	// ~500 m north.
	assert.False(t, WithinRadius(0, 0, 0.00449, 0, 100))
}

func TestWithinRadius_BoundaryCountsAsInside(t *testing.T) {
	d := DistanceMeters(0, 0, 0.00045, 0)
	assert.True(t, WithinRadius(0, 0, 0.00045, 0, d))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.True(t, ValidCoordinates(90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(-90.1, 0))
	assert.False(t, ValidCoordinates(0, 180.1))
	assert.False(t, ValidCoordinates(0, -180.1))
}
