package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoUtils_PointToPoint(t *testing.T) {
	// NH2 corridor coordinates: Delhi to Agra
	delhi := Point{Latitude: 28.7041, Longitude: 77.1025}
	agra := Point{Latitude: 27.1767, Longitude: 78.0081}

	geoUtils := NewGeoUtils()

	distance, err := geoUtils.PointToPoint(delhi, agra)
	require.NoError(t, err)

	// Great-circle distance Delhi to Agra is ~190 km
	assert.InDelta(t, 190, distance, 5, "Distance should be approximately 190km")

	// Symmetry
	reverse, err := geoUtils.PointToPoint(agra, delhi)
	require.NoError(t, err)
	assert.Equal(t, distance, reverse, "Distance should be symmetric")

	// Identical points
	zero, err := geoUtils.PointToPoint(delhi, delhi)
	require.NoError(t, err)
	assert.Zero(t, zero, "Distance from a point to itself should be 0")

	// Invalid coordinates
	invalid := Point{Latitude: 200, Longitude: -300}
	_, err = geoUtils.PointToPoint(delhi, invalid)
	assert.Error(t, err, "Should return error for invalid coordinates")
}

func TestGeoUtils_PointToPath(t *testing.T) {
	geoUtils := NewGeoUtils()

	path := []Point{
		{Latitude: 28.7041, Longitude: 77.1025}, // Delhi
		{Latitude: 28.4089, Longitude: 77.3178}, // Palwal
		{Latitude: 27.1767, Longitude: 78.0081}, // Agra
	}

	// A point sitting exactly on a path vertex
	distance, closest, err := geoUtils.PointToPath(path[1], path)
	require.NoError(t, err)
	assert.Zero(t, distance)
	assert.Equal(t, path[1], closest)

	// A point near Palwal should resolve to the Palwal vertex
	nearPalwal := Point{Latitude: 28.42, Longitude: 77.32}
	distance, closest, err = geoUtils.PointToPath(nearPalwal, path)
	require.NoError(t, err)
	assert.Less(t, distance, 5.0, "Point near Palwal should be within 5km of the path")
	assert.Equal(t, path[1], closest)

	// Empty path is an error
	_, _, err = geoUtils.PointToPath(nearPalwal, nil)
	assert.Error(t, err)
}

func TestGeoUtils_DecodePolyline(t *testing.T) {
	geoUtils := NewGeoUtils()

	// Reference polyline from the Google encoding documentation
	points, err := geoUtils.DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	expected := []Point{
		{Latitude: 38.5, Longitude: -120.2},
		{Latitude: 40.7, Longitude: -120.95},
		{Latitude: 43.252, Longitude: -126.453},
	}
	for i, want := range expected {
		assert.InDelta(t, want.Latitude, points[i].Latitude, 1e-5)
		assert.InDelta(t, want.Longitude, points[i].Longitude, 1e-5)
	}
}

func TestGeoUtils_DecodePolyline_Empty(t *testing.T) {
	geoUtils := NewGeoUtils()

	points, err := geoUtils.DecodePolyline("")
	require.NoError(t, err)
	assert.Empty(t, points, "Empty input should decode to an empty path")
}

func TestGeoUtils_PolylineRoundTrip(t *testing.T) {
	geoUtils := NewGeoUtils()

	encoded := "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	points, err := geoUtils.DecodePolyline(encoded)
	require.NoError(t, err)

	assert.Equal(t, encoded, geoUtils.EncodePolyline(points),
		"Encoding a decoded path should reproduce the original string")
}

func TestGeoUtils_Interpolate(t *testing.T) {
	geoUtils := NewGeoUtils()

	start := Point{Latitude: 28.7041, Longitude: 77.1025} // Delhi
	end := Point{Latitude: 26.8467, Longitude: 80.9462}   // Kanpur

	points := geoUtils.Interpolate(start, end, 20)
	require.Len(t, points, 22, "Should return n+2 points")
	assert.Equal(t, start, points[0])
	assert.Equal(t, end, points[len(points)-1])

	// Monotonic progression on both axes
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, points[i].Latitude, points[i-1].Latitude)
		assert.GreaterOrEqual(t, points[i].Longitude, points[i-1].Longitude)
	}
}

func TestGeoUtils_Interpolate_Zero(t *testing.T) {
	geoUtils := NewGeoUtils()

	start := Point{Latitude: 19.0760, Longitude: 72.8777}
	end := Point{Latitude: 18.5204, Longitude: 73.8567}

	points := geoUtils.Interpolate(start, end, 0)
	require.Len(t, points, 2)
	assert.Equal(t, start, points[0])
	assert.Equal(t, end, points[1])
}
