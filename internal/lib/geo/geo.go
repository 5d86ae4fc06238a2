package geo

import (
	"errors"
	"math"

	"github.com/twpayne/go-polyline"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// geoUtils implements the GeoUtils interface
type geoUtils struct{}

// NewGeoUtils creates a new GeoUtils implementation
func NewGeoUtils() GeoUtils {
	return &geoUtils{}
}

// PointToPoint calculates great-circle distance between two points in
// kilometers using the haversine formula
func (g *geoUtils) PointToPoint(p1, p2 Point) (float64, error) {
	if !isValidCoordinate(p1) || !isValidCoordinate(p2) {
		return 0, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}

	if p1.Latitude == p2.Latitude && p1.Longitude == p2.Longitude {
		return 0, nil
	}

	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	dlat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	dlon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// PointToPath calculates the minimum distance from a point to any vertex of a
// path. Toll plazas sit on the road itself, so vertex distance at provider
// polyline density is within the matching tolerance; sparse two-point paths
// are densified by the caller before matching.
func (g *geoUtils) PointToPath(point Point, path []Point) (float64, Point, error) {
	if !isValidCoordinate(point) {
		return 0, Point{}, errors.New("invalid point coordinates")
	}
	if len(path) == 0 {
		return 0, Point{}, errors.New("path has no points")
	}

	minDistance := math.Inf(1)
	var closest Point

	for _, p := range path {
		distance, err := g.PointToPoint(point, p)
		if err != nil {
			continue // Skip invalid path points
		}
		if distance < minDistance {
			minDistance = distance
			closest = p
		}
	}

	if math.IsInf(minDistance, 1) {
		return 0, Point{}, errors.New("path has no valid points")
	}

	return minDistance, closest, nil
}

// DecodePolyline decodes a Google encoded polyline string to a point sequence.
// An empty input yields an empty path rather than an error.
func (g *geoUtils) DecodePolyline(encoded string) ([]Point, error) {
	if encoded == "" {
		return []Point{}, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.New("failed to decode polyline: " + err.Error())
	}

	points := make([]Point, len(coords))
	for i, coord := range coords {
		points[i] = Point{
			Latitude:  coord[0],
			Longitude: coord[1],
		}

		if !isValidCoordinate(points[i]) {
			return nil, errors.New("decoded polyline contains invalid coordinates")
		}
	}

	return points, nil
}

// EncodePolyline encodes a point sequence to a Google encoded polyline string
func (g *geoUtils) EncodePolyline(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Latitude, p.Longitude}
	}

	return string(polyline.EncodeCoords(coords))
}

// Interpolate returns start, n evenly spaced intermediate points, and end.
// Interpolation is linear per axis; at matching tolerances over road-length
// segments the deviation from the great circle is negligible.
func (g *geoUtils) Interpolate(start, end Point, n int) []Point {
	if n < 0 {
		n = 0
	}

	points := make([]Point, 0, n+2)
	points = append(points, start)

	latStep := (end.Latitude - start.Latitude) / float64(n+1)
	lngStep := (end.Longitude - start.Longitude) / float64(n+1)

	for i := 1; i <= n; i++ {
		points = append(points, Point{
			Latitude:  start.Latitude + latStep*float64(i),
			Longitude: start.Longitude + lngStep*float64(i),
		})
	}

	return append(points, end)
}

// isValidCoordinate validates latitude and longitude values
func isValidCoordinate(point Point) bool {
	return point.Latitude >= -90 && point.Latitude <= 90 &&
		point.Longitude >= -180 && point.Longitude <= 180
}
