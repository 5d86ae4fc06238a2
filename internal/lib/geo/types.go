package geo

// Point represents a geographic coordinate in degrees (WGS84)
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// GeoUtils interface defines geographic calculation utilities
type GeoUtils interface {
	// Calculate great-circle distance between two points in kilometers
	PointToPoint(p1, p2 Point) (float64, error)

	// Calculate minimum distance from a point to a path, returning the
	// distance in kilometers and the closest point on the path
	PointToPath(point Point, path []Point) (float64, Point, error)

	// Decode Google encoded polyline string to a point sequence
	DecodePolyline(encoded string) ([]Point, error)

	// Encode a point sequence to a Google encoded polyline string
	EncodePolyline(points []Point) string

	// Produce start + n evenly spaced intermediates + end via linear interpolation
	Interpolate(start, end Point, n int) []Point
}

// NewGeoUtils is implemented in geo.go
