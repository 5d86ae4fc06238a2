package routing

import (
	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/tolls"
)

// SourceKind distinguishes live provider data from locally fabricated routes
type SourceKind string

const (
	SourceLive        SourceKind = "live"
	SourceSynthetic   SourceKind = "synthetic"
	SourceUnavailable SourceKind = "unavailable"
)

// RouteSource tags every route with where it came from, so callers can tell
// real provider data from fallback output instead of inferring it from a
// free-text label.
type RouteSource struct {
	Kind     SourceKind `json:"kind"`
	Provider string     `json:"provider,omitempty"`
}

// Label returns the human-readable data source identifier
func (s RouteSource) Label() string {
	switch s.Kind {
	case SourceLive:
		return s.Provider
	case SourceSynthetic:
		return "synthetic"
	default:
		return "unavailable"
	}
}

// Route represents a normalized route from any provider or the synthetic
// generator. Produced fresh per request and never persisted.
type Route struct {
	Path        []geo.Point `json:"path"`
	DistanceKm  float64     `json:"distance_km"`
	DurationMin float64     `json:"duration_min"`
	Origin      *geo.Point  `json:"origin,omitempty"`
	Destination *geo.Point  `json:"destination,omitempty"`
	Summary     string      `json:"summary,omitempty"`
	Source      RouteSource `json:"source"`
}

// MatchedToll is a plaza that lies within the matching threshold of a route,
// annotated with its distance from the route and the resolved price for the
// requested vehicle class.
type MatchedToll struct {
	tolls.Plaza
	DistanceFromRouteKm float64   `json:"distance_from_route"`
	ClosestPoint        geo.Point `json:"closest_point"`
	Price               float64   `json:"price"`
}

// RouteAnalysis pairs a route with its matched tolls and derived cost metrics
type RouteAnalysis struct {
	Route     Route         `json:"route"`
	Tolls     []MatchedToll `json:"tolls"`
	TotalToll float64       `json:"total_toll"`
	CostPerKm float64       `json:"cost_per_km"`
}

// Recommendation ranks route alternatives under four independent criteria.
// Each field is an index into Analyses; ties go to the first occurrence.
type Recommendation struct {
	Analyses      []RouteAnalysis `json:"analyses"`
	Cheapest      int             `json:"cheapest"`
	Fastest       int             `json:"fastest"`
	Shortest      int             `json:"shortest"`
	MostEfficient int             `json:"most_efficient"`
}

// TollMatcher finds toll plazas within a distance threshold of a route
type TollMatcher interface {
	// Match returns the plazas within thresholdKm of the route path, priced
	// for the given vehicle class and sorted ascending by distance
	Match(route Route, plazas []tolls.Plaza, class tolls.VehicleClass, thresholdKm float64) []MatchedToll
}

// NewTollMatcher is implemented in matcher.go
