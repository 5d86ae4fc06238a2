package routing

import (
	"sort"

	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/tolls"
)

// sparsePathIntermediates is the number of interpolated points inserted when a
// provider returns only route endpoints. Densifying the path keeps vertex
// distance checks accurate at the matching threshold.
const sparsePathIntermediates = 20

// tollMatcher implements the TollMatcher interface
type tollMatcher struct {
	geoUtils geo.GeoUtils
}

// NewTollMatcher creates a new TollMatcher implementation
func NewTollMatcher() TollMatcher {
	return &tollMatcher{
		geoUtils: geo.NewGeoUtils(),
	}
}

// Match returns the plazas within thresholdKm of the route path, sorted
// ascending by distance from the route. Each plaza appears at most once.
func (m *tollMatcher) Match(route Route, plazas []tolls.Plaza, class tolls.VehicleClass, thresholdKm float64) []MatchedToll {
	path := route.Path
	if len(path) == 2 {
		path = m.geoUtils.Interpolate(path[0], path[1], sparsePathIntermediates)
	}
	if len(path) == 0 {
		return []MatchedToll{}
	}

	matched := make([]MatchedToll, 0)
	for _, plaza := range plazas {
		point := geo.Point{Latitude: plaza.Latitude, Longitude: plaza.Longitude}

		distance, closest, err := m.geoUtils.PointToPath(point, path)
		if err != nil {
			continue // Skip plazas with invalid coordinates
		}

		if distance <= thresholdKm {
			matched = append(matched, MatchedToll{
				Plaza:               plaza,
				DistanceFromRouteKm: distance,
				ClosestPoint:        closest,
				Price:               tolls.ResolvePrice(plaza, class),
			})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DistanceFromRouteKm < matched[j].DistanceFromRouteKm
	})

	return matched
}
