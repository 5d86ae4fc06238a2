package routing

import (
	"sync"

	"github.com/samber/lo"

	"github.com/tollwise/server/internal/lib/tolls"
)

// Recommender analyzes route alternatives and selects the best route under
// each ranking criterion
type Recommender interface {
	Recommend(routes []Route, plazas []tolls.Plaza, thresholdKm float64) Recommendation
}

// recommender implements the Recommender interface
type recommender struct {
	matcher TollMatcher
}

// NewRecommender creates a Recommender backed by the given matcher
func NewRecommender(matcher TollMatcher) Recommender {
	return &recommender{matcher: matcher}
}

// Recommend builds a RouteAnalysis per route and picks the cheapest, fastest,
// shortest and most cost-efficient alternatives. Ranking is priced on the
// car_single rate for every route so alternatives compare on a single basis;
// the caller still reports class-specific prices per toll. Per-route analyses
// are independent and computed concurrently.
func (r *recommender) Recommend(routes []Route, plazas []tolls.Plaza, thresholdKm float64) Recommendation {
	analyses := make([]RouteAnalysis, len(routes))

	var wg sync.WaitGroup
	for i, route := range routes {
		wg.Add(1)
		go func(i int, route Route) {
			defer wg.Done()
			analyses[i] = r.analyze(route, plazas, thresholdKm)
		}(i, route)
	}
	wg.Wait()

	return Recommendation{
		Analyses: analyses,
		Cheapest: argmin(analyses, func(a RouteAnalysis) float64 {
			return a.TotalToll
		}),
		Fastest: argmin(analyses, func(a RouteAnalysis) float64 {
			return a.Route.DurationMin
		}),
		Shortest: argmin(analyses, func(a RouteAnalysis) float64 {
			return a.Route.DistanceKm
		}),
		MostEfficient: argmin(analyses, func(a RouteAnalysis) float64 {
			return a.CostPerKm
		}),
	}
}

// analyze computes toll totals for a single route on the car_single basis
func (r *recommender) analyze(route Route, plazas []tolls.Plaza, thresholdKm float64) RouteAnalysis {
	matched := r.matcher.Match(route, plazas, tolls.CarSingle, thresholdKm)

	totalToll := lo.SumBy(matched, func(t MatchedToll) float64 {
		return t.Price
	})

	costPerKm := 0.0
	if route.DistanceKm > 0 {
		costPerKm = totalToll / route.DistanceKm
	}

	return RouteAnalysis{
		Route:     route,
		Tolls:     matched,
		TotalToll: totalToll,
		CostPerKm: costPerKm,
	}
}

// argmin returns the index of the first minimal element
func argmin(analyses []RouteAnalysis, metric func(RouteAnalysis) float64) int {
	best := 0
	for i := 1; i < len(analyses); i++ {
		if metric(analyses[i]) < metric(analyses[best]) {
			best = i
		}
	}
	return best
}
