package services

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tollwise/server/internal/clients/weather"
	"github.com/tollwise/server/internal/dataset"
	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/routing"
	"github.com/tollwise/server/internal/lib/tolls"
)

// sparsePathIntermediates mirrors the matcher's densification so candidate
// prefiltering covers the same points the matcher will test.
const sparsePathIntermediates = 20

// TollService orchestrates route resolution, toll matching, pricing and
// ranking for the HTTP boundary.
type TollService struct {
	chain       *Chain
	matcher     routing.TollMatcher
	recommender routing.Recommender
	store       *dataset.Store
	loader      *dataset.Loader
	weather     *weather.Client
	geoUtils    geo.GeoUtils

	defaultThresholdKm float64
	log                *zap.Logger
}

// NewTollService wires the resolution chain, matcher and dataset store into
// the request-serving service
func NewTollService(chain *Chain, store *dataset.Store, loader *dataset.Loader, weatherClient *weather.Client, defaultThresholdKm float64, log *zap.Logger) *TollService {
	matcher := routing.NewTollMatcher()
	return &TollService{
		chain:              chain,
		matcher:            matcher,
		recommender:        routing.NewRecommender(matcher),
		store:              store,
		loader:             loader,
		weather:            weatherClient,
		geoUtils:           geo.NewGeoUtils(),
		defaultThresholdKm: defaultThresholdKm,
		log:                log,
	}
}

// RouteQuery carries the validated parameters of a toll calculation request
type RouteQuery struct {
	Origin            string
	Destination       string
	VehicleClass      tolls.VehicleClass
	PreferredProvider string
	MaxDistanceKm     float64
}

// RouteTollsResult is the priced single-route answer
type RouteTollsResult struct {
	Route     routing.Route
	Tolls     []routing.MatchedToll
	TotalToll float64
	Quality   dataset.Quality
}

// RouteTolls resolves one route and prices every toll on it for the requested
// vehicle class
func (s *TollService) RouteTolls(ctx context.Context, q RouteQuery) RouteTollsResult {
	routes := s.chain.Resolve(ctx, q.Origin, q.Destination, ResolveOptions{
		PreferredProvider: q.PreferredProvider,
	})
	route := routes[0]

	snap := s.store.Snapshot()
	threshold := s.threshold(q.MaxDistanceKm)

	candidates := snap.CandidatesNearPath(s.densify(route.Path), threshold)
	matched := s.matcher.Match(route, candidates, q.VehicleClass, threshold)

	return RouteTollsResult{
		Route: route,
		Tolls: matched,
		TotalToll: lo.SumBy(matched, func(t routing.MatchedToll) float64 {
			return t.Price
		}),
		Quality: snap.Quality,
	}
}

// OptimizedResult pairs ranked alternatives with the dataset quality marker
type OptimizedResult struct {
	Recommendation routing.Recommendation
	VehicleClass   tolls.VehicleClass
	Quality        dataset.Quality
}

// OptimizedRoutes resolves route alternatives and ranks them by cost, time,
// distance and cost-efficiency. Ranking is priced on the car_single basis;
// the handler reports class-specific per-toll prices separately.
func (s *TollService) OptimizedRoutes(ctx context.Context, q RouteQuery) OptimizedResult {
	routes := s.chain.Resolve(ctx, q.Origin, q.Destination, ResolveOptions{
		PreferredProvider: q.PreferredProvider,
		Alternatives:      true,
	})

	snap := s.store.Snapshot()
	threshold := s.threshold(q.MaxDistanceKm)

	seen := make(map[int]struct{})
	var candidates []tolls.Plaza
	for _, route := range routes {
		for _, p := range snap.CandidatesNearPath(s.densify(route.Path), threshold) {
			if _, ok := seen[p.ID]; !ok {
				seen[p.ID] = struct{}{}
				candidates = append(candidates, p)
			}
		}
	}

	return OptimizedResult{
		Recommendation: s.recommender.Recommend(routes, candidates, threshold),
		VehicleClass:   q.VehicleClass,
		Quality:        snap.Quality,
	}
}

// TrafficInfo decorates a resolved route with current weather at both
// endpoints. Weather is best-effort: a missing key or upstream failure just
// omits the section.
type TrafficInfo struct {
	Route              routing.Route
	OriginWeather      *weather.Conditions
	DestinationWeather *weather.Conditions
}

// Traffic resolves the route and attaches endpoint weather when available
func (s *TollService) Traffic(ctx context.Context, q RouteQuery) TrafficInfo {
	routes := s.chain.Resolve(ctx, q.Origin, q.Destination, ResolveOptions{
		PreferredProvider: q.PreferredProvider,
	})
	route := routes[0]

	info := TrafficInfo{Route: route}
	if s.weather == nil || !s.weather.Available() || len(route.Path) == 0 {
		return info
	}

	if conditions, err := s.weather.GetCurrent(ctx, route.Path[0]); err == nil {
		info.OriginWeather = conditions
	} else {
		s.log.Warn("origin weather lookup failed", zap.Error(err))
	}
	if conditions, err := s.weather.GetCurrent(ctx, route.Path[len(route.Path)-1]); err == nil {
		info.DestinationWeather = conditions
	} else {
		s.log.Warn("destination weather lookup failed", zap.Error(err))
	}

	return info
}

// Snapshot exposes the current dataset snapshot for the plaza endpoints
func (s *TollService) Snapshot() *dataset.Snapshot {
	return s.store.Snapshot()
}

// Reload loads a fresh dataset snapshot and installs it atomically. On
// failure the previous snapshot stays in place.
func (s *TollService) Reload() (*dataset.Snapshot, error) {
	snap, err := s.loader.Load()
	if err != nil {
		return nil, err
	}
	s.store.Swap(snap)
	return snap, nil
}

func (s *TollService) threshold(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	return s.defaultThresholdKm
}

// densify expands endpoint-only paths the same way the matcher will, so the
// spatial prefilter sees every point that will be distance-tested
func (s *TollService) densify(path []geo.Point) []geo.Point {
	if len(path) == 2 {
		return s.geoUtils.Interpolate(path[0], path[1], sparsePathIntermediates)
	}
	return path
}
