package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tollwise/server/internal/cache"
	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/routing"
)

type stubProvider struct {
	name      string
	available bool
	routes    []routing.Route
	err       error
	calls     int
}

func (s *stubProvider) Name() string    { return s.name }
func (s *stubProvider) Available() bool { return s.available }

func (s *stubProvider) FetchRoutes(_ context.Context, _, _ string, _ bool) ([]routing.Route, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.routes, nil
}

func liveRoute(provider string, distanceKm float64) routing.Route {
	return routing.Route{
		Path: []geo.Point{
			{Latitude: 28.7041, Longitude: 77.1025},
			{Latitude: 26.8467, Longitude: 80.9462},
		},
		DistanceKm:  distanceKm,
		DurationMin: distanceKm * 0.8,
		Source:      routing.RouteSource{Kind: routing.SourceLive, Provider: provider},
	}
}

func newTestChain(providers ...RouteProvider) *Chain {
	return NewChain(providers, NewSyntheticGenerator(), cache.NewRouteCache(time.Minute), 2*time.Second, zap.NewNop())
}

func TestChainResolve_FirstAvailableProviderWins(t *testing.T) {
	first := &stubProvider{name: "google", available: true, routes: []routing.Route{liveRoute("google", 500)}}
	second := &stubProvider{name: "openroute", available: true, routes: []routing.Route{liveRoute("openroute", 520)}}

	routes := newTestChain(first, second).Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})

	require.Len(t, routes, 1)
	assert.Equal(t, "google", routes[0].Source.Provider)
	assert.Equal(t, 0, second.calls)
}

func TestChainResolve_SkipsUnconfiguredProviders(t *testing.T) {
	first := &stubProvider{name: "google", available: false}
	second := &stubProvider{name: "openroute", available: true, routes: []routing.Route{liveRoute("openroute", 520)}}

	routes := newTestChain(first, second).Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})

	require.Len(t, routes, 1)
	assert.Equal(t, "openroute", routes[0].Source.Provider)
	assert.Equal(t, 0, first.calls)
}

func TestChainResolve_FailedProviderFallsThrough(t *testing.T) {
	first := &stubProvider{name: "google", available: true, err: errors.New("upstream 500")}
	second := &stubProvider{name: "openroute", available: true, routes: []routing.Route{liveRoute("openroute", 520)}}

	routes := newTestChain(first, second).Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})

	require.Len(t, routes, 1)
	assert.Equal(t, "openroute", routes[0].Source.Provider)
	assert.Equal(t, 1, first.calls)
}

func TestChainResolve_PreferredProviderMovesToFront(t *testing.T) {
	google := &stubProvider{name: "google", available: true, routes: []routing.Route{liveRoute("google", 500)}}
	openroute := &stubProvider{name: "openroute", available: true, routes: []routing.Route{liveRoute("openroute", 520)}}

	routes := newTestChain(google, openroute).Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{
		PreferredProvider: "openroute",
	})

	require.Len(t, routes, 1)
	assert.Equal(t, "openroute", routes[0].Source.Provider)
	assert.Equal(t, 0, google.calls)
}

func TestChainResolve_SyntheticFallbackWhenAllFail(t *testing.T) {
	first := &stubProvider{name: "google", available: true, err: errors.New("quota exceeded")}
	second := &stubProvider{name: "openroute", available: false}

	routes := newTestChain(first, second).Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})

	require.Len(t, routes, 1)
	assert.Equal(t, routing.SourceSynthetic, routes[0].Source.Kind)
	assert.NotEmpty(t, routes[0].Path)
}

func TestChainResolve_NoProvidersAtAll(t *testing.T) {
	routes := newTestChain().Resolve(context.Background(), "Delhi", "Mumbai", ResolveOptions{})

	require.Len(t, routes, 1)
	assert.Equal(t, routing.SourceSynthetic, routes[0].Source.Kind)
}

func TestChainResolve_CachesLiveResults(t *testing.T) {
	provider := &stubProvider{name: "google", available: true, routes: []routing.Route{liveRoute("google", 500)}}
	chain := newTestChain(provider)

	chain.Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})
	chain.Resolve(context.Background(), "delhi ", " KANPUR", ResolveOptions{})

	assert.Equal(t, 1, provider.calls, "second call should be served from cache")
}

func TestChainResolve_SyntheticRoutesNotCached(t *testing.T) {
	failing := &stubProvider{name: "google", available: true, err: errors.New("down")}
	chain := newTestChain(failing)

	chain.Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})
	chain.Resolve(context.Background(), "Delhi", "Kanpur", ResolveOptions{})

	assert.Equal(t, 2, failing.calls, "synthetic fallback must not mask provider recovery")
}
