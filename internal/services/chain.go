package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tollwise/server/internal/cache"
	"github.com/tollwise/server/internal/lib/routing"
)

// RouteProvider is a routing data source adapter. Adapters normalize their
// provider's response into common Route records or return an error; the chain
// treats any error as "this adapter unavailable".
type RouteProvider interface {
	Name() string
	Available() bool
	FetchRoutes(ctx context.Context, origin, destination string, alternatives bool) ([]routing.Route, error)
}

// ResolveOptions carries the per-request routing hints
type ResolveOptions struct {
	PreferredProvider string
	Alternatives      bool
}

// Chain tries configured providers in priority order and degrades to the
// synthetic generator when all of them fail. It never returns an empty
// result: the caller distinguishes degraded output by the route's Source tag.
type Chain struct {
	providers []RouteProvider
	synthetic *SyntheticGenerator
	cache     *cache.RouteCache
	timeout   time.Duration
	log       *zap.Logger
}

// NewChain creates a provider resolution chain. Providers are tried in the
// order given; timeout bounds each adapter call so one unresponsive provider
// cannot stall the fallback sequence.
func NewChain(providers []RouteProvider, synthetic *SyntheticGenerator, routeCache *cache.RouteCache, timeout time.Duration, log *zap.Logger) *Chain {
	return &Chain{
		providers: providers,
		synthetic: synthetic,
		cache:     routeCache,
		timeout:   timeout,
		log:       log,
	}
}

// Resolve obtains one or more routes for an origin/destination pair. Adapter
// failures are logged and absorbed; the chain always returns at least one
// route.
func (c *Chain) Resolve(ctx context.Context, origin, destination string, opts ResolveOptions) []routing.Route {
	key := cache.Key(origin, destination, opts.Alternatives)
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	for _, provider := range c.ordered(opts.PreferredProvider) {
		if !provider.Available() {
			c.log.Debug("routing provider not configured, skipping",
				zap.String("provider", provider.Name()))
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		routes, err := provider.FetchRoutes(callCtx, origin, destination, opts.Alternatives)
		cancel()

		if err != nil {
			c.log.Warn("routing provider failed",
				zap.String("provider", provider.Name()),
				zap.String("origin", origin),
				zap.String("destination", destination),
				zap.Error(err))
			continue
		}
		if len(routes) == 0 {
			c.log.Warn("routing provider returned no routes",
				zap.String("provider", provider.Name()))
			continue
		}

		c.cache.Set(key, routes)
		return routes
	}

	c.log.Info("all routing providers unavailable, generating synthetic route",
		zap.String("origin", origin),
		zap.String("destination", destination))

	return []routing.Route{c.synthetic.Generate(origin, destination)}
}

// ordered returns the provider list with the preferred provider, if named,
// moved to the front
func (c *Chain) ordered(preferred string) []RouteProvider {
	if preferred == "" {
		return c.providers
	}

	ordered := make([]RouteProvider, 0, len(c.providers))
	for _, p := range c.providers {
		if p.Name() == preferred {
			ordered = append(ordered, p)
		}
	}
	for _, p := range c.providers {
		if p.Name() != preferred {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
