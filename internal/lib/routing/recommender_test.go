package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollwise/server/internal/lib/tolls"
)

// stubMatcher returns canned matches keyed by route summary
type stubMatcher struct {
	matches map[string][]MatchedToll
}

func (s *stubMatcher) Match(route Route, _ []tolls.Plaza, _ tolls.VehicleClass, _ float64) []MatchedToll {
	return s.matches[route.Summary]
}

func TestRecommender_Recommend(t *testing.T) {
	matcher := &stubMatcher{matches: map[string][]MatchedToll{
		"a": {{Price: 30}, {Price: 20}}, // total 50
		"b": {{Price: 30}},              // total 30
		"c": {{Price: 50}, {Price: 30}}, // total 80
	}}
	rec := NewRecommender(matcher)

	routes := []Route{
		{Summary: "a", DistanceKm: 100, DurationMin: 90},
		{Summary: "b", DistanceKm: 120, DurationMin: 80},
		{Summary: "c", DistanceKm: 90, DurationMin: 110},
	}

	result := rec.Recommend(routes, nil, 5)
	require.Len(t, result.Analyses, 3)

	assert.Equal(t, 1, result.Cheapest, "route b has the lowest total toll")
	assert.Equal(t, 30.0, result.Analyses[result.Cheapest].TotalToll)

	assert.Equal(t, 1, result.Fastest)
	assert.Equal(t, 2, result.Shortest)
	assert.Equal(t, 90.0, result.Analyses[result.Shortest].Route.DistanceKm)

	// cost/km: a=0.5, b=0.25, c=0.889
	assert.Equal(t, 1, result.MostEfficient)
	assert.InDelta(t, 0.25, result.Analyses[result.MostEfficient].CostPerKm, 1e-9)
}

func TestRecommender_TiesKeepFirstOccurrence(t *testing.T) {
	matcher := &stubMatcher{matches: map[string][]MatchedToll{}}
	rec := NewRecommender(matcher)

	routes := []Route{
		{Summary: "a", DistanceKm: 100, DurationMin: 60},
		{Summary: "b", DistanceKm: 100, DurationMin: 60},
	}

	result := rec.Recommend(routes, nil, 5)
	assert.Equal(t, 0, result.Cheapest)
	assert.Equal(t, 0, result.Fastest)
	assert.Equal(t, 0, result.Shortest)
	assert.Equal(t, 0, result.MostEfficient)
}

func TestRecommender_ZeroDistanceCostPerKm(t *testing.T) {
	matcher := &stubMatcher{matches: map[string][]MatchedToll{
		"a": {{Price: 40}},
	}}
	rec := NewRecommender(matcher)

	result := rec.Recommend([]Route{{Summary: "a", DistanceKm: 0}}, nil, 5)
	assert.Equal(t, 0.0, result.Analyses[0].CostPerKm, "cost per km for a zero-length route is defined as 0")
	assert.Equal(t, 40.0, result.Analyses[0].TotalToll)
}
