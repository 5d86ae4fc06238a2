package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollwise/server/internal/lib/routing"
)

func TestRouteCache_SetGet(t *testing.T) {
	c := NewRouteCache(time.Minute)

	key := Key("Delhi", "Kanpur", false)
	c.Set(key, []routing.Route{{Summary: "NH2", DistanceKm: 480}})

	routes, ok := c.Get(key)
	require.True(t, ok)
	require.Len(t, routes, 1)
	assert.Equal(t, "NH2", routes[0].Summary)

	_, ok = c.Get(Key("Delhi", "Mumbai", false))
	assert.False(t, ok)
}

func TestRouteCache_Expiry(t *testing.T) {
	c := NewRouteCache(10 * time.Millisecond)

	key := Key("Delhi", "Kanpur", false)
	c.Set(key, []routing.Route{{Summary: "NH2"}})
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(key)
	assert.False(t, ok)

	assert.Equal(t, 1, c.CleanupStale())
	assert.Zero(t, c.Len())
}

func TestKey_Normalization(t *testing.T) {
	assert.Equal(t, Key("delhi", "kanpur", false), Key("  Delhi ", "Kanpur", false))
	assert.NotEqual(t, Key("Delhi", "Kanpur", false), Key("Delhi", "Kanpur", true))
}
