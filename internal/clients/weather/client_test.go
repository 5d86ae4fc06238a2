package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollwise/server/internal/lib/geo"
)

const weatherFixture = `{
	"weather": [{"description": "haze"}],
	"main": {"temp": 31.5, "humidity": 68},
	"wind": {"speed": 3.6}
}`

func TestClient_GetCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(weatherFixture))
	}))
	defer server.Close()

	client := NewClient("test-key", 2*time.Second)
	client.baseURL = server.URL

	conditions, err := client.GetCurrent(context.Background(), geo.Point{Latitude: 28.7041, Longitude: 77.1025})
	require.NoError(t, err)
	assert.Equal(t, 31.5, conditions.TempC)
	assert.Equal(t, "haze", conditions.Description)
	assert.Equal(t, 68, conditions.Humidity)
}

func TestClient_GetCurrent_NotConfigured(t *testing.T) {
	client := NewClient("", 2*time.Second)

	_, err := client.GetCurrent(context.Background(), geo.Point{})
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestClient_GetCurrent_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", 2*time.Second)
	client.baseURL = server.URL

	_, err := client.GetCurrent(context.Background(), geo.Point{})
	assert.ErrorContains(t, err, "invalid API key")
}
