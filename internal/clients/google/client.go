package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/routing"
)

// ErrNotConfigured is returned when no API key is configured. The provider
// chain treats it the same as any other adapter failure.
var ErrNotConfigured = errors.New("google: API key not configured")

// Client provides access to the Google Directions API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	geoUtils   geo.GeoUtils
}

// NewClient creates a new Google Directions API client. Credentials come from
// configuration; an empty key leaves the adapter unavailable.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		geoUtils: geo.NewGeoUtils(),
	}
}

// Name identifies this adapter in source labels and logs
func (c *Client) Name() string { return "google" }

// Available reports whether the adapter has the credentials it needs
func (c *Client) Available() bool { return c.apiKey != "" }

// FetchRoutes computes driving routes between two place names. With
// alternatives enabled, every route Google reports is normalized and
// returned.
func (c *Client) FetchRoutes(ctx context.Context, origin, destination string, alternatives bool) ([]routing.Route, error) {
	if !c.Available() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", "driving")
	params.Set("alternatives", fmt.Sprintf("%t", alternatives))
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/maps/api/directions/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var response directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Status != "OK" || len(response.Routes) == 0 {
		return nil, fmt.Errorf("directions lookup failed: status %q", response.Status)
	}

	routes := make([]routing.Route, 0, len(response.Routes))
	for _, r := range response.Routes {
		normalized, err := c.normalizeRoute(r)
		if err != nil {
			return nil, err
		}
		routes = append(routes, normalized)
	}

	return routes, nil
}

// normalizeRoute converts a Directions API route into the common Route record
func (c *Client) normalizeRoute(r directionsRoute) (routing.Route, error) {
	path, err := c.geoUtils.DecodePolyline(r.OverviewPolyline.Points)
	if err != nil {
		return routing.Route{}, fmt.Errorf("failed to decode route polyline: %w", err)
	}

	var distanceMeters, durationSeconds int
	for _, leg := range r.Legs {
		distanceMeters += leg.Distance.Value
		durationSeconds += leg.Duration.Value
	}

	route := routing.Route{
		Path:        path,
		DistanceKm:  float64(distanceMeters) / 1000,
		DurationMin: float64(durationSeconds) / 60,
		Summary:     r.Summary,
		Source: routing.RouteSource{
			Kind:     routing.SourceLive,
			Provider: c.Name(),
		},
	}

	if len(r.Legs) > 0 {
		route.Origin = &geo.Point{
			Latitude:  r.Legs[0].StartLocation.Lat,
			Longitude: r.Legs[0].StartLocation.Lng,
		}
		last := r.Legs[len(r.Legs)-1]
		route.Destination = &geo.Point{
			Latitude:  last.EndLocation.Lat,
			Longitude: last.EndLocation.Lng,
		}
	}

	return route, nil
}

// directionsResponse represents the Directions API response structure
type directionsResponse struct {
	Status string            `json:"status"`
	Routes []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string           `json:"summary"`
	OverviewPolyline overviewPolyline `json:"overview_polyline"`
	Legs             []directionsLeg  `json:"legs"`
}

type overviewPolyline struct {
	Points string `json:"points"`
}

type directionsLeg struct {
	Distance      textValue `json:"distance"`
	Duration      textValue `json:"duration"`
	StartLocation latLng    `json:"start_location"`
	EndLocation   latLng    `json:"end_location"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
