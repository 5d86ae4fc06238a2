package openroute

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/routing"
)

// ErrNotConfigured is returned when no API key is configured; the adapter
// fails closed rather than falling back to shared credentials.
var ErrNotConfigured = errors.New("openroute: API key not configured")

// userAgent identifies this service to Nominatim, which rejects anonymous
// clients.
const userAgent = "tollwise-server/1.0"

// Client resolves place names through OpenStreetMap Nominatim and routes
// between them with the OpenRouteService directions API.
type Client struct {
	apiKey       string
	baseURL      string
	nominatimURL string
	httpClient   *http.Client
}

// NewClient creates a new OpenRouteService client
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		nominatimURL: "https://nominatim.openstreetmap.org",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies this adapter in source labels and logs
func (c *Client) Name() string { return "openroute" }

// Available reports whether the adapter has the credentials it needs
func (c *Client) Available() bool { return c.apiKey != "" }

// FetchRoutes geocodes both endpoints and requests a driving route between
// them. OpenRouteService reports a single route; the alternatives flag is
// ignored.
func (c *Client) FetchRoutes(ctx context.Context, origin, destination string, _ bool) ([]routing.Route, error) {
	if !c.Available() {
		return nil, ErrNotConfigured
	}

	originCoords, err := c.Geocode(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode origin: %w", err)
	}
	destCoords, err := c.Geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode destination: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("start", fmt.Sprintf("%f,%f", originCoords.Longitude, originCoords.Latitude))
	params.Set("end", fmt.Sprintf("%f,%f", destCoords.Longitude, destCoords.Latitude))

	requestURL := fmt.Sprintf("%s/v2/directions/driving-car?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/geo+json")

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

	if len(response.Features) == 0 {
		return nil, errors.New("no route found in response")
	}

	feature := response.Features[0]
	path := make([]geo.Point, 0, len(feature.Geometry.Coordinates))
	for _, coord := range feature.Geometry.Coordinates {
		if len(coord) < 2 {
			continue
		}
		// GeoJSON order is longitude, latitude
		path = append(path, geo.Point{Latitude: coord[1], Longitude: coord[0]})
	}

	route := routing.Route{
		Path:        path,
		DistanceKm:  feature.Properties.Summary.Distance / 1000,
		DurationMin: feature.Properties.Summary.Duration / 60,
		Origin:      originCoords,
		Destination: destCoords,
		Source: routing.RouteSource{
			Kind:     routing.SourceLive,
			Provider: c.Name(),
		},
	}

	return []routing.Route{route}, nil
}

// Geocode resolves a place name to coordinates via Nominatim
func (c *Client) Geocode(ctx context.Context, place string) (*geo.Point, error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "in")

	requestURL := fmt.Sprintf("%s/search?%s", c.nominatimURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("geocoding error %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("location %q not found", place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	return &geo.Point{Latitude: lat, Longitude: lon}, nil
}

// directionsResponse represents the GeoJSON directions response
type directionsResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry   geometry   `json:"geometry"`
	Properties properties `json:"properties"`
}

type geometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type properties struct {
	Summary summary `json:"summary"`
}

type summary struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}

// nominatimResult represents a single Nominatim search hit
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
