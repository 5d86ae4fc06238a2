package weather

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
)

// ErrNotConfigured is returned when no API key is configured
var ErrNotConfigured = errors.New("weather: API key not configured")

// Client provides access to the OpenWeatherMap current-conditions API.
// Weather is a pass-through decoration on route responses; failures here
// never fail a request.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new OpenWeatherMap client
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Available reports whether the client has the credentials it needs
func (c *Client) Available() bool { return c.apiKey != "" }

// Conditions is the subset of current weather reported alongside routes
type Conditions struct {
	TempC       float64 `json:"temp_c"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Humidity    int     `json:"humidity"`
}

// GetCurrent retrieves current conditions for a coordinate
func (c *Client) GetCurrent(ctx context.Context, point geo.Point) (*Conditions, error) {
	if !c.Available() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.6f", point.Latitude))
	params.Set("lon", fmt.Sprintf("%.6f", point.Longitude))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	requestURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.New("invalid API key")
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var response currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	conditions := &Conditions{
		TempC:     response.Main.Temp,
		WindSpeed: response.Wind.Speed,
		Humidity:  response.Main.Humidity,
	}
	if len(response.Weather) > 0 {
		conditions.Description = response.Weather[0].Description
	}

	return conditions, nil
}

// currentWeatherResponse represents the OpenWeatherMap response structure
type currentWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}
