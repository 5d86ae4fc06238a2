package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/routing"
	"github.com/tollwise/server/internal/lib/tolls"
	"github.com/tollwise/server/internal/services"
)

// TollHandler exposes the toll pricing service over REST
type TollHandler struct {
	service *services.TollService
	log     *zap.Logger
}

// NewTollHandler creates a new TollHandler
func NewTollHandler(service *services.TollService, log *zap.Logger) *TollHandler {
	return &TollHandler{service: service, log: log}
}

// RegisterRoutes registers all API routes on the given router group
func (h *TollHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api")
	{
		api.GET("/route-tolls", h.RouteTolls)
		api.GET("/optimized-routes", h.OptimizedRoutes)
		api.GET("/toll-plazas", h.ListPlazas)
		api.GET("/toll-plazas.kml", h.PlazasKML)
		api.GET("/toll-plazas/:id", h.GetPlaza)
		api.GET("/search-tolls", h.SearchTolls)
		api.GET("/vehicle-types", h.VehicleTypes)
		api.GET("/traffic-info", h.TrafficInfo)
		api.GET("/health", h.Health)
		api.POST("/reload", h.Reload)
	}
}

type tollResponse struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	Location          string  `json:"location"`
	Highway           string  `json:"highway,omitempty"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	DistanceFromRoute float64 `json:"distance_from_route"`
	FeeEffectiveDate  string  `json:"fee_effective_date,omitempty"`
	ProjectType       string  `json:"project_type,omitempty"`
}

func formatTolls(matched []routing.MatchedToll) []tollResponse {
	out := make([]tollResponse, 0, len(matched))
	for _, t := range matched {
		out = append(out, tollResponse{
			ID:                t.ID,
			Name:              t.Name,
			Lat:               t.Latitude,
			Lng:               t.Longitude,
			Location:          t.Location,
			Highway:           t.Highway,
			Price:             t.Price,
			Currency:          "INR",
			DistanceFromRoute: t.DistanceFromRouteKm,
			FeeEffectiveDate:  t.FeeEffectiveDate,
			ProjectType:       t.ProjectType,
		})
	}
	return out
}

func formatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

func formatDuration(min float64) string {
	return fmt.Sprintf("%d min", int(min+0.5))
}

// routeQuery builds the service query from common request parameters
func routeQuery(c *gin.Context) (services.RouteQuery, bool) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Origin and destination are required"})
		return services.RouteQuery{}, false
	}

	q := services.RouteQuery{
		Origin:            origin,
		Destination:       destination,
		VehicleClass:      tolls.ParseVehicleClass(c.DefaultQuery("vehicleType", string(tolls.CarSingle))),
		PreferredProvider: c.Query("provider"),
	}
	if raw := c.Query("maxDistance"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			q.MaxDistanceKm = v
		}
	}
	return q, true
}

// RouteTolls handles GET /api/route-tolls
func (h *TollHandler) RouteTolls(c *gin.Context) {
	q, ok := routeQuery(c)
	if !ok {
		return
	}

	result := h.service.RouteTolls(c.Request.Context(), q)
	formatted := formatTolls(result.Tolls)

	c.JSON(http.StatusOK, gin.H{
		"route":            fmt.Sprintf("%s → %s", q.Origin, q.Destination),
		"path":             result.Route.Path,
		"total_toll_price": result.TotalToll,
		"currency":         "INR",
		"tolls":            formatted,
		"distance":         formatDistance(result.Route.DistanceKm),
		"duration":         formatDuration(result.Route.DurationMin),
		"vehicle_type":     string(q.VehicleClass),
		"toll_count":       len(formatted),
		"data_source":      result.Route.Source.Label(),
		"data_quality":     string(result.Quality),
	})
}

type rankedRoute struct {
	RouteIndex int            `json:"route_index"`
	Summary    string         `json:"summary,omitempty"`
	Distance   string         `json:"distance"`
	Duration   string         `json:"duration"`
	TollCount  int            `json:"toll_count"`
	TotalToll  float64        `json:"total_toll"`
	CostPerKm  float64        `json:"cost_per_km"`
	Path       []geo.Point    `json:"path"`
	Tolls      []tollResponse `json:"tolls"`
	DataSource string         `json:"data_source"`
}

type recommendationEntry struct {
	RouteIndex int     `json:"route_index"`
	TotalToll  float64 `json:"total_toll"`
	Distance   string  `json:"distance"`
	Duration   string  `json:"duration"`
	CostPerKm  float64 `json:"cost_per_km,omitempty"`
}

// OptimizedRoutes handles GET /api/optimized-routes
func (h *TollHandler) OptimizedRoutes(c *gin.Context) {
	q, ok := routeQuery(c)
	if !ok {
		return
	}

	result := h.service.OptimizedRoutes(c.Request.Context(), q)
	rec := result.Recommendation

	routes := make([]rankedRoute, 0, len(rec.Analyses))
	for i, analysis := range rec.Analyses {
		routes = append(routes, rankedRoute{
			RouteIndex: i,
			Summary:    analysis.Route.Summary,
			Distance:   formatDistance(analysis.Route.DistanceKm),
			Duration:   formatDuration(analysis.Route.DurationMin),
			TollCount:  len(analysis.Tolls),
			TotalToll:  analysis.TotalToll,
			CostPerKm:  analysis.CostPerKm,
			Path:       analysis.Route.Path,
			Tolls:      formatTolls(analysis.Tolls),
			DataSource: analysis.Route.Source.Label(),
		})
	}

	entry := func(idx int) recommendationEntry {
		a := rec.Analyses[idx]
		return recommendationEntry{
			RouteIndex: idx,
			TotalToll:  a.TotalToll,
			Distance:   formatDistance(a.Route.DistanceKm),
			Duration:   formatDuration(a.Route.DurationMin),
			CostPerKm:  a.CostPerKm,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"origin":       q.Origin,
		"destination":  q.Destination,
		"vehicle_type": string(result.VehicleClass),
		"total_routes": len(routes),
		"routes":       routes,
		"recommendations": gin.H{
			"cheapest":       entry(rec.Cheapest),
			"fastest":        entry(rec.Fastest),
			"shortest":       entry(rec.Shortest),
			"most_efficient": entry(rec.MostEfficient),
		},
		"data_quality": string(result.Quality),
	})
}

// ListPlazas handles GET /api/toll-plazas
func (h *TollHandler) ListPlazas(c *gin.Context) {
	snap := h.service.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"count":        len(snap.Plazas),
		"toll_plazas":  snap.Plazas,
		"data_quality": string(snap.Quality),
	})
}

// PlazasKML handles GET /api/toll-plazas.kml
func (h *TollHandler) PlazasKML(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.google-earth.kml+xml")
	if err := h.service.Snapshot().WriteKML(c.Writer); err != nil {
		h.log.Error("kml export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

// GetPlaza handles GET /api/toll-plazas/:id
func (h *TollHandler) GetPlaza(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid toll plaza ID"})
		return
	}

	plaza, ok := h.service.Snapshot().ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toll plaza not found"})
		return
	}
	c.JSON(http.StatusOK, plaza)
}

// SearchTolls handles GET /api/search-tolls. Supports text filters
// (location, highway) and a near-point search (lat, lng, radius km).
func (h *TollHandler) SearchTolls(c *gin.Context) {
	snap := h.service.Snapshot()

	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw != "" && lngRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lng"})
			return
		}
		radius := 10.0
		if raw := c.Query("radius"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
				radius = v
			}
		}

		near := snap.Near(geo.Point{Latitude: lat, Longitude: lng}, radius)
		c.JSON(http.StatusOK, gin.H{
			"count":        len(near),
			"toll_plazas":  near,
			"data_quality": string(snap.Quality),
		})
		return
	}

	location := strings.ToLower(c.Query("location"))
	highway := strings.ToLower(c.Query("highway"))

	filtered := make([]tolls.Plaza, 0, len(snap.Plazas))
	for _, p := range snap.Plazas {
		if location != "" &&
			!strings.Contains(strings.ToLower(p.Location), location) &&
			!strings.Contains(strings.ToLower(p.Name), location) {
			continue
		}
		if highway != "" && !strings.Contains(strings.ToLower(p.Highway), highway) {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":        len(filtered),
		"toll_plazas":  filtered,
		"data_quality": string(snap.Quality),
	})
}

// VehicleTypes handles GET /api/vehicle-types
func (h *TollHandler) VehicleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, tolls.VehicleClassLabels)
}

// TrafficInfo handles GET /api/traffic-info. Weather decoration is
// best-effort and omitted when unavailable.
func (h *TollHandler) TrafficInfo(c *gin.Context) {
	q, ok := routeQuery(c)
	if !ok {
		return
	}

	info := h.service.Traffic(c.Request.Context(), q)

	resp := gin.H{
		"route":       fmt.Sprintf("%s → %s", q.Origin, q.Destination),
		"distance":    formatDistance(info.Route.DistanceKm),
		"duration":    formatDuration(info.Route.DurationMin),
		"data_source": info.Route.Source.Label(),
	}
	if info.OriginWeather != nil {
		resp["origin_weather"] = info.OriginWeather
	}
	if info.DestinationWeather != nil {
		resp["destination_weather"] = info.DestinationWeather
	}
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /api/health
func (h *TollHandler) Health(c *gin.Context) {
	snap := h.service.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"toll_plaza_count": len(snap.Plazas),
		"data_quality":     string(snap.Quality),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}

// Reload handles POST /api/reload. On failure the previous dataset snapshot
// stays in service.
func (h *TollHandler) Reload(c *gin.Context) {
	snap, err := h.service.Reload()
	if err != nil {
		h.log.Error("dataset reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload toll data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"toll_plaza_count": len(snap.Plazas),
		"data_quality":     string(snap.Quality),
	})
}
