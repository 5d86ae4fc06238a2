package services

import (
	"strings"

	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/routing"
)

// syntheticMinutesPerKm estimates drive time for fabricated straight-line
// routes.
const syntheticMinutesPerKm = 1.2

// gazetteer maps known city names to coordinates for synthetic route
// generation when every live provider is unavailable.
var gazetteer = map[string]geo.Point{
	"delhi":         {Latitude: 28.7041, Longitude: 77.1025},
	"mumbai":        {Latitude: 19.0760, Longitude: 72.8777},
	"bangalore":     {Latitude: 12.9716, Longitude: 77.5946},
	"chennai":       {Latitude: 13.0827, Longitude: 80.2707},
	"kolkata":       {Latitude: 22.5726, Longitude: 88.3639},
	"hyderabad":     {Latitude: 17.3850, Longitude: 78.4867},
	"pune":          {Latitude: 18.5204, Longitude: 73.8567},
	"ahmedabad":     {Latitude: 23.0225, Longitude: 72.5714},
	"jaipur":        {Latitude: 26.9124, Longitude: 75.7873},
	"kanpur":        {Latitude: 26.8467, Longitude: 80.9462},
	"lucknow":       {Latitude: 26.8467, Longitude: 80.9462},
	"nagpur":        {Latitude: 21.1458, Longitude: 79.0882},
	"indore":        {Latitude: 22.7196, Longitude: 75.8577},
	"thane":         {Latitude: 19.2183, Longitude: 72.9781},
	"bhopal":        {Latitude: 23.2599, Longitude: 77.4126},
	"visakhapatnam": {Latitude: 17.6868, Longitude: 83.2185},
	"patna":         {Latitude: 25.5941, Longitude: 85.1376},
	"vadodara":      {Latitude: 22.3072, Longitude: 73.1812},
	"ghaziabad":     {Latitude: 28.6692, Longitude: 77.4538},
	"ludhiana":      {Latitude: 30.9010, Longitude: 75.8573},
}

// cannedRoutes are example corridors served when a requested place name is
// not in the gazetteer, keyed by "Origin-Destination".
var cannedRoutes = map[string]routing.Route{
	"Delhi-Mumbai": {
		Path: []geo.Point{
			{Latitude: 28.7041, Longitude: 77.1025}, // Delhi
			{Latitude: 28.4593, Longitude: 77.0266}, // Gurgaon
			{Latitude: 19.0760, Longitude: 72.8777}, // Mumbai
		},
		DistanceKm:  1400,
		DurationMin: 1080,
	},
	"Delhi-Kanpur": {
		Path: []geo.Point{
			{Latitude: 28.7041, Longitude: 77.1025}, // Delhi
			{Latitude: 28.4593, Longitude: 77.0266}, // Gurgaon
			{Latitude: 28.6139, Longitude: 77.2090}, // Faridabad
			{Latitude: 28.4089, Longitude: 77.3178}, // Palwal
			{Latitude: 27.4924, Longitude: 77.6737}, // Mathura
			{Latitude: 27.1767, Longitude: 78.0081}, // Agra
			{Latitude: 26.8467, Longitude: 80.9462}, // Kanpur
		},
		DistanceKm:  480,
		DurationMin: 360,
	},
	"Mumbai-Pune": {
		Path: []geo.Point{
			{Latitude: 19.0760, Longitude: 72.8777}, // Mumbai
			{Latitude: 18.5204, Longitude: 73.8567}, // Pune
		},
		DistanceKm:  150,
		DurationMin: 180,
	},
}

const defaultCannedRoute = "Delhi-Mumbai"

// SyntheticGenerator fabricates routes when no live provider can serve a
// request. It always produces a route; the Synthetic source tag lets callers
// tell its output apart from provider data.
type SyntheticGenerator struct {
	geoUtils geo.GeoUtils
}

// NewSyntheticGenerator creates a synthetic route generator
func NewSyntheticGenerator() *SyntheticGenerator {
	return &SyntheticGenerator{geoUtils: geo.NewGeoUtils()}
}

// Generate builds a straight-line route between gazetteer cities, or a canned
// corridor when either name is unrecognized.
func (g *SyntheticGenerator) Generate(origin, destination string) routing.Route {
	originPoint, originOK := gazetteer[normalizePlace(origin)]
	destPoint, destOK := gazetteer[normalizePlace(destination)]

	if originOK && destOK {
		distance, _ := g.geoUtils.PointToPoint(originPoint, destPoint)
		return routing.Route{
			Path:        []geo.Point{originPoint, destPoint},
			DistanceKm:  distance,
			DurationMin: distance * syntheticMinutesPerKm,
			Origin:      &originPoint,
			Destination: &destPoint,
			Source:      routing.RouteSource{Kind: routing.SourceSynthetic},
		}
	}

	route, ok := cannedRoutes[origin+"-"+destination]
	if !ok {
		route = cannedRoutes[defaultCannedRoute]
	}
	route.Source = routing.RouteSource{Kind: routing.SourceSynthetic}
	return route
}

func normalizePlace(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}
