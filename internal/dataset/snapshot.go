package dataset

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/tollwise/server/internal/lib/geo"
	"github.com/tollwise/server/internal/lib/tolls"
)

// Quality indicates which tier of reference data a snapshot carries
type Quality string

const (
	QualityOfficial    Quality = "official"
	QualityEmbedded    Quality = "embedded"
	QualityUnavailable Quality = "unavailable"
)

// indexLevel is the s2 cell level used to bucket plazas. Level 6 cells are at
// least ~35km wide, so a cell plus its neighbors fully covers any query disc
// of radius maxIndexedRadiusKm.
const (
	indexLevel         = 6
	maxIndexedRadiusKm = 15.0
)

// Snapshot is an immutable view of the toll reference dataset. A reload
// builds a new Snapshot and swaps it into the Store; in-flight requests keep
// reading the snapshot they started with.
type Snapshot struct {
	Plazas   []tolls.Plaza
	Quality  Quality
	LoadedAt time.Time

	cells map[s2.CellID][]int
}

// NewSnapshot builds a frozen snapshot with its spatial index
func NewSnapshot(plazas []tolls.Plaza, quality Quality) *Snapshot {
	s := &Snapshot{
		Plazas:   plazas,
		Quality:  quality,
		LoadedAt: time.Now(),
		cells:    make(map[s2.CellID][]int),
	}
	for i, p := range plazas {
		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(p.Latitude, p.Longitude)).Parent(indexLevel)
		s.cells[cell] = append(s.cells[cell], i)
	}
	return s
}

// EmptySnapshot represents a dataset that failed to load; matching against it
// yields no tolls and responses carry the unavailable quality marker.
func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil, QualityUnavailable)
}

// EmbeddedSnapshot returns the built-in reference table
func EmbeddedSnapshot() *Snapshot {
	return NewSnapshot(embeddedPlazas, QualityEmbedded)
}

// CandidatesNearPath returns the plazas that could possibly lie within
// radiusKm of any point of the path, using the cell index. The result is a
// superset of the true matches; the matcher applies the exact distance test.
func (s *Snapshot) CandidatesNearPath(path []geo.Point, radiusKm float64) []tolls.Plaza {
	if radiusKm > maxIndexedRadiusKm {
		return s.Plazas
	}

	seen := make(map[int]struct{})
	var out []tolls.Plaza
	for _, p := range path {
		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(p.Latitude, p.Longitude)).Parent(indexLevel)
		for _, c := range append(cell.AllNeighbors(indexLevel), cell) {
			for _, idx := range s.cells[c] {
				if _, ok := seen[idx]; !ok {
					seen[idx] = struct{}{}
					out = append(out, s.Plazas[idx])
				}
			}
		}
	}
	return out
}

// PlazaDistance pairs a plaza with its distance from a query point
type PlazaDistance struct {
	tolls.Plaza
	DistanceKm float64 `json:"distance_km"`
}

// Near returns the plazas within radiusKm of a point, sorted ascending by
// distance.
func (s *Snapshot) Near(point geo.Point, radiusKm float64) []PlazaDistance {
	center := s2.LatLngFromDegrees(point.Latitude, point.Longitude)

	candidates := s.CandidatesNearPath([]geo.Point{point}, radiusKm)

	var out []PlazaDistance
	for _, p := range candidates {
		ll := s2.LatLngFromDegrees(p.Latitude, p.Longitude)
		distanceKm := chordKm(center.Distance(ll))
		if distanceKm <= radiusKm {
			out = append(out, PlazaDistance{Plaza: p, DistanceKm: distanceKm})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// ByID returns the plaza with the given id, if present
func (s *Snapshot) ByID(id int) (tolls.Plaza, bool) {
	for _, p := range s.Plazas {
		if p.ID == id {
			return p, true
		}
	}
	return tolls.Plaza{}, false
}

// chordKm converts an s1 angle to kilometers on the reference sphere
func chordKm(a s1.Angle) float64 {
	return a.Radians() * geo.EarthRadiusKm
}

// Store holds the current snapshot behind an atomic pointer so reloads never
// mutate what readers see.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store seeded with the given snapshot
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the current frozen snapshot
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap installs a new snapshot atomically
func (s *Store) Swap(next *Snapshot) {
	s.current.Store(next)
}
