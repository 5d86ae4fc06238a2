package dataset

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tollwise/server/internal/lib/tolls"
)

// Loader reads the toll reference dataset from disk. When no path is
// configured it serves the embedded table.
type Loader struct {
	path string
	log  *zap.Logger
}

// NewLoader creates a dataset loader for the given file path; an empty path
// selects the embedded reference table.
func NewLoader(path string, log *zap.Logger) *Loader {
	return &Loader{path: path, log: log}
}

// Load reads and normalizes the dataset into a frozen snapshot
func (l *Loader) Load() (*Snapshot, error) {
	if l.path == "" {
		l.log.Info("no dataset file configured, using embedded toll table",
			zap.Int("plazas", len(embeddedPlazas)))
		return EmbeddedSnapshot(), nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var plazas []tolls.Plaza
	if err := json.Unmarshal(data, &plazas); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}

	for i := range plazas {
		plazas[i].Location = cleanLocation(plazas[i].Location)
		if plazas[i].Highway == "" {
			plazas[i].Highway = extractHighway(plazas[i].Location)
		}
	}

	plazas = dropInvalid(plazas, l.log)

	l.log.Info("loaded toll dataset",
		zap.String("path", l.path),
		zap.Int("plazas", len(plazas)))

	return NewSnapshot(plazas, QualityOfficial), nil
}

// dropInvalid filters records without usable coordinates or rates
func dropInvalid(plazas []tolls.Plaza, log *zap.Logger) []tolls.Plaza {
	valid := plazas[:0]
	for _, p := range plazas {
		if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
			log.Warn("skipping plaza with invalid coordinates",
				zap.Int("id", p.ID), zap.String("name", p.Name))
			continue
		}
		if p.Rates == (tolls.RateTable{}) {
			log.Warn("skipping plaza with no published rates",
				zap.Int("id", p.ID), zap.String("name", p.Name))
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	highwayPattern = regexp.MustCompile(`(?i)NH-?(\d+)`)
)

// cleanLocation strips HTML markup and entities that upstream exports embed
// in location strings
func cleanLocation(location string) string {
	text := htmlTagPattern.ReplaceAllString(location, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// extractHighway pulls a national-highway designation out of a location string
func extractHighway(location string) string {
	if m := highwayPattern.FindStringSubmatch(location); m != nil {
		return "NH" + m[1]
	}
	return ""
}
