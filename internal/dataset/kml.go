package dataset

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml/v2"
)

// WriteKML renders the snapshot as a KML document of plaza placemarks, for
// map overlays and interchange with GIS tooling.
func (s *Snapshot) WriteKML(w io.Writer) error {
	placemarks := make([]kml.Element, 0, len(s.Plazas))
	for _, p := range s.Plazas {
		description := p.Location
		if p.Highway != "" {
			description = fmt.Sprintf("%s (%s)", p.Location, p.Highway)
		}
		placemarks = append(placemarks, kml.Placemark(
			kml.Name(p.Name),
			kml.Description(description),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude}),
			),
		))
	}

	doc := kml.KML(kml.Document(placemarks...))
	return doc.WriteIndent(w, "", "  ")
}
