package calculator

import (
	"strings"

	"github.com/rs/zerolog"

	"hole-distance/internal/models"
)

// Extract groups markers by name and label. Markers missing a name, label or
// coordinates are skipped. The first malformed coordinate aborts extraction.
func Extract(markers []models.Marker, log zerolog.Logger) (models.PointTable, models.Summary, error) {
	table := make(models.PointTable)
	var summary models.Summary

	for idx, m := range markers {
		name := strings.TrimSpace(m.Name)
		label := strings.TrimSpace(m.Label)
		coords := strings.TrimSpace(m.Coordinates)

		if name == "" || label == "" || coords == "" {
			summary.Skipped++
			log.Debug().
				Int("index", idx).
				Str("name", name).
				Str("label", label).
				Msg("Skipping marker with missing field")
			continue
		}

		lat, lon, err := ParseCoordinates(coords)
		if err != nil {
			return nil, summary, &MalformedCoordinateError{
				Group: name,
				Label: label,
				Text:  coords,
				Err:   err,
			}
		}

		table.Set(name, label, models.Point{
			Lat:     lat,
			Lon:     lon,
			Display: DisplayPoint(lat, lon),
		})

		switch label {
		case models.LabelTee:
			summary.Tee++
		case models.LabelTarget:
			summary.Target++
		}
	}

	log.Debug().
		Int("groups", len(table)).
		Int("tii", summary.Tee).
		Int("korv", summary.Target).
		Int("skipped", summary.Skipped).
		Msg("Markers extracted")

	return table, summary, nil
}
