// Package pipeline runs the hole import end to end: read the placemarks,
// extract tee and target points, reconcile them against the expected holes.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"hole-distance/internal/calculator"
	"hole-distance/internal/excel"
	"hole-distance/internal/kml"
	"hole-distance/internal/models"
)

// MarkerSheet is the worksheet read from spreadsheet input.
const MarkerSheet = "Placemarks"

// Run processes the KML document held in r.
func Run(r io.Reader, u calculator.Universe, log zerolog.Logger) (models.Report, error) {
	if err := u.Validate(); err != nil {
		return models.Report{}, err
	}

	markers, err := kml.Decode(r)
	if err != nil {
		return models.Report{}, err
	}
	log.Debug().Int("placemarks", len(markers)).Msg("Document decoded")

	return RunMarkers(markers, u, log)
}

// RunFile processes path. Files ending in .xlsx are read from the
// Placemarks sheet, everything else is decoded as KML.
func RunFile(path string, u calculator.Universe, log zerolog.Logger) (models.Report, error) {
	if err := u.Validate(); err != nil {
		return models.Report{}, err
	}

	var (
		markers []models.Marker
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		markers, err = readSheet(path)
	} else {
		markers, err = kml.DecodeFile(path)
	}
	if err != nil {
		return models.Report{}, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Str("input", path).Int("placemarks", len(markers)).Msg("Input read")

	return RunMarkers(markers, u, log)
}

// RunMarkers extracts and reconciles already decoded markers.
func RunMarkers(markers []models.Marker, u calculator.Universe, log zerolog.Logger) (models.Report, error) {
	if err := u.Validate(); err != nil {
		return models.Report{}, err
	}

	table, summary, err := calculator.Extract(markers, log)
	if err != nil {
		return models.Report{}, err
	}

	report := calculator.Reconcile(table, summary, u, log)
	log.Info().
		Int("holes", len(report.Results)).
		Int("tii", report.Summary.Tee).
		Int("korv", report.Summary.Target).
		Int("missing", report.Summary.Missing).
		Msg("Reconciliation completed")

	return report, nil
}

func readSheet(path string) ([]models.Marker, error) {
	f, err := excel.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return excel.ReadMarkers(f, MarkerSheet)
}
