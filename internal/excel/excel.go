package excel

import (
	"fmt"
	"hole-distance/internal/models"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	HolesSheet   = "Holes"
	SummarySheet = "Summary"
)

func OpenFile(filename string) (*excelize.File, error) {
	return excelize.OpenFile(filename)
}

// ReadMarkers reads a sheet laid out as Name, Description, Coordinates with
// a header row. Short rows leave the missing cells empty.
func ReadMarkers(f *excelize.File, sheetName string) ([]models.Marker, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var markers []models.Marker
	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}
		if len(row) == 0 {
			continue
		}

		m := models.Marker{Name: cell(row, 0), Label: cell(row, 1), Coordinates: cell(row, 2)}
		markers = append(markers, m)
	}
	return markers, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// WriteReport writes one row per hole and a summary sheet to path.
func WriteReport(path string, rep models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(HolesSheet)
	if err != nil {
		return err
	}

	// Use Stream Writer for performance
	sw, err := f.NewStreamWriter(HolesSheet)
	if err != nil {
		return err
	}

	headers := []interface{}{"Hole", "Status", "Coordinates", "Length (m)"}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, r := range rep.Results {
		cellName, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.Number, string(r.Outcome), r.Coordinates, nil}
		if r.Length != nil {
			row[3] = *r.Length
		}
		if err := sw.SetRow(cellName, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := [][]interface{}{
		{"Total 'tii' points found", rep.Summary.Tee},
		{"Total 'korv' points found", rep.Summary.Target},
		{"Total holes missing 'tii' or 'korv'", rep.Summary.Missing},
		{"Skipped placemarks", rep.Summary.Skipped},
	}
	for i, row := range summary {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cellName, &row); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}

	f.SetActiveSheet(index)
	// Delete default sheet
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}
