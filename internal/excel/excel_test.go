package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hole-distance/internal/models"
)

func TestWriteReport(t *testing.T) {
	length := 156
	rep := models.Report{
		Results: []models.Result{
			{Number: "1", Outcome: models.OutcomeComplete, Coordinates: "10.0, 20.0", Length: &length},
			{Number: "2", Outcome: models.OutcomeMissing},
		},
		Summary: models.Summary{Tee: 1, Target: 1, Missing: 1},
	}
	path := filepath.Join(t.TempDir(), "holes.xlsx")

	require.NoError(t, WriteReport(path, rep))

	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{HolesSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(HolesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Hole", "Status", "Coordinates", "Length (m)"}, rows[0])
	assert.Equal(t, []string{"1", "complete", "10.0, 20.0", "156"}, rows[1])
	assert.Equal(t, []string{"2", "missing"}, rows[2][:2])

	missing, err := f.GetCellValue(SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", missing)
}

func TestReadMarkers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Placemarks")
	require.NoError(t, err)
	rows := [][]interface{}{
		{"Name", "Description", "Coordinates"},
		{" 7 ", "tii", "24.9421,60.1712,0"},
		{},
		{"8", "korv"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Placemarks", cell, &row))
	}

	markers, err := ReadMarkers(f, "Placemarks")
	require.NoError(t, err)
	assert.Equal(t, []models.Marker{
		{Name: "7", Label: "tii", Coordinates: "24.9421,60.1712,0"},
		{Name: "8", Label: "korv"},
	}, markers)

	_, err = ReadMarkers(f, "NoSuchSheet")
	assert.Error(t, err)
}
