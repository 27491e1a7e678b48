package calculator

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hole-distance/internal/models"
)

func TestExtract(t *testing.T) {
	markers := []models.Marker{
		{Name: "1", Label: "tii", Coordinates: "20.0,10.0,0"},
		{Name: " 1 ", Label: " korv\n", Coordinates: "\n 20.001,10.001 "},
		{Name: "2", Label: "tii", Coordinates: "21,11"},
		{Name: "250", Label: "korv", Coordinates: "1,2"},
		{Name: "3", Label: "Tii", Coordinates: "1,2"},
		{Name: "4", Label: "parking", Coordinates: "1,2"},
		{Name: "", Label: "tii", Coordinates: "1,2"},
		{Name: "5", Label: "", Coordinates: "1,2"},
		{Name: "5", Label: "korv", Coordinates: "   "},
	}

	table, summary, err := Extract(markers, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Summary{Tee: 2, Target: 2, Skipped: 3}, summary)
	assert.Len(t, table, 5)

	tee, ok := table.Lookup("1", "tii")
	require.True(t, ok)
	assert.Equal(t, models.Point{Lat: 10, Lon: 20, Display: "10.0, 20.0"}, tee)

	target, ok := table.Lookup("1", "korv")
	require.True(t, ok)
	assert.Equal(t, "10.001, 20.001", target.Display)

	_, ok = table.Lookup("3", "Tii")
	assert.True(t, ok, "unexpected labels are stored as-is")
	_, ok = table.Lookup("5", "korv")
	assert.False(t, ok)
}

func TestExtractLastWriteWins(t *testing.T) {
	markers := []models.Marker{
		{Name: "9", Label: "tii", Coordinates: "1,1"},
		{Name: "9", Label: "tii", Coordinates: "2,2"},
	}

	table, summary, err := Extract(markers, zerolog.Nop())
	require.NoError(t, err)

	p, ok := table.Lookup("9", "tii")
	require.True(t, ok)
	assert.Equal(t, "2.0, 2.0", p.Display)
	assert.Equal(t, 2, summary.Tee, "duplicates still count")
}

func TestExtractMalformed(t *testing.T) {
	markers := []models.Marker{
		{Name: "1", Label: "tii", Coordinates: "20,10"},
		{Name: "2", Label: "korv", Coordinates: "twenty,10"},
		{Name: "3", Label: "tii", Coordinates: "20,10"},
	}

	table, _, err := Extract(markers, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, ErrMalformedCoordinate))

	var mce *MalformedCoordinateError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "2", mce.Group)
	assert.Equal(t, "korv", mce.Label)
	assert.Equal(t, "twenty,10", mce.Text)
}

func TestExtractRejectsNonFiniteAndHex(t *testing.T) {
	for _, coords := range []string{"nan,10", "10,inf", "-Infinity,1", "0x1p4,10", "+0x10,1"} {
		t.Run(coords, func(t *testing.T) {
			markers := []models.Marker{
				{Name: "1", Label: "korv", Coordinates: "20,10"},
				{Name: "1", Label: "tii", Coordinates: coords},
			}

			table, _, err := Extract(markers, zerolog.Nop())
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrMalformedCoordinate))

			var mce *MalformedCoordinateError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, coords, mce.Text)
		})
	}
}
