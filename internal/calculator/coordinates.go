package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate is matched by every *MalformedCoordinateError.
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// MalformedCoordinateError identifies the marker whose coordinate text
// could not be read as "lon,lat[,alt...]".
type MalformedCoordinateError struct {
	Group string
	Label string
	Text  string
	Err   error
}

func (e *MalformedCoordinateError) Error() string {
	msg := fmt.Sprintf("malformed coordinates %q for marker %q/%q", e.Text, e.Group, e.Label)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedCoordinateError) Unwrap() error {
	return e.Err
}

func (e *MalformedCoordinateError) Is(target error) bool {
	return target == ErrMalformedCoordinate
}

// ParseCoordinates reads KML coordinate text. The first field is the
// longitude, the second the latitude, anything after is ignored.
func ParseCoordinates(text string) (lat, lon float64, err error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected at least 2 fields, got %d", len(fields))
	}

	lon, err = parseDegrees(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	lat, err = parseDegrees(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	return lat, lon, nil
}

// parseDegrees accepts finite decimal numbers only. Hex floats, NaN and
// infinities are rejected.
func parseDegrees(field string) (float64, error) {
	field = strings.TrimSpace(field)
	digits := strings.TrimLeft(field, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("hexadecimal value %q", field)
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", field)
	}
	return v, nil
}

// FormatDegrees renders v as the shortest decimal that round-trips.
// Integral values keep a trailing ".0" and magnitudes outside
// [1e-4, 1e16) switch to exponent form.
func FormatDegrees(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// DisplayPoint formats a position the way it is written into SQL.
func DisplayPoint(lat, lon float64) string {
	return FormatDegrees(lat) + ", " + FormatDegrees(lon)
}
