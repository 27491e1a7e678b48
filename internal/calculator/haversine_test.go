package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		delta                  float64
	}{
		{"same point", 37.7749, -122.4194, 37.7749, -122.4194, 0, 0},
		{"one degree of latitude at the equator", 0, 0, 1, 0, 111195, 50},
		{"short hole", 10.0, 20.0, 10.001, 20.001, 156.06, 0.01},
		{"SF downtown to Market St", 37.7749, -122.4194, 37.7734, -122.4167, 290.06, 0.01},
		{"antipodal", 0, 0, 0, 180, math.Pi * earthRadius, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Haversine(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.expected, got, tc.delta)
		})
	}
}

func TestHaversineProperties(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{60.1712, 24.9421},
		{-33.8688, 151.2093},
		{89.9, -179.9},
		{-45.5, 179.99},
	}

	for _, p := range points {
		assert.Zero(t, Haversine(p[0], p[1], p[0], p[1]), "distance from %v to itself", p)
	}

	for i := range points {
		for j := range points {
			a, b := points[i], points[j]
			assert.Equal(t,
				Haversine(a[0], a[1], b[0], b[1]),
				Haversine(b[0], b[1], a[0], a[1]),
				"distance %v <-> %v", a, b)
		}
	}
}

func TestRoundMeters(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{156.06, 156},
		{156.5, 156},
		{157.5, 158},
		{157.49, 157},
		{290.9, 291},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RoundMeters(tc.in), "RoundMeters(%v)", tc.in)
	}
}
