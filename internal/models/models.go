package models

// Labels recognised inside a hole group.
const (
	LabelTee    = "tii"
	LabelTarget = "korv"
)

// Marker is one Placemark as read from the source document.
type Marker struct {
	Name        string
	Label       string
	Coordinates string
}

// Point is a stored marker position. Display keeps the "lat, lon" text
// written into the SQL statement.
type Point struct {
	Lat     float64
	Lon     float64
	Display string
}

// PointTable maps group name to label to point.
type PointTable map[string]map[string]Point

// Set stores p under (group, label), replacing any earlier point.
func (t PointTable) Set(group, label string, p Point) {
	labels, ok := t[group]
	if !ok {
		labels = make(map[string]Point)
		t[group] = labels
	}
	labels[label] = p
}

// Lookup returns the point stored under (group, label).
func (t PointTable) Lookup(group, label string) (Point, bool) {
	p, ok := t[group][label]
	return p, ok
}

type Outcome string

const (
	OutcomeComplete   Outcome = "complete"
	OutcomePartialTee Outcome = "partial_tii"
	OutcomeMissingTee Outcome = "missing_tii"
	OutcomeMissing    Outcome = "missing"
)

// Result is the reconciliation of one universe entry. Length is only set
// for complete holes.
type Result struct {
	Number      string  `json:"number" yaml:"number"`
	Outcome     Outcome `json:"outcome" yaml:"outcome"`
	Coordinates string  `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Length      *int    `json:"length,omitempty" yaml:"length,omitempty"`
}

// HasUpdate reports whether the result produces an UPDATE statement.
func (r Result) HasUpdate() bool {
	return r.Outcome == OutcomeComplete || r.Outcome == OutcomePartialTee
}

// Summary holds the run totals. Tee and Target count every marker parsed,
// Missing only counts universe entries.
type Summary struct {
	Tee     int `json:"tii" yaml:"tii"`
	Target  int `json:"korv" yaml:"korv"`
	Missing int `json:"missing" yaml:"missing"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
}
