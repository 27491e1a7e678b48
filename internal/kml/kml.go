// Package kml reads Placemarks out of a KML document.
//
// Only the pieces the hole import needs are decoded: the Placemark name,
// its description and the first coordinates element found below it.
// Element names are matched on their local part, so documents using the
// OGC 2.2 namespace and older Google Earth namespaces both work.
package kml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"hole-distance/internal/models"
)

// Namespace is the namespace declared by KML 2.2 documents.
const Namespace = "http://www.opengis.net/kml/2.2"

// ErrNoDocument is returned when the input holds no XML root element.
var ErrNoDocument = errors.New("kml: no document element")

// node is a generic element tree used to search below a Placemark.
// Text joins all character data directly inside the element, including
// text that follows a child element.
type node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []node `xml:",any"`
}

func (n *node) child(local string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// descendant returns the first element named local in document order.
func (n *node) descendant(local string) *node {
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if c.XMLName.Local == local {
			return c
		}
		if d := c.descendant(local); d != nil {
			return d
		}
	}
	return nil
}

// Decode reads every Placemark in r. Elements that are absent leave the
// matching Marker field empty.
func Decode(r io.Reader) ([]models.Marker, error) {
	dec := xml.NewDecoder(r)
	var (
		markers []models.Marker
		sawRoot bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "Placemark" {
			continue
		}

		var pm node
		if err := dec.DecodeElement(&pm, &start); err != nil {
			return nil, fmt.Errorf("kml: placemark %d: %w", len(markers)+1, err)
		}
		markers = append(markers, toMarker(&pm))
	}

	if !sawRoot {
		return nil, ErrNoDocument
	}
	return markers, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) ([]models.Marker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func toMarker(pm *node) models.Marker {
	var m models.Marker
	if n := pm.child("name"); n != nil {
		m.Name = n.Text
	}
	if n := pm.child("description"); n != nil {
		m.Label = n.Text
	}
	if n := pm.descendant("coordinates"); n != nil {
		m.Coordinates = n.Text
	}
	return m
}
