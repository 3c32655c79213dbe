// Package dataset reads and writes location graphs as YAML or JSON documents.
//
//	unit: km
//	locations:
//	  - {id: A, name: New York, lat: 40.7128, lon: -74.0060, important: true}
//	edges:
//	  - {from: A, to: C, weight: 1145}
//	  - {from: C, to: D}            # weight derived geodesically
//
// Decode parses and validates a Document; Document.Graph feeds it to a
// core.Builder and freezes the result. Load does both for a file.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

// ErrMalformedDataset wraps every decoding, validation and build failure.
var ErrMalformedDataset = errors.New("dataset: malformed dataset")

var validate = validator.New()

// Document is the on-disk shape of a graph.
type Document struct {
	Unit      geo.Unit         `json:"unit" yaml:"unit"`
	Locations []LocationRecord `json:"locations" yaml:"locations" validate:"required,min=1,dive"`
	Edges     []EdgeRecord     `json:"edges,omitempty" yaml:"edges,omitempty" validate:"dive"`
}

// LocationRecord is one location entry.
type LocationRecord struct {
	ID        string  `json:"id" yaml:"id" validate:"required"`
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Lat       float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lon       float64 `json:"lon" yaml:"lon" validate:"gte=-180,lte=180"`
	Important bool    `json:"important,omitempty" yaml:"important,omitempty"`
}

// EdgeRecord is one undirected connection. A nil Weight is replaced by the
// geodesic distance between the endpoints, in the document's unit.
type EdgeRecord struct {
	From   string   `json:"from" yaml:"from" validate:"required"`
	To     string   `json:"to" yaml:"to" validate:"required,nefield=From"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// Format selects the document encoding.
type Format int

const (
	// YAML is the default format.
	YAML Format = iota
	// JSON is plain encoding/json.
	JSON
)

// String returns "yaml" or "json".
func (f Format) String() string {
	if f == JSON {
		return "json"
	}

	return "yaml"
}

// FormatOf picks the format from a file extension; anything but .json is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// Load reads the file at path and returns the frozen graph it describes.
// Errors: ErrMalformedDataset, or the os error when the file cannot be opened.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc.Graph()
}

// Decode parses a document in format f and validates it. Unknown fields are
// rejected.
// Errors: ErrMalformedDataset.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty %s document", ErrMalformedDataset, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedDataset, f, err)
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the field constraints of d.
// Errors: ErrMalformedDataset.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}

	return nil
}

// Graph loads d into a core.Builder and freezes it.
//
// Steps:
//  1. AddLocation per record; duplicate identifiers fail.
//  2. AddEdge per record, deriving missing weights; repeated pairs are ignored.
//  3. Freeze.
//
// Errors: ErrMalformedDataset wrapping the core error.
func (d *Document) Graph() (*core.Graph, error) {
	b := core.NewBuilder(core.WithUnit(d.Unit))

	coords := make(map[string]geo.Coordinate, len(d.Locations))
	for _, rec := range d.Locations {
		loc := core.Location{
			ID:         rec.ID,
			Name:       rec.Name,
			Coordinate: geo.Coordinate{Lat: rec.Lat, Lon: rec.Lon},
			Important:  rec.Important,
		}
		if err := b.AddLocation(loc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
		}
		coords[rec.ID] = loc.Coordinate
	}

	for i, rec := range d.Edges {
		w, err := rec.weight(coords, d.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformedDataset, i, err)
		}
		if _, err = b.AddEdge(rec.From, rec.To, w); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformedDataset, i, err)
		}
	}

	g, err := b.Freeze()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}

	return g, nil
}

func (e EdgeRecord) weight(coords map[string]geo.Coordinate, u geo.Unit) (float64, error) {
	if e.Weight != nil {
		return *e.Weight, nil
	}
	a, okA := coords[e.From]
	b, okB := coords[e.To]
	if !okA || !okB {
		return 0, fmt.Errorf("%w: %s-%s", core.ErrUnknownLocation, e.From, e.To)
	}

	return geo.DistanceIn(a, b, u), nil
}

// FromGraph captures g as a Document, locations by identifier and each
// undirected edge once.
func FromGraph(g *core.Graph) *Document {
	doc := &Document{Unit: g.Unit()}
	for _, l := range g.Locations() {
		doc.Locations = append(doc.Locations, LocationRecord{
			ID:        l.ID,
			Name:      l.Name,
			Lat:       l.Coordinate.Lat,
			Lon:       l.Coordinate.Lon,
			Important: l.Important,
		})
		edges, _ := g.Neighbors(l.ID) // l.ID comes from g, so it is known
		for _, e := range edges {
			if e.From < e.To {
				w := e.Weight
				doc.Edges = append(doc.Edges, EdgeRecord{From: e.From, To: e.To, Weight: &w})
			}
		}
	}

	return doc
}

// Encode writes d to w in format f.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(d)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}

		return enc.Close()
	}
}
