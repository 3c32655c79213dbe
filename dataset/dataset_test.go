package dataset_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dataset"
	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/search"
)

func TestLoad_YAML(t *testing.T) {
	g, err := dataset.Load(filepath.Join("testdata", "us_cities.yaml"))
	require.NoError(t, err)
	assert.Equal(t, geo.Kilometers, g.Unit())
	assert.Equal(t, 5, g.LocationCount())
	assert.Equal(t, 5, g.EdgeCount())

	res, err := search.Run(context.Background(), g, search.AStar, "A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 4092, res.Cost, 1e-9)
}

func TestLoad_JSONDerivesWeights(t *testing.T) {
	g, err := dataset.Load(filepath.Join("testdata", "campus.json"))
	require.NoError(t, err)
	assert.Equal(t, geo.Meters, g.Unit())

	gate, _ := g.Location("gate")
	j1, _ := g.Location("j1")
	w, ok := g.Weight("gate", "j1")
	require.True(t, ok)
	assert.InDelta(t, geo.Distance(gate.Coordinate, j1.Coordinate), w, 1e-9)

	w, ok = g.Weight("cafe", "j1")
	require.True(t, ok)
	assert.Equal(t, 250.0, w)

	_, err = g.LocationByName("library")
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":            ``,
		"no locations":     `unit: km`,
		"unknown field":    "locations: [{id: A, lat: 0, lon: 0, colour: red}]",
		"unknown unit":     "unit: furlong\nlocations: [{id: A, lat: 0, lon: 0}]",
		"missing id":       "locations: [{lat: 0, lon: 0}]",
		"latitude range":   "locations: [{id: A, lat: 91, lon: 0}]",
		"longitude range":  "locations: [{id: A, lat: 0, lon: -181}]",
		"negative weight":  "locations: [{id: A, lat: 0, lon: 0}, {id: B, lat: 1, lon: 1}]\nedges: [{from: A, to: B, weight: -3}]",
		"self loop":        "locations: [{id: A, lat: 0, lon: 0}]\nedges: [{from: A, to: A}]",
		"missing endpoint": "locations: [{id: A, lat: 0, lon: 0}]\nedges: [{from: A}]",
		"not yaml":         "locations: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Decode(strings.NewReader(src), dataset.YAML)
			assert.ErrorIs(t, err, dataset.ErrMalformedDataset)
		})
	}

	_, err := dataset.Decode(strings.NewReader(`{"locations": [{"id": "A", "lat": 0, "lon": 0}], "extra": 1}`), dataset.JSON)
	assert.ErrorIs(t, err, dataset.ErrMalformedDataset)
}

func TestGraph_BuildFailures(t *testing.T) {
	dup := "locations: [{id: A, lat: 0, lon: 0}, {id: A, lat: 1, lon: 1}]"
	doc, err := dataset.Decode(strings.NewReader(dup), dataset.YAML)
	require.NoError(t, err)
	_, err = doc.Graph()
	assert.ErrorIs(t, err, dataset.ErrMalformedDataset)
	assert.ErrorIs(t, err, core.ErrDuplicateLocation)

	dangling := "locations: [{id: A, lat: 0, lon: 0}]\nedges: [{from: A, to: Z, weight: 3}]"
	doc, err = dataset.Decode(strings.NewReader(dangling), dataset.YAML)
	require.NoError(t, err)
	_, err = doc.Graph()
	assert.ErrorIs(t, err, dataset.ErrMalformedDataset)
	assert.ErrorIs(t, err, core.ErrUnknownLocation)

	derived := "locations: [{id: A, lat: 0, lon: 0}]\nedges: [{from: A, to: Z}]"
	doc, err = dataset.Decode(strings.NewReader(derived), dataset.YAML)
	require.NoError(t, err)
	_, err = doc.Graph()
	assert.ErrorIs(t, err, core.ErrUnknownLocation)
}

func TestEncode_RoundTrip(t *testing.T) {
	g, err := dataset.Load(filepath.Join("testdata", "us_cities.yaml"))
	require.NoError(t, err)
	doc := dataset.FromGraph(g)
	require.Len(t, doc.Edges, 5)

	for _, f := range []dataset.Format{dataset.YAML, dataset.JSON} {
		var buf bytes.Buffer
		require.NoError(t, dataset.Encode(&buf, doc, f), f.String())
		back, err := dataset.Decode(&buf, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, doc, back, f.String())
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, dataset.JSON, dataset.FormatOf("x/graph.JSON"))
	assert.Equal(t, dataset.YAML, dataset.FormatOf("graph.yml"))
	assert.Equal(t, dataset.YAML, dataset.FormatOf("graph"))
}
