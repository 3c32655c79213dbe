package planner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/search"
)

func usCities(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder(core.WithUnit(geo.Kilometers))
	for _, l := range []core.Location{
		{ID: "A", Name: "New York", Coordinate: geo.Coordinate{Lat: 40.7128, Lon: -74.0060}, Important: true},
		{ID: "B", Name: "Los Angeles", Coordinate: geo.Coordinate{Lat: 34.0522, Lon: -118.2437}, Important: true},
		{ID: "C", Name: "Chicago", Coordinate: geo.Coordinate{Lat: 41.8781, Lon: -87.6298}, Important: true},
		{ID: "D", Name: "Houston", Coordinate: geo.Coordinate{Lat: 29.7604, Lon: -95.3698}, Important: true},
		{ID: "E", Name: "Phoenix", Coordinate: geo.Coordinate{Lat: 33.4484, Lon: -112.0740}, Important: true},
		{ID: "F", Name: "Honolulu", Coordinate: geo.Coordinate{Lat: 21.3069, Lon: -157.8583}, Important: true},
		{ID: "J", Name: "Junction", Coordinate: geo.Coordinate{Lat: 38.0, Lon: -90.0}},
	} {
		require.NoError(t, b.AddLocation(l))
	}
	for _, e := range []core.Edge{
		{From: "A", To: "C", Weight: 1145},
		{From: "C", To: "D", Weight: 1515},
		{From: "D", To: "E", Weight: 1890},
		{From: "E", To: "B", Weight: 575},
		{From: "A", To: "D", Weight: 1627},
		{From: "C", To: "J", Weight: 450},
	} {
		_, err := b.AddEdge(e.From, e.To, e.Weight)
		require.NoError(t, err)
	}
	g, err := b.Freeze()
	require.NoError(t, err)

	return g
}

func newPlanner(t *testing.T, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.New(usCities(t), opts...)
	require.NoError(t, err)

	return p
}

func TestNew(t *testing.T) {
	_, err := planner.New(nil)
	assert.ErrorIs(t, err, planner.ErrNilGraph)

	_, err = planner.New(usCities(t), planner.WithDefaultAlgorithm("simulated-annealing"))
	assert.ErrorIs(t, err, planner.ErrInvalidAlgorithmToken)
}

func TestListings(t *testing.T) {
	p := newPlanner(t)

	assert.Equal(t,
		[]string{"Chicago", "Honolulu", "Houston", "Los Angeles", "New York", "Phoenix"},
		p.ListImportantLocations(), "Junction is not important")
	assert.Equal(t, []string{
		"a-star", "greedy", "uniform-cost", "depth-first", "breadth-first",
		"bidirectional", "iterative-deepening", "iterative-deepening-a-star",
	}, p.ListSupportedAlgorithms())
}

func TestFindPath_Scenario(t *testing.T) {
	p := newPlanner(t)

	for _, token := range []string{"a*", "A Star", "a-star", "ASTAR", ""} {
		route, err := p.FindPath(context.Background(), planner.OriginFromRef("New York"), "Los Angeles", token)
		require.NoError(t, err, token)
		assert.Equal(t, search.AStar, route.Strategy, token)
		assert.Equal(t, []string{"A", "D", "E", "B"}, route.LocationIDs, token)
		assert.InDelta(t, 4092, route.Distance, 1e-9, token)
		assert.Equal(t, "A", route.Origin)
		assert.Len(t, route.Coordinates, 4)
	}
}

func TestFindPath_EveryAlgorithm(t *testing.T) {
	p := newPlanner(t)

	for _, token := range p.ListSupportedAlgorithms() {
		route, err := p.FindPath(context.Background(), planner.OriginFromRef("A"), "los angeles", token)
		require.NoError(t, err, token)
		assert.Equal(t, token, route.Strategy.String())
		assert.InDelta(t, 4092, route.Distance, 1e-9, token)
	}
}

func TestFindPath_CoordinateOrigin(t *testing.T) {
	p := newPlanner(t)

	// Exactly on New York.
	o, err := planner.OriginFromCoordinate(40.7128, -74.0060)
	require.NoError(t, err)
	route, err := p.FindPath(context.Background(), o, "Los Angeles", "ucs")
	require.NoError(t, err)
	assert.Equal(t, "A", route.Origin)
	assert.InDelta(t, 4092, route.Distance, 1e-9)

	// Somewhere in Missouri snaps to the non-important junction.
	o, err = planner.ParseOrigin("38.2, -90.3")
	require.NoError(t, err)
	route, err = p.FindPath(context.Background(), o, "Chicago", "bfs")
	require.NoError(t, err)
	assert.Equal(t, []string{"J", "C"}, route.LocationIDs)
	assert.InDelta(t, 450, route.Distance, 1e-9)
}

func TestFindPath_StartIsGoal(t *testing.T) {
	p := newPlanner(t)

	route, err := p.FindPath(context.Background(), planner.OriginFromRef("Phoenix"), "Phoenix", "dfs")
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, route.LocationIDs)
	assert.Zero(t, route.Distance)
}

func TestFindPath_Errors(t *testing.T) {
	p := newPlanner(t)
	ctx := context.Background()

	_, err := p.FindPath(ctx, planner.OriginFromRef("New York"), "Los Angeles", "quantum")
	assert.ErrorIs(t, err, planner.ErrInvalidAlgorithmToken)

	_, err = p.FindPath(ctx, planner.OriginFromRef("Atlantis"), "Los Angeles", "a*")
	assert.ErrorIs(t, err, core.ErrUnknownLocation)

	_, err = p.FindPath(ctx, planner.OriginFromRef("New York"), "Atlantis", "a*")
	assert.ErrorIs(t, err, core.ErrUnknownLocation)

	_, err = p.FindPath(ctx, planner.Origin{}, "Los Angeles", "a*")
	assert.ErrorIs(t, err, planner.ErrMalformedOrigin)

	_, err = p.FindPath(ctx, planner.Origin{IsPoint: true, Coordinate: geo.Coordinate{Lat: 123}}, "Los Angeles", "a*")
	assert.ErrorIs(t, err, planner.ErrMalformedOrigin)

	_, err = p.FindPath(ctx, planner.OriginFromRef("New York"), "Honolulu", "a*")
	assert.ErrorIs(t, err, search.ErrPathNotFound)
}

func TestFindPath_Deadline(t *testing.T) {
	p := newPlanner(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err := p.FindPath(ctx, planner.OriginFromRef("New York"), "Los Angeles", "ida*")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFindPath_ExpansionBudget(t *testing.T) {
	p := newPlanner(t, planner.WithMaxExpansions(1))

	_, err := p.FindPath(context.Background(), planner.OriginFromRef("New York"), "Los Angeles", "ucs")
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestFindPath_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newPlanner(t, planner.WithLogger(logger))

	_, err := p.FindPath(context.Background(), planner.OriginFromRef("New York"), "Los Angeles", "greedy")
	require.NoError(t, err)
	_, err = p.FindPath(context.Background(), planner.OriginFromRef("New York"), "Honolulu", "greedy")
	require.Error(t, err)

	dec := json.NewDecoder(&buf)
	var ok, failed map[string]any
	require.NoError(t, dec.Decode(&ok))
	require.NoError(t, dec.Decode(&failed))

	assert.Equal(t, "route found", ok["msg"])
	assert.Equal(t, "DEBUG", ok["level"])
	assert.Equal(t, "greedy", ok["strategy"])
	assert.Equal(t, "route query failed", failed["msg"])
	assert.Equal(t, "WARN", failed["level"])
	assert.Contains(t, failed["error"], "path not found")
}
