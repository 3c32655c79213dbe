package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func setupRouter(t *testing.T, cfg config.ServerConfig) *gin.Engine {
	t.Helper()
	b := core.NewBuilder(core.WithUnit(geo.Kilometers))
	for _, l := range []core.Location{
		{ID: "A", Name: "New York", Coordinate: geo.Coordinate{Lat: 40.7128, Lon: -74.0060}, Important: true},
		{ID: "B", Name: "Los Angeles", Coordinate: geo.Coordinate{Lat: 34.0522, Lon: -118.2437}, Important: true},
		{ID: "C", Name: "Chicago", Coordinate: geo.Coordinate{Lat: 41.8781, Lon: -87.6298}, Important: true},
		{ID: "D", Name: "Houston", Coordinate: geo.Coordinate{Lat: 29.7604, Lon: -95.3698}, Important: true},
		{ID: "E", Name: "Phoenix", Coordinate: geo.Coordinate{Lat: 33.4484, Lon: -112.0740}, Important: true},
		{ID: "F", Name: "Honolulu", Coordinate: geo.Coordinate{Lat: 21.3069, Lon: -157.8583}, Important: true},
	} {
		require.NoError(t, b.AddLocation(l))
	}
	for _, e := range []core.Edge{
		{From: "A", To: "C", Weight: 1145},
		{From: "C", To: "D", Weight: 1515},
		{From: "D", To: "E", Weight: 1890},
		{From: "E", To: "B", Weight: 575},
		{From: "A", To: "D", Weight: 1627},
	} {
		_, err := b.AddEdge(e.From, e.To, e.Weight)
		require.NoError(t, err)
	}
	g, err := b.Freeze()
	require.NoError(t, err)
	p, err := planner.New(g)
	require.NoError(t, err)

	return server.NewRouter(p, cfg, quiet)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestHandleLocationsAndAlgorithms(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	w := do(r, http.MethodGet, "/v1/locations", "")
	require.Equal(t, http.StatusOK, w.Code)
	locs := decode[server.LocationsResponse](t, w)
	assert.Equal(t, []string{"Chicago", "Honolulu", "Houston", "Los Angeles", "New York", "Phoenix"}, locs.Locations)

	w = do(r, http.MethodGet, "/v1/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)
	algos := decode[server.AlgorithmsResponse](t, w)
	assert.Len(t, algos.Algorithms, 8)
	assert.Equal(t, "a-star", algos.Algorithms[0])
}

func TestHandleRoute(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	w := do(r, http.MethodPost, "/v1/route", `{"origin":"New York","destination":"Los Angeles","algorithm":"A Star"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[server.RouteResponse](t, w)
	assert.Equal(t, []string{"A", "D", "E", "B"}, resp.LocationIDs)
	assert.InDelta(t, 4092, resp.Distance, 1e-9)
	assert.Equal(t, "km", resp.Unit)
	assert.Equal(t, "a-star", resp.Algorithm)
	require.Len(t, resp.Coordinates, 4)
	assert.Equal(t, [2]float64{40.7128, -74.0060}, resp.Coordinates[0])
	assert.Equal(t, [2]float64{34.0522, -118.2437}, resp.Coordinates[3])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleRoute_CoordinateOrigins(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	w := do(r, http.MethodPost, "/v1/route", `{"origin":"41.9,-87.6","destination":"Houston","algorithm":"bfs"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[server.RouteResponse](t, w)
	assert.Equal(t, "C", resp.Origin)
	assert.Equal(t, []string{"C", "D"}, resp.LocationIDs)

	w = do(r, http.MethodPost, "/v1/route", `{"origin_coordinate":{"lat":33.4,"lon":-112.1},"destination":"Los Angeles"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = decode[server.RouteResponse](t, w)
	assert.Equal(t, []string{"E", "B"}, resp.LocationIDs)
	assert.Equal(t, "a-star", resp.Algorithm, "blank algorithm uses the default")
}

func TestHandleRoute_Errors(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"not json", `{`, http.StatusBadRequest, server.CodeInvalidRequest},
		{"no destination", `{"origin":"A"}`, http.StatusBadRequest, server.CodeInvalidRequest},
		{"no origin", `{"destination":"B"}`, http.StatusBadRequest, server.CodeInvalidRequest},
		{"bad algorithm", `{"origin":"A","destination":"B","algorithm":"quantum"}`, http.StatusBadRequest, server.CodeInvalidAlgo},
		{"bad coordinate", `{"origin":"95,10","destination":"B"}`, http.StatusBadRequest, server.CodeMalformedOrigin},
		{"bad origin_coordinate", `{"origin_coordinate":{"lat":0,"lon":500},"destination":"B"}`, http.StatusBadRequest, server.CodeMalformedOrigin},
		{"unknown origin", `{"origin":"Gotham","destination":"B"}`, http.StatusNotFound, server.CodeUnknownLocation},
		{"unknown destination", `{"origin":"A","destination":"Gotham"}`, http.StatusNotFound, server.CodeUnknownLocation},
		{"unreachable", `{"origin":"A","destination":"Honolulu"}`, http.StatusNotFound, server.CodePathNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/v1/route", tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			resp := decode[server.ErrorResponse](t, w)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleRoutes(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	body := `{"queries":[
		{"origin":"A","destination":"B","algorithm":"ucs"},
		{"origin":"95,10","destination":"B"},
		{"origin":"A","destination":"F"},
		{"origin":"Chicago","destination":"Phoenix","algorithm":"ida*"}
	]}`
	w := do(r, http.MethodPost, "/v1/routes", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[server.BatchResponse](t, w)
	require.Len(t, resp.Results, 4)

	require.NotNil(t, resp.Results[0].Route)
	assert.InDelta(t, 4092, resp.Results[0].Route.Distance, 1e-9)
	require.NotNil(t, resp.Results[1].Error)
	assert.Equal(t, server.CodeMalformedOrigin, resp.Results[1].Error.Code)
	require.NotNil(t, resp.Results[2].Error)
	assert.Equal(t, server.CodePathNotFound, resp.Results[2].Error.Code)
	require.NotNil(t, resp.Results[3].Route)
	assert.Equal(t, "iterative-deepening-a-star", resp.Results[3].Route.Algorithm)
	assert.InDelta(t, 1515+1890, resp.Results[3].Route.Distance, 1e-9)

	w = do(r, http.MethodPost, "/v1/routes", `{"queries":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	w := do(r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[server.HealthResponse](t, w)
	assert.Equal(t, server.HealthResponse{Status: "healthy", Locations: 6, Edges: 5}, health)

	do(r, http.MethodPost, "/v1/route", `{"origin":"A","destination":"B"}`)
	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lvroute_query_total")
}

func TestRequestIDEcho(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{RateLimit: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/healthz", "").Code)
	w := do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, server.CodeRateLimited, decode[server.ErrorResponse](t, w).Code)
}

func TestCORS(t *testing.T) {
	r := setupRouter(t, config.ServerConfig{CORSOrigins: []string{"https://maps.example.org"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/route", bytes.NewReader(nil))
	req.Header.Set("Origin", "https://maps.example.org")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Equal(t, "https://maps.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/locations", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
