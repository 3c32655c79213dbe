package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/search"
)

const requestIDHeader = "X-Request-ID"

// Handlers serves the HTTP API on top of a planner.
type Handlers struct {
	planner *planner.Planner
	logger  *slog.Logger
}

// NewHandlers returns handlers bound to p.
func NewHandlers(p *planner.Planner, logger *slog.Logger) *Handlers {
	return &Handlers{planner: p, logger: logger}
}

// RegisterRoutes mounts the API below rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/locations", h.HandleLocations)
	rg.GET("/algorithms", h.HandleAlgorithms)
	rg.POST("/route", h.HandleRoute)
	rg.POST("/routes", h.HandleRoutes)
}

// HandleLocations handles GET /v1/locations.
func (h *Handlers) HandleLocations(c *gin.Context) {
	c.JSON(http.StatusOK, LocationsResponse{Locations: h.planner.ListImportantLocations()})
}

// HandleAlgorithms handles GET /v1/algorithms.
func (h *Handlers) HandleAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, AlgorithmsResponse{Algorithms: h.planner.ListSupportedAlgorithms()})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	g := h.planner.Graph()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Locations: g.LocationCount(),
		Edges:     g.EdgeCount(),
	})
}

// HandleRoute handles POST /v1/route.
//
// Response:
//
//	200 OK: RouteResponse
//	400 Bad Request: INVALID_REQUEST, INVALID_ALGORITHM, MALFORMED_ORIGIN
//	404 Not Found: UNKNOWN_LOCATION, PATH_NOT_FOUND
//	504 Gateway Timeout: SEARCH_TIMEOUT
func (h *Handlers) HandleRoute(c *gin.Context) {
	logger := h.requestLogger(c, "HandleRoute")

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid route request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	resp, err := h.route(c.Request.Context(), req)
	if err != nil {
		status, body := errorResponse(err)
		logger.Info("Route query rejected", "code", body.Code, "error", err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleRoutes handles POST /v1/routes. Per-query failures are reported in
// place; the request itself fails only on a malformed body or when the client
// goes away.
func (h *Handlers) HandleRoutes(c *gin.Context) {
	logger := h.requestLogger(c, "HandleRoutes")

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid batch request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	results := make([]BatchResult, len(req.Queries))
	queries := make([]planner.Query, 0, len(req.Queries))
	index := make([]int, 0, len(req.Queries)) // queries[k] answers req.Queries[index[k]]
	for i, q := range req.Queries {
		origin, err := originOf(q)
		if err != nil {
			_, body := errorResponse(err)
			results[i].Error = &body
			continue
		}
		queries = append(queries, planner.Query{Origin: origin, Destination: q.Destination, Algorithm: q.Algorithm})
		index = append(index, i)
	}

	outcomes, err := h.planner.FindPaths(c.Request.Context(), queries)
	if err != nil {
		status, body := errorResponse(err)
		logger.Warn("Batch aborted", "error", err)
		c.JSON(status, body)
		return
	}
	for k, o := range outcomes {
		i := index[k]
		if o.Err != nil {
			_, body := errorResponse(o.Err)
			results[i].Error = &body
			continue
		}
		results[i].Route = h.toResponse(o.Route)
	}

	logger.Info("Batch complete", "queries", len(req.Queries))
	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

func (h *Handlers) route(ctx context.Context, req RouteRequest) (*RouteResponse, error) {
	origin, err := originOf(req)
	if err != nil {
		return nil, err
	}
	route, err := h.planner.FindPath(ctx, origin, req.Destination, req.Algorithm)
	if err != nil {
		return nil, err
	}

	return h.toResponse(route), nil
}

func originOf(req RouteRequest) (planner.Origin, error) {
	if req.OriginCoordinate != nil {
		return planner.OriginFromCoordinate(req.OriginCoordinate.Lat, req.OriginCoordinate.Lon)
	}

	return planner.ParseOrigin(req.Origin)
}

func (h *Handlers) toResponse(r *planner.Route) *RouteResponse {
	coords := make([][2]float64, len(r.Coordinates))
	for i, c := range r.Coordinates {
		coords[i] = [2]float64{c.Lat, c.Lon}
	}

	return &RouteResponse{
		Coordinates: coords,
		LocationIDs: r.LocationIDs,
		Distance:    r.Distance,
		Unit:        h.planner.Graph().Unit().String(),
		Algorithm:   r.Strategy.String(),
		Origin:      r.Origin,
		Expanded:    r.Expanded,
	}
}

// errorResponse maps planner and search errors onto HTTP statuses.
func errorResponse(err error) (int, ErrorResponse) {
	body := ErrorResponse{Error: err.Error()}
	var status int
	switch {
	case errors.Is(err, planner.ErrInvalidAlgorithmToken):
		status, body.Code = http.StatusBadRequest, CodeInvalidAlgo
	case errors.Is(err, planner.ErrMalformedOrigin):
		status, body.Code = http.StatusBadRequest, CodeMalformedOrigin
	case errors.Is(err, core.ErrUnknownLocation):
		status, body.Code = http.StatusNotFound, CodeUnknownLocation
	case errors.Is(err, search.ErrPathNotFound):
		status, body.Code = http.StatusNotFound, CodePathNotFound
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, search.ErrExpansionLimit):
		status, body.Code = http.StatusGatewayTimeout, CodeSearchTimeout
	default:
		status, body.Code = http.StatusInternalServerError, CodeInternal
	}

	return status, body
}

// requestLogger gets or creates the request ID and returns a logger carrying it.
func (h *Handlers) requestLogger(c *gin.Context, handler string) *slog.Logger {
	requestID := c.GetString(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return h.logger.With("request_id", requestID, "handler", handler)
}
