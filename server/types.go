package server

import "github.com/katalvlaran/lvroute/geo"

// Error codes carried in ErrorResponse.Code.
const (
	CodeUnknownLocation = "UNKNOWN_LOCATION"
	CodeInvalidAlgo     = "INVALID_ALGORITHM"
	CodeMalformedOrigin = "MALFORMED_ORIGIN"
	CodePathNotFound    = "PATH_NOT_FOUND"
	CodeSearchTimeout   = "SEARCH_TIMEOUT"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternal        = "INTERNAL"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the machine-readable error code.
	Code string `json:"code"`
}

// LocationsResponse is returned by GET /v1/locations.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// AlgorithmsResponse is returned by GET /v1/algorithms.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

// RouteRequest is the body of POST /v1/route.
//
// Origin is a location identifier, an important name or "lat,lon".
// OriginCoordinate takes precedence when set. Algorithm may be any alias;
// blank selects the server default.
type RouteRequest struct {
	Origin           string          `json:"origin" binding:"required_without=OriginCoordinate"`
	OriginCoordinate *geo.Coordinate `json:"origin_coordinate,omitempty"`
	Destination      string          `json:"destination" binding:"required"`
	Algorithm        string          `json:"algorithm"`
}

// RouteResponse is a found route. Coordinates are [lat, lon] pairs, start first.
type RouteResponse struct {
	Coordinates [][2]float64 `json:"coordinates"`
	LocationIDs []string     `json:"location_ids"`
	Distance    float64      `json:"distance"`
	Unit        string       `json:"unit"`
	Algorithm   string       `json:"algorithm"`
	Origin      string       `json:"origin"`
	Expanded    int          `json:"expanded"`
}

// BatchRequest is the body of POST /v1/routes.
type BatchRequest struct {
	Queries []RouteRequest `json:"queries" binding:"required,min=1,max=100,dive"`
}

// BatchResult is one entry of a BatchResponse; exactly one field is set.
type BatchResult struct {
	Route *RouteResponse `json:"route,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
	Edges     int    `json:"edges"`
}
