package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrMalformedCoordinate indicates a latitude/longitude pair that is not a
// pair of finite numbers inside the WGS-84 ranges.
var ErrMalformedCoordinate = errors.New("geo: malformed coordinate")

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// NewCoordinate builds a Coordinate and validates it.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate reports ErrMalformedCoordinate when either component is NaN,
// infinite or outside [-90,90] / [-180,180].
func (c Coordinate) Validate() error {
	switch {
	case math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0):
		return fmt.Errorf("%w: latitude %v is not finite", ErrMalformedCoordinate, c.Lat)
	case math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0):
		return fmt.Errorf("%w: longitude %v is not finite", ErrMalformedCoordinate, c.Lon)
	case c.Lat < -90 || c.Lat > 90:
		return fmt.Errorf("%w: latitude %v out of range", ErrMalformedCoordinate, c.Lat)
	case c.Lon < -180 || c.Lon > 180:
		return fmt.Errorf("%w: longitude %v out of range", ErrMalformedCoordinate, c.Lon)
	}

	return nil
}

// Point converts c to an orb.Point. orb orders points as (lon, lat).
func (c Coordinate) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// FromPoint is the inverse of Coordinate.Point.
func FromPoint(p orb.Point) Coordinate { return Coordinate{Lat: p.Lat(), Lon: p.Lon()} }

// String renders c as "lat,lon" with seven decimals, the precision used by
// OSM-style datasets.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.7f,%.7f", c.Lat, c.Lon)
}
