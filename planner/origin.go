package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/geo"
)

// Origin is where a route starts: either a free coordinate, snapped to the
// nearest location at query time, or a reference to a location by identifier
// or important name.
type Origin struct {
	Ref        string
	Coordinate geo.Coordinate
	IsPoint    bool
}

// OriginFromRef returns an origin naming a location.
func OriginFromRef(ref string) Origin { return Origin{Ref: ref} }

// OriginFromCoordinate returns a coordinate origin.
// Errors: ErrMalformedOrigin when lat/lon are not a valid WGS-84 pair.
func OriginFromCoordinate(lat, lon float64) (Origin, error) {
	c, err := geo.NewCoordinate(lat, lon)
	if err != nil {
		return Origin{}, fmt.Errorf("%w: %v", ErrMalformedOrigin, err)
	}

	return Origin{Coordinate: c, IsPoint: true}, nil
}

// ParseOrigin interprets s as "lat,lon" when every comma-separated part is a
// number, and as a location reference otherwise.
// Errors: ErrMalformedOrigin for an empty input, an out-of-range pair, or a
// numeric tuple that is not a pair.
func ParseOrigin(s string) (Origin, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Origin{}, fmt.Errorf("%w: empty", ErrMalformedOrigin)
	}
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return OriginFromRef(s), nil
	}
	nums := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return OriginFromRef(s), nil
		}
		nums[i] = f
	}
	if len(nums) != 2 {
		return Origin{}, fmt.Errorf("%w: %d numbers, want lat,lon", ErrMalformedOrigin, len(nums))
	}

	return OriginFromCoordinate(nums[0], nums[1])
}

// String renders o the way ParseOrigin reads it.
func (o Origin) String() string {
	if o.IsPoint {
		return o.Coordinate.String()
	}

	return o.Ref
}
