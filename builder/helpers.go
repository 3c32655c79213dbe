package builder

import (
	"fmt"
	"math"

	orbgeo "github.com/paulmach/orb/geo"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

// Compass bearings in degrees.
const (
	bearingEast  = 90.0
	bearingSouth = 180.0
)

// offset moves c by meters along bearing on the great circle.
func offset(c geo.Coordinate, bearing, meters float64) geo.Coordinate {
	if meters == 0 {
		return c
	}

	out := geo.FromPoint(orbgeo.PointAtBearingAndDistance(c.Point(), bearing, meters))
	// Fold longitudes that crossed the antimeridian back into [-180,180].
	if out.Lon > 180 || out.Lon < -180 {
		out.Lon = math.Remainder(out.Lon, 360)
	}

	return out
}

// place registers the idx-th generated location at c.
func place(b *core.Builder, cfg builderConfig, method string, idx int, c geo.Coordinate) (core.Location, error) {
	id := cfg.idFn(idx)
	loc := core.Location{
		ID:         id,
		Name:       cfg.nameFn(id),
		Coordinate: c,
		Important:  cfg.importantEvery > 0 && idx%cfg.importantEvery == 0,
	}
	if err := b.AddLocation(loc); err != nil {
		return core.Location{}, fmt.Errorf("%s: AddLocation(%s): %w", method, id, err)
	}

	return loc, nil
}

// connect joins two generated locations with their geodesic length in
// cfg.unit times one detour draw.
func connect(b *core.Builder, cfg builderConfig, method string, from, to core.Location) error {
	w := geo.DistanceIn(from.Coordinate, to.Coordinate, cfg.unit) * cfg.detourFn(cfg.rng)
	if _, err := b.AddEdge(from.ID, to.ID, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, from.ID, to.ID, w, err)
	}

	return nil
}
