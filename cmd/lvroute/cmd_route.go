package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/planner"
)

// routeOutput is the --json rendering of a route.
type routeOutput struct {
	Algorithm   string       `json:"algorithm"`
	Origin      string       `json:"origin"`
	LocationIDs []string     `json:"location_ids"`
	Coordinates [][2]float64 `json:"coordinates"`
	Distance    float64      `json:"distance"`
	Unit        string       `json:"unit"`
	Expanded    int          `json:"expanded"`
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		from, to, algorithm string
		asJSON              bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan one route and print it",
		Example: `  lvroute route --from "New York" --to "Los Angeles" --algorithm "a*"
  lvroute route --from 40.71,-74.00 --to "Los Angeles" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			origin, err := planner.ParseOrigin(from)
			if err != nil {
				return err
			}
			p, err := a.loadPlanner()
			if err != nil {
				return err
			}
			r, err := p.FindPath(cmd.Context(), origin, to, algorithm)
			if err != nil {
				return err
			}
			unit := p.Graph().Unit().String()
			if asJSON {
				return writeRouteJSON(cmd.OutOrStdout(), r, unit)
			}
			writeRouteText(cmd.OutOrStdout(), r, unit)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", `origin: location id, important name or "lat,lon"`)
	cmd.Flags().StringVar(&to, "to", "", "destination: location id or important name")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "algorithm token (default search.default_algorithm)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func writeRouteText(w io.Writer, r *planner.Route, unit string) {
	fmt.Fprintf(w, "%s: %s\n", r.Strategy, strings.Join(r.LocationIDs, " -> "))
	fmt.Fprintf(w, "distance: %g %s\n", r.Distance, unit)
	fmt.Fprintf(w, "expanded: %d\n", r.Expanded)
}

func writeRouteJSON(w io.Writer, r *planner.Route, unit string) error {
	out := routeOutput{
		Algorithm:   r.Strategy.String(),
		Origin:      r.Origin,
		LocationIDs: r.LocationIDs,
		Coordinates: make([][2]float64, len(r.Coordinates)),
		Distance:    r.Distance,
		Unit:        unit,
		Expanded:    r.Expanded,
	}
	for i, c := range r.Coordinates {
		out.Coordinates[i] = [2]float64{c.Lat, c.Lon}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
