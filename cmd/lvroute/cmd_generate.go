package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/dataset"
	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/planner"
)

// generateFlags mirrors the builder options exposed on the command line.
type generateFlags struct {
	kind       string
	rows, cols int
	n, k       int
	seed       int64
	origin     string
	spacing    float64
	spread     float64
	unit       string
	detour     float64
	important  int
	out        string
	format     string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic dataset (grid or scatter)",
		Example: `  lvroute generate --kind grid --rows 10 --cols 10 --out data/grid.yaml
  lvroute generate --kind scatter --n 500 --k 4 --seed 7 --unit km --format json`,
		Args: cobra.NoArgs,
		// Generation does not need a configuration or a dataset.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.OutOrStdout(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "grid", "layout: grid | scatter")
	fl.IntVar(&f.rows, "rows", 5, "grid rows")
	fl.IntVar(&f.cols, "cols", 5, "grid columns")
	fl.IntVar(&f.n, "n", 50, "scatter location count")
	fl.IntVar(&f.k, "k", 3, "scatter nearest neighbours per location")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVar(&f.origin, "origin", "", `anchor coordinate "lat,lon"`)
	fl.Float64Var(&f.spacing, "spacing", 500, "grid block length in meters")
	fl.Float64Var(&f.spread, "spread", 5000, "scatter radius in meters")
	fl.StringVar(&f.unit, "unit", "m", "weight unit: m | km")
	fl.Float64Var(&f.detour, "detour", 1, "maximum detour factor (≥ 1) applied to geodesic weights")
	fl.IntVar(&f.important, "important-every", 1, "mark every n-th location as a destination (0 = none)")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	fl.StringVar(&f.format, "format", "", "yaml | json (default from --out extension, else yaml)")

	return cmd
}

// runGenerate validates flags up front so option constructors never panic on
// user input, builds the graph and encodes it.
func runGenerate(stdout io.Writer, f generateFlags) error {
	unit, err := geo.ParseUnit(f.unit)
	if err != nil {
		return err
	}
	if !(f.spacing > 0) || !(f.spread > 0) || math.IsInf(f.spacing, 0) || math.IsInf(f.spread, 0) {
		return fmt.Errorf("generate: spacing and spread must be finite and > 0")
	}
	if !(f.detour >= 1) || math.IsInf(f.detour, 0) {
		return fmt.Errorf("generate: detour must be ≥ 1, got %v", f.detour)
	}
	if f.important < 0 {
		return fmt.Errorf("generate: important-every must be ≥ 0, got %d", f.important)
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUnit(unit),
		builder.WithSpacing(f.spacing),
		builder.WithSpread(f.spread),
		builder.WithDetour(builder.UniformDetour(f.detour)),
		builder.WithImportantEvery(f.important),
	}
	if f.origin != "" {
		o, err := planner.ParseOrigin(f.origin)
		if err != nil {
			return err
		}
		if !o.IsPoint {
			return fmt.Errorf("generate: origin %q is not a \"lat,lon\" pair", f.origin)
		}
		opts = append(opts, builder.WithOrigin(o.Coordinate))
	}

	var ctor builder.Constructor
	switch f.kind {
	case "grid":
		ctor = builder.Grid(f.rows, f.cols)
	case "scatter":
		ctor = builder.Scatter(f.n, f.k)
	default:
		return fmt.Errorf("generate: unknown kind %q (want grid or scatter)", f.kind)
	}

	g, err := builder.BuildGraph(opts, ctor)
	if err != nil {
		return err
	}

	format := dataset.YAML
	switch {
	case f.format == "json":
		format = dataset.JSON
	case f.format == "yaml":
	case f.format != "":
		return fmt.Errorf("generate: unknown format %q (want yaml or json)", f.format)
	case f.out != "":
		format = dataset.FormatOf(f.out)
	}

	w := stdout
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	return dataset.Encode(w, dataset.FromGraph(g), format)
}
