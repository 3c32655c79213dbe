package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/dataset"
	"github.com/katalvlaran/lvroute/planner"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath  string
	datasetPath string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, so tests can execute commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "lvroute",
		Short:        "Route planning over a weighted location graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.datasetPath != "" {
				cfg.Dataset.Path = a.datasetPath
			}
			a.cfg = cfg
			a.logger = cfg.Log.Logger(cmd.ErrOrStderr())

			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.datasetPath, "dataset", "d", "", "dataset file, overrides dataset.path")

	root.AddCommand(
		newServeCmd(a),
		newRouteCmd(a),
		newLocationsCmd(a),
		newAlgorithmsCmd(),
		newGenerateCmd(),
	)

	return root
}

// loadPlanner loads the configured dataset and wraps it in a Planner. A dataset
// that fails to load is fatal to the calling command.
func (a *app) loadPlanner() (*planner.Planner, error) {
	g, err := dataset.Load(a.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Dataset loaded",
		"path", a.cfg.Dataset.Path,
		"locations", g.LocationCount(),
		"edges", g.EdgeCount(),
		"unit", g.Unit().String(),
	)

	return planner.New(g,
		planner.WithLogger(a.logger),
		planner.WithDefaultAlgorithm(a.cfg.Search.DefaultAlgorithm),
		planner.WithTimeout(a.cfg.Search.Timeout),
		planner.WithMaxExpansions(a.cfg.Search.MaxExpansions),
		planner.WithBatchConcurrency(a.cfg.Search.BatchConcurrency),
	)
}

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the names of every destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPlanner()
			if err != nil {
				return err
			}
			for _, name := range p.ListImportantLocations() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported algorithm tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, token := range planner.ListSupportedAlgorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), token)
			}

			return nil
		},
	}
}
