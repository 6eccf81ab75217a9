// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motley/export"
	"github.com/katalvlaran/motley/massing"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the massing and write the report and meshes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			m, paths, err := generate(cmd.Context(), cfg, cfg.Output.Dir, a.logger)
			if err != nil {
				return err
			}
			s := m.Summary()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d stations, %d tiers per side, %d cells, %d/%d carves applied\n",
				s.JobID, len(s.Stations), s.TiersPerSide, s.Cells, s.CarvesApplied, s.CarvesApplied+s.CarvesSkipped)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newMeasureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "measure",
		Short: "Measure the input curves and print their noise ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			curves, err := cfg.Curves()
			if err != nil {
				return err
			}
			m, err := massing.SolveStages(curves.Boundary, curves.Cell, curves.Path, cfg.Options(a.logger), massing.MeasureStages()...)
			if err != nil {
				return err
			}
			return export.WriteReport(cmd.OutOrStdout(), m, cfg.Output.Format)
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch config.yaml [config.yaml...]",
		Short: "Generate several configurations in parallel",
		Long: `Runs generate for every configuration file. Runs share nothing; each
writes into <output.dir>/<config name>/. The first failure cancels the rest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([][]string, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			if jobs > 0 {
				g.SetLimit(jobs)
			}
			for i, path := range args {
				g.Go(func() error {
					cfg, err := loadConfig(path)
					if err != nil {
						return err
					}
					dir := filepath.Join(cfg.Output.Dir, batchName(path))
					_, paths, err := generate(ctx, cfg, dir, a.logger)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					results[i] = paths
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for i, paths := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d files\n", args[i], len(paths))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "maximum concurrent runs (0 = unlimited)")
	return cmd
}

// batchName is the config file name without its extension.
func batchName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
