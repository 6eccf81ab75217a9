// SPDX-License-Identifier: MIT

// Command motley generates market-hall massing models from a YAML run
// configuration.
//
//	motley generate -c motley.yaml
//	motley measure  -c motley.yaml
//	motley batch    a.yaml b.yaml
//	motley watch    -c motley.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/motley/config"
	"github.com/katalvlaran/motley/export"
	"github.com/katalvlaran/motley/massing"
)

// app holds what the global flags resolve to for one invocation.
type app struct {
	configPath string
	logLevel   string
	logger     *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "motley",
		Short: "Procedural market-hall massing generator",
		Long: `motley reads a site boundary, a cell profile and a circulation path and
generates the massing of a covered market hall: cells flanking the path in
offset tiers, a roof over the spine, and the arches, windows, skylights,
entrances and interiors carved out of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lc := config.LoggingConfig{Level: "info", Format: "json"}
			if cfg, err := config.Load(a.configPath); err == nil {
				lc = cfg.Logging
			}
			if a.logLevel != "" {
				lc.Level = a.logLevel
			}
			log, err := lc.NewLogger()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "motley.yaml", "run configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(a),
		newMeasureCmd(a),
		newBatchCmd(a),
		newWatchCmd(a),
	)
	return root
}

// loadConfig reads and validates one configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// generate runs the full pipeline for cfg and writes its outputs into dir.
func generate(ctx context.Context, cfg *config.Config, dir string, log *zap.Logger) (*massing.Manifest, []string, error) {
	curves, err := cfg.Curves()
	if err != nil {
		return nil, nil, err
	}
	m, err := massing.Solve(curves.Boundary, curves.Cell, curves.Path, cfg.Options(log)...)
	if err != nil {
		return nil, nil, err
	}
	paths, err := export.WriteAll(ctx, dir, m, export.Options{
		Format:     cfg.Output.Format,
		STL:        cfg.Output.STL,
		Resolution: cfg.Output.MeshResolution,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info("massing generated",
		zap.Stringer("job", m.JobID),
		zap.Int("cells", len(m.Cells)),
		zap.String("dir", dir),
		zap.Int("files", len(paths)),
	)
	return m, paths, nil
}
