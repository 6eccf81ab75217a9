// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchDebounce collapses the bursts of events editors emit on save.
const watchDebounce = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the configuration or curves file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			regen := func() error {
				cfg, err := loadConfig(a.configPath)
				if err != nil {
					return err
				}
				_, _, err = generate(ctx, cfg, cfg.Output.Dir, a.logger)
				return err
			}

			// Watch directories: editors often replace files instead of
			// writing them in place.
			targets := map[string]bool{filepath.Clean(a.configPath): true}
			if cfg, err := loadConfig(a.configPath); err == nil && cfg.Input.CurvesFile != "" {
				targets[filepath.Clean(cfg.Resolve(cfg.Input.CurvesFile))] = true
			}
			w, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer w.Close()
			dirs := map[string]bool{}
			for t := range targets {
				dirs[filepath.Dir(t)] = true
			}
			for d := range dirs {
				if err := w.Add(d); err != nil {
					return fmt.Errorf("watch %s: %w", d, err)
				}
			}

			if err := regen(); err != nil {
				a.logger.Warn("initial generation failed", zap.Error(err))
			}
			a.logger.Info("watching", zap.Int("files", len(targets)))
			return watchLoop(ctx, w, targets, watchDebounce, regen, a.logger)
		},
	}
}

// watchLoop calls regen once per debounced burst of writes to any target
// file until ctx is done or the watcher closes. Regeneration errors are
// logged and never stop the loop.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, targets map[string]bool, debounce time.Duration, regen func() error, log *zap.Logger) error {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("change detected", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := regen(); err != nil {
				log.Warn("regeneration failed", zap.Error(err))
				continue
			}
			log.Info("regenerated")
		}
	}
}
