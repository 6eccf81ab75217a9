// SPDX-License-Identifier: MIT
// Package: motley/massing
//
// options.go — functional options for Solve.
//
// Contract:
//   • Options resolve into an immutable Config; later options override
//     earlier ones.
//   • Option constructors panic on meaningless inputs (nil kernel, nil
//     logger). Stages never panic on geometry.

package massing

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/noise"
)

// Option customises a run.
type Option func(*Config)

// Config is the resolved, read-only run configuration every stage receives.
type Config struct {
	kernel    kernel.Kernel
	log       *zap.Logger
	seed      int64
	normalize bool
	jobID     uuid.UUID
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		kernel: kernel.New(),
		log:    zap.NewNop(),
		seed:   noise.DefaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.jobID == uuid.Nil {
		cfg.jobID = uuid.New()
	}
	return cfg
}

// WithKernel selects the geometry kernel. Panics on nil.
func WithKernel(k kernel.Kernel) Option {
	if k == nil {
		panic("massing: WithKernel(nil)")
	}
	return func(c *Config) { c.kernel = k }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("massing: WithLogger(nil)")
	}
	return func(c *Config) { c.log = l }
}

// WithSeed overrides the seed every randomized stage opens its stream with.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithNormalizedStations stretches the station offsets over the full path
// length before use. Off by default.
func WithNormalizedStations(on bool) Option {
	return func(c *Config) { c.normalize = on }
}

// WithJobID fixes the manifest's job identity instead of generating one.
func WithJobID(id uuid.UUID) Option {
	return func(c *Config) { c.jobID = id }
}

// Kernel returns the geometry kernel of the run.
func (c Config) Kernel() kernel.Kernel { return c.kernel }

// Logger returns the run logger, already tagged with the job id.
func (c Config) Logger() *zap.Logger { return c.log }

// Seed returns the seed every randomized stage opens its stream with.
func (c Config) Seed() int64 { return c.seed }

// JobID returns the identity of the run.
func (c Config) JobID() uuid.UUID { return c.jobID }
