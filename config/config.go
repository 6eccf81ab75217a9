// SPDX-License-Identifier: MIT
// Package: motley/config
//
// config.go — YAML run configuration: defaults, load, env overrides, save,
// validation, and translation into kernel/massing options and a logger.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/massing"
	"github.com/katalvlaran/motley/noise"
)

// Environment overrides.
const (
	EnvOutputDir = "MOTLEY_OUTPUT_DIR"
	EnvLogLevel  = "MOTLEY_LOG_LEVEL"
)

// Report formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the whole run configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`

	// dir resolves relative paths; it is the directory of the loaded file.
	dir string
}

// InputConfig supplies the three input curves, inline or from a file.
type InputConfig struct {
	CurvesFile string      `yaml:"curves_file,omitempty"`
	Boundary   [][]float64 `yaml:"boundary,omitempty"`
	Cell       [][]float64 `yaml:"cell,omitempty"`
	Path       [][]float64 `yaml:"path,omitempty"`
}

// GenerationConfig tunes the generator.
type GenerationConfig struct {
	Seed              int64   `yaml:"seed"`
	NormalizeStations bool    `yaml:"normalize_stations"`
	Tolerance         float64 `yaml:"tolerance"`
}

// OutputConfig says where and how results are written.
type OutputConfig struct {
	Dir            string  `yaml:"dir"`
	Format         string  `yaml:"format"` // yaml, json
	STL            bool    `yaml:"stl"`
	MeshResolution float64 `yaml:"mesh_resolution"`
}

// LoggingConfig configures the command's logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Seed:      noise.DefaultSeed,
			Tolerance: kernel.DefaultTolerance,
		},
		Output: OutputConfig{
			Dir:            "out",
			Format:         FormatYAML,
			MeshResolution: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file over the defaults and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.Output.Dir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks every enumerated and numeric field.
func (c *Config) Validate() error {
	if !(c.Generation.Tolerance > 0) {
		return fmt.Errorf("generation.tolerance %g: %w", c.Generation.Tolerance, ErrInvalid)
	}
	switch c.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir empty: %w", ErrInvalid)
	}
	if c.Output.STL && !(c.Output.MeshResolution > 0) {
		return fmt.Errorf("output.mesh_resolution %g: %w", c.Output.MeshResolution, ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalid)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}
	return nil
}

// Resolve returns path relative to the directory of the loaded file, or
// path itself when it is absolute or nothing was loaded.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Kernel builds the geometry kernel the generation section asks for.
func (c *Config) Kernel() *kernel.CSG {
	return kernel.New(kernel.WithTolerance(c.Generation.Tolerance))
}

// Options returns the massing options for one run. The logger may be nil.
func (c *Config) Options(log *zap.Logger) []massing.Option {
	opts := []massing.Option{
		massing.WithKernel(c.Kernel()),
		massing.WithSeed(c.Generation.Seed),
		massing.WithNormalizedStations(c.Generation.NormalizeStations),
	}
	if log != nil {
		opts = append(opts, massing.WithLogger(log))
	}
	return opts
}

// NewLogger builds a zap logger from the logging section.
func (l LoggingConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level %q: %w", l.Level, ErrInvalid)
	}
	zc := zap.NewProductionConfig()
	if l.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
