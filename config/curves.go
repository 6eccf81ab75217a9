// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motley/kernel"
)

// Curves are the three generator inputs.
type Curves struct {
	Boundary *kernel.Polyline
	Cell     *kernel.Polyline
	Path     *kernel.Polyline
}

// Curves builds the input curves. When curves_file is set its contents
// replace the inline lists. Boundary and cell are closed; the path stays open.
func (c *Config) Curves() (Curves, error) {
	in := c.Input
	if in.CurvesFile != "" {
		path := c.Resolve(in.CurvesFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return Curves{}, fmt.Errorf("config: read curves %s: %w", path, err)
		}
		in = InputConfig{}
		if err := yaml.Unmarshal(data, &in); err != nil {
			return Curves{}, fmt.Errorf("config: parse curves %s: %w", path, err)
		}
	}

	boundary, err := points("boundary", in.Boundary)
	if err != nil {
		return Curves{}, err
	}
	cell, err := points("cell", in.Cell)
	if err != nil {
		return Curves{}, err
	}
	path, err := points("path", in.Path)
	if err != nil {
		return Curves{}, err
	}
	return Curves{
		Boundary: kernel.ClosedPolyline(boundary...),
		Cell:     kernel.ClosedPolyline(cell...),
		Path:     kernel.NewPolyline(path...),
	}, nil
}

func points(name string, raw [][]float64) ([]r3.Vec, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("input.%s: %w", name, ErrNoCurves)
	}
	out := make([]r3.Vec, len(raw))
	for i, p := range raw {
		switch len(p) {
		case 2:
			out[i] = r3.Vec{X: p[0], Y: p[1]}
		case 3:
			out[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		default:
			return nil, fmt.Errorf("input.%s[%d]: %d coordinates: %w", name, i, len(p), ErrBadPoint)
		}
	}
	return out, nil
}
