// SPDX-License-Identifier: MIT
// Package: motley/export
//
// export.go — typed output items, reports and STL meshes.
//
// Contract:
//   • Items lists measurements first, then curves, then solids, in manifest
//     order; the list is a pure function of the manifest.
//   • WriteAll meshes solids concurrently but names and writes files
//     deterministically; the first failure cancels the rest.

package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/massing"
)

// Type hints.
const (
	TypeNumber = "number"
	TypeCurve  = "curve"
	TypeBrep   = "brep"
)

// Item is one named output value.
type Item struct {
	Name     string `json:"name" yaml:"name"`
	TypeHint string `json:"type_hint" yaml:"type_hint"`
	Data     any    `json:"data" yaml:"data"`
}

// Brep describes a solid in a report.
type Brep struct {
	Min  [3]float64 `json:"min" yaml:"min,flow"`
	Max  [3]float64 `json:"max" yaml:"max,flow"`
	Mesh string     `json:"mesh,omitempty" yaml:"mesh,omitempty"`
}

// Report is what WriteReport serialises.
type Report struct {
	Summary massing.Summary `json:"summary" yaml:"summary"`
	Items   []Item          `json:"items" yaml:"items"`
}

// Options controls WriteAll.
type Options struct {
	Format     string  // yaml or json
	STL        bool    // also mesh every final solid
	Resolution float64 // marching-cubes grid step
}

// Items lists the manifest's outputs.
func Items(m *massing.Manifest) []Item {
	items := []Item{
		number("cell_width", m.CellWidth),
		number("cell_depth", m.CellDepth),
		number("segment_volatility", m.SegmentVolatility),
		number("corner_volatility", m.CornerVolatility),
		number("path_drift", m.PathDrift),
		number("segment_noise", m.SegmentNoise.Max),
		number("corner_noise", m.CornerNoise.Max),
		number("drift_noise", m.DriftNoise.Max),
	}

	items = appendCurve(items, "boundary", m.Boundary)
	items = appendCurve(items, "path", m.Path)
	items = appendCurve(items, "left_region", m.LeftRegion)
	items = appendCurve(items, "right_region", m.RightRegion)
	for _, f := range append(append([]massing.Flank(nil), m.LeftFlanks...), m.RightFlanks...) {
		items = appendCurve(items, fmt.Sprintf("flank_%s_%d", f.Side, f.Tier), f.Curve)
	}
	for i, p := range m.RoofProfiles {
		items = appendCurve(items, "roof_profile_"+strconv.Itoa(i), p)
	}
	items = appendCurve(items, "long_axis", m.LongAxis)
	for i, a := range m.ShortAxes {
		items = appendCurve(items, "short_axis_"+strconv.Itoa(i), a)
	}

	for _, s := range solids(m) {
		items = append(items, Item{Name: s.name, TypeHint: TypeBrep, Data: brep(s.solid, "")})
	}
	return items
}

func number(name string, v float64) Item {
	return Item{Name: name, TypeHint: TypeNumber, Data: v}
}

func appendCurve(items []Item, name string, c *kernel.Polyline) []Item {
	if c == nil {
		return items
	}
	pts := make([][3]float64, c.Len())
	for i, p := range c.Points {
		pts[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return append(items, Item{Name: name, TypeHint: TypeCurve, Data: pts})
}

func brep(s kernel.Solid, mesh string) Brep {
	b := kernel.SolidBox(s)
	return Brep{
		Min:  [3]float64{b.Min.X, b.Min.Y, b.Min.Z},
		Max:  [3]float64{b.Max.X, b.Max.Y, b.Max.Z},
		Mesh: mesh,
	}
}

type namedSolid struct {
	name  string
	solid kernel.Solid
}

// solids names the final solids: the sculpted roof, then each cell.
func solids(m *massing.Manifest) []namedSolid {
	var out []namedSolid
	if m.SculptedRoofMass != nil {
		out = append(out, namedSolid{"roof", m.SculptedRoofMass})
	}
	for _, c := range m.Cells {
		if c.Sculpted != nil {
			out = append(out, namedSolid{"cell_" + strconv.Itoa(c.Index), c.Sculpted})
		}
	}
	return out
}

// WriteReport serialises the summary and items of m.
func WriteReport(w io.Writer, m *massing.Manifest, format string) error {
	return writeReport(w, Report{Summary: m.Summary(), Items: Items(m)}, format)
}

func writeReport(w io.Writer, r Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("WriteReport: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("WriteReport: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("WriteReport: %q: %w", format, ErrUnknownFormat)
	}
}

// WriteSTL meshes a solid and writes it as binary STL.
func WriteSTL(w io.Writer, s kernel.Solid, resolution float64) error {
	if s == nil {
		return ErrNilSolid
	}
	if !(resolution > 0) {
		return fmt.Errorf("WriteSTL: %g: %w", resolution, ErrResolution)
	}
	mesh := kernel.Mesh(s, resolution)
	if _, err := w.Write(model3d.EncodeSTL(mesh.TriangleSlice())); err != nil {
		return fmt.Errorf("WriteSTL: %w", err)
	}
	return nil
}

// WriteAll writes report.<format> into dir and, when opts.STL is set, one
// <name>.stl per final solid. It returns the written paths, report first.
func WriteAll(ctx context.Context, dir string, m *massing.Manifest, opts Options) ([]string, error) {
	switch opts.Format {
	case "yaml", "json":
	default:
		return nil, fmt.Errorf("WriteAll: %q: %w", opts.Format, ErrUnknownFormat)
	}
	if opts.STL && !(opts.Resolution > 0) {
		return nil, fmt.Errorf("WriteAll: %g: %w", opts.Resolution, ErrResolution)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("WriteAll: %w", err)
	}

	report := Report{Summary: m.Summary(), Items: Items(m)}
	var meshes []string
	if opts.STL {
		named := solids(m)
		meshes = make([]string, len(named))
		for i, s := range named {
			meshes[i] = filepath.Join(dir, s.name+".stl")
		}
		if err := writeMeshes(ctx, named, meshes, opts.Resolution); err != nil {
			return nil, err
		}
		// Point the brep items at their files.
		for i := range report.Items {
			it := &report.Items[i]
			if it.TypeHint != TypeBrep {
				continue
			}
			b := it.Data.(Brep)
			b.Mesh = it.Name + ".stl"
			it.Data = b
		}
	}

	path := filepath.Join(dir, "report."+opts.Format)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("WriteAll: %w", err)
	}
	if err := writeReport(f, report, opts.Format); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("WriteAll: %w", err)
	}
	return append([]string{path}, meshes...), nil
}

func writeMeshes(ctx context.Context, named []namedSolid, paths []string, resolution float64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range named {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Create(paths[i])
			if err != nil {
				return fmt.Errorf("WriteAll: %w", err)
			}
			if err := WriteSTL(f, s.solid, resolution); err != nil {
				f.Close()
				return fmt.Errorf("WriteAll: %s: %w", s.name, err)
			}
			return f.Close()
		})
	}
	return g.Wait()
}
