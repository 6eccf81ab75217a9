// Package motley is a procedural generator for the massing of covered market
// halls: give it a site boundary, a cell profile and a circulation path, and
// it lays out rows of cells along the path under one roof, then carves
// arches, windows, skylights, entrances and interiors out of them.
//
// 🚀 What is in the module?
//
//	kernel/  — polylines, planes and the solid-modelling Kernel with its
//	           reference CSG implementation (caps, extrusion, loft, sweep,
//	           join, union, difference, plan-profile Booleans, meshing)
//	measure/ — curve irregularity: segment and corner volatility, path drift
//	noise/   — noise ranges derived from volatility, seeded per-stage streams
//	motif/   — pointed-arch and rectangle profiles
//	massing/ — the manifest and the ordered stages that fill it (Solve)
//	config/  — YAML run configuration
//	export/  — typed output items, YAML/JSON reports, STL meshes
//	cmd/motley — generate, measure, batch and watch commands
//
// ✨ Guarantees
//
//   - Deterministic: the same curves, seed and kernel give the same hall.
//   - All or nothing: Solve returns a complete manifest or a *StageError.
//   - Carving never aborts a run: a failed subtraction keeps the solid and
//     is recorded in Manifest.Carves.
//
// Quick start:
//
//	m, err := massing.Solve(boundary, cell, path)
//	if err != nil {
//		return err
//	}
//	fmt.Println(m.Summary().Cells)
//
// See examples/market_hall.go for a runnable program.
package motley
