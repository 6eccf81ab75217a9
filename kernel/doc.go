// Package kernel is the geometry layer of motley: polyline curves, planes,
// planar regions and closed solids, plus the Kernel interface through which
// the massing pipeline asks for solid-modelling operations.
//
// What:
//
//   - Curves:    Polyline (arc-length parameterised), JoinCurves,
//     IntersectCurves, SplitClosed.
//   - Frames:    Plane (orthonormal origin + axes), station and
//     perpendicular frames along a curve.
//   - Regions:   ContainsXY, AreaXY, CentroidXY and plan Boolean difference,
//     delegated to github.com/ctessum/geom.
//   - Solids:    Kernel (CapPlanar, Extrude, Loft, Sweep, Join, Union,
//     Difference, ProfileDifference) and its reference
//     implementation CSG, built on github.com/unixpickle/model3d.
//   - Helpers:   SafeDifference (never fails), ExtrudeCapped, Translate, Mesh.
//
// Why:
//
//   - The massing pipeline only needs a narrow solid-modelling surface. Hiding
//     it behind Kernel lets a production B-rep engine replace CSG without
//     touching any stage.
//   - CSG solids are membership classifiers, so Booleans are exact and cheap
//     to compose; a mesh is only produced on export.
//
// Complexity:
//
//   - Curve queries: O(n) in the number of segments.
//   - IntersectCurves: O(n·m).
//   - Difference: O(r + d³) membership tests, r removals and d the sample
//     density.
//
// Errors:
//
//   - ErrOpenProfile, ErrNonPlanar, ErrSelfIntersecting, ErrZeroArea when a
//     profile cannot bound a face.
//   - ErrParallelExtrusion, ErrLoftMismatch, ErrShortRail for invalid
//     extrusion, loft or sweep inputs.
//   - ErrOpenShell when Join cannot close a shell.
//   - ErrEmptyUnion, ErrNilSolid, ErrNoResult for Boolean operations.
//
// All geometry values (Polyline, Plane, Box, solids) are immutable once built
// and safe to share between goroutines.
package kernel
