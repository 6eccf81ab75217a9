// Package export turns a generated manifest into typed output items, a
// YAML or JSON report, and STL meshes of the final solids.
//
// Every item carries a type hint so consumers can decode Data without
// knowing the item: "number" (float64), "curve" (list of [x y z] points)
// or "brep" (bounding box of a solid, plus the mesh file when one was
// written).
package export
