// Package motif builds the closed profile curves that carving solids are made
// from: pointed (Gothic) arches and rectangles, each laid out in a plane.
//
// Gothic profiles always have the same number of vertices (2·ArcSegments+3),
// so any two of them can be lofted together regardless of size.
package motif
