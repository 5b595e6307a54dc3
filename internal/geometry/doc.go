// Package geometry provides the 2-D primitives used by text-line clustering.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Coordinates are float64 so that detector output (often sub-pixel) and
// scaled pages round-trip without truncation.
//
// # Quadrilaterals
//
// A Quad is a fixed array of four corners in consistent winding order. For an
// upright horizontal text line the expected order is top-left, top-right,
// bottom-right, bottom-left (clockwise on screen). Detectors are free to start
// at any corner as long as the winding is consistent; every function in this
// package is invariant to a rotation of the starting corner.
//
// # Distances
//
// Distance computes the minimum Euclidean distance between two convex
// quadrilaterals, returning 0 when they touch or overlap. Quads produced by
// text detectors are convex in practice; concave input yields a conservative
// (never larger than the true) distance.
package geometry
