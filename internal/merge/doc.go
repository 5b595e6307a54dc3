// Package merge groups detected text-line quadrilaterals into regions.
//
// A region is a set of lines that downstream recognition and typesetting
// treat as one unit: a paragraph, the contents of a speech balloon, or a
// caption. The package implements a single deterministic pass per page:
//
//  1. Feature extraction: every Line gets a centroid, a unit text-flow
//     direction, a length along that direction, a thickness across it (the
//     font-size proxy) and an orientation class.
//  2. Compatibility: a symmetric predicate over two line features decides
//     whether the lines belong to the same block of text.
//  3. Partitioning: compatible pairs form the edges of an undirected graph
//     whose connected components are computed with a disjoint-set forest.
//  4. Assembly: each component becomes a Region with a reading order, a
//     union bounding box and a dominant orientation.
//  5. Ordering: regions are returned in page reading order.
//
// # Scale Invariance
//
// Every threshold in Policy is a multiple of line thickness, never an
// absolute pixel count. Scaling all coordinates by a constant factor yields
// the same grouping.
//
// # Reading Order
//
// Horizontal regions read top to bottom. Vertical regions (manga and other
// vertical scripts) read their columns right to left. Regions themselves are
// ordered by the top edge of their bounding box, then by the left edge.
//
// # Transitivity
//
// Compatibility is not transitive. A component may contain two lines that
// were never compatible with each other but are chained through a third.
// Such components are accepted as-is; Options.Refine enables a second pass
// that splits components at outlying minimum-spanning-tree edges.
//
// # Errors
//
// Malformed lines (non-finite coordinates, or a decoded point count other
// than four) and degenerate lines (zero area) never fail a call; they come
// back as singleton regions. The only hard error is ErrInvalidPageSize.
//
// # Concurrency
//
// Dispatch is synchronous and keeps no state between calls. A Merger may be
// shared by any number of goroutines.
package merge
