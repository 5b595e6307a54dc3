// Package detection finds text lines in a page image.
//
// It is a lightweight stand-in for a learned text detector: good enough to
// feed the line clustering on clean scans and synthetic pages, and replaceable
// by any detector that emits quadrilaterals.
//
// # Algorithm
//
//  1. Edge detection: grayscale, Sobel gradient magnitude, fixed threshold
//  2. Smearing: edge pixels closer than Gap along the text axis are joined,
//     turning the glyphs of one line into one blob
//  3. Labelling: 4-connected components of the smeared mask
//  4. Filtering: blobs below MinThickness or MinAspect are dropped
//  5. Scoring: edge density and run structure inside each blob give a
//     confidence in [0, 1]
//
// Each surviving blob becomes an axis-aligned merge.Line wound top-left,
// top-right, bottom-right, bottom-left.
//
// # Limitations
//
// Smearing runs along one axis per call, so a page mixing horizontal and
// vertical text needs two passes. Tilted lines come back as their bounding
// rectangles. Photographs and heavy halftone screens produce spurious blobs.
package detection
