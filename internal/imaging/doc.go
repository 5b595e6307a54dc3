// Package imaging loads page images and cuts region crops out of them.
//
// Pages are decoded once and held in an ImageCache keyed by absolute path,
// so the detector, the OCR collaborator and the overlay renderer can share one
// decoded copy across tool calls. PNG, JPEG, GIF, BMP, TIFF and WebP are
// recognized by content, not by file extension.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Crops take a geometry.BBox in page coordinates and round it outward to
// whole pixels, so a crop always covers the box it was asked for.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Decoded images are treated as
// read-only; crops and encodes allocate new images.
package imaging
