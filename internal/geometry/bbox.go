package geometry

import (
	"image"
	"math"
)

// BBox represents an axis-aligned bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right corner.
// A box with X2 < X1 or Y2 < Y1 is empty; the zero BBox is a single point
// at the origin and is not empty.
type BBox struct {
	X1 float64 `json:"x1"` // Left edge
	Y1 float64 `json:"y1"` // Top edge
	X2 float64 `json:"x2"` // Right edge
	Y2 float64 `json:"y2"` // Bottom edge
}

// EmptyBBox returns a box that acts as the identity for Union.
func EmptyBBox() BBox {
	return BBox{X1: math.Inf(1), Y1: math.Inf(1), X2: math.Inf(-1), Y2: math.Inf(-1)}
}

// BBoxOf returns the smallest box containing all points.
func BBoxOf(pts ...Point) BBox {
	b := EmptyBBox()
	for _, p := range pts {
		b.X1 = math.Min(b.X1, p.X)
		b.Y1 = math.Min(b.Y1, p.Y)
		b.X2 = math.Max(b.X2, p.X)
		b.Y2 = math.Max(b.Y2, p.Y)
	}
	return b
}

// Empty reports whether the box contains no points.
func (b BBox) Empty() bool {
	return b.X2 < b.X1 || b.Y2 < b.Y1
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 {
	if b.Empty() {
		return 0
	}
	return b.X2 - b.X1
}

// Height returns the vertical extent.
func (b BBox) Height() float64 {
	if b.Empty() {
		return 0
	}
	return b.Y2 - b.Y1
}

// Center returns the center point of the box.
func (b BBox) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	if other.Empty() {
		return b
	}
	if b.Empty() {
		return other
	}
	return BBox{
		X1: math.Min(b.X1, other.X1),
		Y1: math.Min(b.Y1, other.Y1),
		X2: math.Max(b.X2, other.X2),
		Y2: math.Max(b.Y2, other.Y2),
	}
}

// Intersects reports whether b and other share at least one point.
func (b BBox) Intersects(other BBox) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	return b.X1 <= other.X2 && other.X1 <= b.X2 && b.Y1 <= other.Y2 && other.Y1 <= b.Y2
}

// Clip restricts the box to the page rectangle [0,width]x[0,height].
func (b BBox) Clip(width, height float64) BBox {
	if b.Empty() {
		return b
	}
	return BBox{
		X1: math.Min(math.Max(b.X1, 0), width),
		Y1: math.Min(math.Max(b.Y1, 0), height),
		X2: math.Min(math.Max(b.X2, 0), width),
		Y2: math.Min(math.Max(b.Y2, 0), height),
	}
}

// Scale multiplies every coordinate by k.
func (b BBox) Scale(k float64) BBox {
	return BBox{X1: b.X1 * k, Y1: b.Y1 * k, X2: b.X2 * k, Y2: b.Y2 * k}
}

// Rect converts the box to an integer image rectangle, rounding outward so
// the pixels covering the box are included.
func (b BBox) Rect() image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(b.X1)),
		int(math.Floor(b.Y1)),
		int(math.Ceil(b.X2)),
		int(math.Ceil(b.Y2)),
	)
}
