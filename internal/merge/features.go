package merge

import (
	"math"

	"github.com/ironsheep/textline-regions/internal/geometry"
)

// Features holds the geometry derived from a single Line. Features are
// computed without reference to any other line.
type Features struct {
	// Index is the line's position in the input slice.
	Index int

	// Quad is the line's geometry, kept for gap and projection tests.
	Quad geometry.Quad

	// Centroid is the mean of the four corners.
	Centroid geometry.Point

	// Direction is the unit vector along the text flow. Horizontal lines
	// point toward +x, vertical lines toward +y.
	Direction geometry.Point

	// Length is the extent along Direction.
	Length float64

	// Thickness is the extent across Direction and serves as the font size.
	Thickness float64

	// Orientation is Vertical when Direction is at least as steep as it is
	// wide, Horizontal otherwise.
	Orientation Orientation

	// Bounds is the axis-aligned bounding box of the quad. It is empty for
	// malformed lines.
	Bounds geometry.BBox

	// Area is the quad's unsigned area.
	Area float64

	// Confidence is copied from the line for region aggregation only.
	Confidence float64

	// Degenerate lines have zero area or zero thickness and never merge.
	Degenerate bool

	// Malformed lines have non-finite coordinates. They are also Degenerate.
	Malformed bool
}

// Aspect returns Length / Thickness, or 0 for degenerate lines.
func (f Features) Aspect() float64 {
	if f.Thickness == 0 {
		return 0
	}
	return f.Length / f.Thickness
}

// Extract derives the features of line. It is total: malformed and
// degenerate quads produce zero-sized features flagged accordingly.
func Extract(index int, line Line) Features {
	f := Features{
		Index:       index,
		Direction:   geometry.Pt(1, 0),
		Orientation: Horizontal,
		Confidence:  line.Confidence,
	}

	q := line.Quad
	if !q.Finite() {
		return f.malformed()
	}

	f.Quad = q
	f.Centroid = q.Centroid()
	f.Bounds = q.Bounds()
	f.Area = q.Area()

	along, across := q.Structure()
	if across.Norm() > along.Norm() {
		along, across = across, along
	}
	f.Length = along.Norm()
	f.Thickness = across.Norm()

	if f.Length > 0 {
		dir := along.Unit()
		if math.Abs(dir.Y) >= math.Abs(dir.X) {
			f.Orientation = Vertical
			if dir.Y < 0 {
				dir = dir.Scale(-1)
			}
		} else if dir.X < 0 {
			dir = dir.Scale(-1)
		}
		f.Direction = dir
	}

	// Coordinates near the float64 limit overflow once summed or squared.
	if !f.Centroid.Finite() || !finite(f.Length) || !finite(f.Thickness) || !finite(f.Area) {
		return f.malformed()
	}

	if f.Area == 0 || f.Thickness == 0 {
		f.Degenerate = true
		f.Length = 0
		f.Thickness = 0
	}
	return f
}

// malformed resets f to the features of a line whose geometry is unusable.
func (f Features) malformed() Features {
	return Features{
		Index:       f.Index,
		Direction:   geometry.Pt(1, 0),
		Orientation: Horizontal,
		Bounds:      geometry.EmptyBBox(),
		Confidence:  f.Confidence,
		Degenerate:  true,
		Malformed:   true,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ExtractAll extracts features for every line, indexed by position.
func ExtractAll(lines []Line) []Features {
	out := make([]Features, len(lines))
	for i, l := range lines {
		out[i] = Extract(i, l)
	}
	return out
}
