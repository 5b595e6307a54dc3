package merge

import (
	"math"
	"sort"

	"github.com/ironsheep/textline-regions/internal/geometry"
)

// angleSnapDegrees is the tilt below which a region is reported as upright.
const angleSnapDegrees = 3.0

// Region is a group of lines read as one unit. Regions refer to lines by
// index into the input slice and are read-only once assembled.
type Region struct {
	// Lines holds the member line indices in reading order.
	Lines []int `json:"lines"`

	// Bounds is the union of the members' bounding boxes.
	Bounds geometry.BBox `json:"bounds"`

	// Orientation is the majority orientation of the members.
	Orientation Orientation `json:"orientation"`

	// FontSize is the smallest member thickness.
	FontSize float64 `json:"font_size"`

	// Angle is the mean member tilt in degrees relative to the reading
	// axis, positive clockwise on screen. Tilts under three degrees are
	// reported as 0.
	Angle float64 `json:"angle"`

	// Confidence is the area-weighted geometric mean of member confidences.
	Confidence float64 `json:"confidence"`

	// Malformed marks a singleton region holding a line whose geometry
	// could not be read. Its Bounds are zero.
	Malformed bool `json:"malformed,omitempty"`
}

// Len returns the number of member lines.
func (r Region) Len() int {
	return len(r.Lines)
}

// Texts returns the members' text payloads in reading order.
func (r Region) Texts(lines []Line) []string {
	out := make([]string, 0, len(r.Lines))
	for _, i := range r.Lines {
		if i >= 0 && i < len(lines) {
			out = append(out, lines[i].Text)
		}
	}
	return out
}

// Clip returns the region bounds clamped to a width x height page.
func (r Region) Clip(width, height float64) geometry.BBox {
	return r.Bounds.Clip(width, height)
}

// minIndex returns the smallest member index.
func (r Region) minIndex() int {
	m := math.MaxInt
	for _, i := range r.Lines {
		if i < m {
			m = i
		}
	}
	return m
}

// Assemble builds the Region for one connected component. component holds
// line indices into features. The component is trusted as-is: its members
// are not re-tested for pairwise compatibility.
func Assemble(component []int, features []Features) Region {
	members := make([]int, len(component))
	copy(members, component)

	r := Region{Lines: members, Bounds: geometry.EmptyBBox()}
	if len(members) == 1 && features[members[0]].Malformed {
		r.Malformed = true
		r.Bounds = geometry.BBox{}
		return r
	}

	r.Orientation = dominantOrientation(members, features)
	sortReadingOrder(members, features, r.Orientation)

	fontSize := math.Inf(1)
	for _, i := range members {
		f := features[i]
		r.Bounds = r.Bounds.Union(f.Bounds)
		if !f.Degenerate {
			fontSize = math.Min(fontSize, f.Thickness)
		}
	}
	if r.Bounds.Empty() {
		r.Bounds = geometry.BBox{}
	}
	if !math.IsInf(fontSize, 1) {
		r.FontSize = fontSize
	}
	r.Angle = meanAngle(members, features, r.Orientation)
	r.Confidence = meanConfidence(members, features)
	return r
}

// dominantOrientation takes a majority vote of member orientations. A tie
// goes to the orientation with the larger total length, then to Horizontal.
func dominantOrientation(members []int, features []Features) Orientation {
	var votes [2]int
	var length [2]float64
	for _, i := range members {
		o := features[i].Orientation
		votes[o]++
		length[o] += features[i].Length
	}
	switch {
	case votes[Vertical] > votes[Horizontal]:
		return Vertical
	case votes[Vertical] < votes[Horizontal]:
		return Horizontal
	case length[Vertical] > length[Horizontal]:
		return Vertical
	default:
		return Horizontal
	}
}

// sortReadingOrder orders horizontal regions top to bottom and vertical
// regions right to left. Ties fall back to the cross axis, then to index.
func sortReadingOrder(members []int, features []Features, o Orientation) {
	sort.SliceStable(members, func(a, b int) bool {
		fa, fb := features[members[a]], features[members[b]]
		ca, cb := fa.Centroid, fb.Centroid
		if o == Vertical {
			if ca.X != cb.X {
				return ca.X > cb.X
			}
			if ca.Y != cb.Y {
				return ca.Y < cb.Y
			}
		} else {
			if ca.Y != cb.Y {
				return ca.Y < cb.Y
			}
			if ca.X != cb.X {
				return ca.X < cb.X
			}
		}
		return fa.Index < fb.Index
	})
}

// meanAngle averages the tilt of members whose own orientation matches the
// region's. Near-square members of the other class carry no usable tilt.
func meanAngle(members []int, features []Features, o Orientation) float64 {
	var sum float64
	var n int
	for _, i := range members {
		f := features[i]
		if f.Degenerate || f.Orientation != o {
			continue
		}
		d := f.Direction
		if o == Vertical {
			sum += math.Atan2(-d.X, d.Y)
		} else {
			sum += math.Atan2(d.Y, d.X)
		}
		n++
	}
	if n == 0 {
		return 0
	}
	deg := sum / float64(n) * 180 / math.Pi
	if math.Abs(deg) < angleSnapDegrees {
		return 0
	}
	return math.Round(deg*100) / 100
}

// meanConfidence is exp(sum(area*log p) / sum(area)) over members with a
// positive confidence. Members without area fall back to equal weights.
func meanConfidence(members []int, features []Features) float64 {
	var logSum, weight float64
	var plainSum float64
	var plainN int
	for _, i := range members {
		f := features[i]
		if !(f.Confidence > 0) {
			continue
		}
		lp := math.Log(math.Min(f.Confidence, 1))
		plainSum += lp
		plainN++
		if f.Area > 0 {
			logSum += lp * f.Area
			weight += f.Area
		}
	}
	switch {
	case weight > 0:
		return math.Exp(logSum / weight)
	case plainN > 0:
		return math.Exp(plainSum / float64(plainN))
	default:
		return 0
	}
}
