package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Quad is a quadrilateral given by its four corners in consistent winding
// order. See the package documentation for the expected order.
type Quad [4]Point

// QuadFromRect returns the axis-aligned quad covering [x1,x2]x[y1,y2],
// wound top-left, top-right, bottom-right, bottom-left.
func QuadFromRect(x1, y1, x2, y2 float64) Quad {
	return Quad{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
}

// Finite reports whether every corner has finite coordinates.
func (q Quad) Finite() bool {
	for _, p := range q {
		if !p.Finite() {
			return false
		}
	}
	return true
}

// Centroid returns the arithmetic mean of the four corners.
func (q Quad) Centroid() Point {
	return Point{
		X: (q[0].X + q[1].X + q[2].X + q[3].X) / 4,
		Y: (q[0].Y + q[1].Y + q[2].Y + q[3].Y) / 4,
	}
}

// Bounds returns the axis-aligned bounding box of the corners.
func (q Quad) Bounds() BBox {
	return BBoxOf(q[0], q[1], q[2], q[3])
}

// Area returns the unsigned area using the shoelace formula.
func (q Quad) Area() float64 {
	var s float64
	for i := range q {
		s += q[i].Cross(q[(i+1)%4])
	}
	return math.Abs(s) / 2
}

// Structure returns the two mid-line vectors of the quad: the vector joining
// the midpoints of edges 0-1 and 2-3, and the vector joining the midpoints of
// edges 3-0 and 1-2. For a text line one of them runs along the text and the
// other across it.
func (q Quad) Structure() (Point, Point) {
	s1 := Midpoint(q[2], q[3]).Sub(Midpoint(q[0], q[1]))
	s2 := Midpoint(q[1], q[2]).Sub(Midpoint(q[3], q[0]))
	return s1, s2
}

// Project returns the extent of the corners projected onto axis u.
func (q Quad) Project(u Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range q {
		v := p.Dot(u)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Contains reports whether p lies inside or on the boundary of the quad.
func (q Quad) Contains(p Point) bool {
	if q.Area() == 0 {
		for i := range q {
			if segmentDistance(p, q[i], q[(i+1)%4]) == 0 {
				return true
			}
		}
		return false
	}
	var pos, neg bool
	for i := range q {
		c := q[(i+1)%4].Sub(q[i]).Cross(p.Sub(q[i]))
		if c > 0 {
			pos = true
		} else if c < 0 {
			neg = true
		}
	}
	return !(pos && neg)
}

// Distance returns the minimum distance between the two quads, or 0 when
// they overlap or touch.
func (q Quad) Distance(other Quad) float64 {
	for i := range q {
		for j := range other {
			if segmentsCross(q[i], q[(i+1)%4], other[j], other[(j+1)%4]) {
				return 0
			}
		}
	}
	for i := range q {
		if other.Contains(q[i]) || q.Contains(other[i]) {
			return 0
		}
	}
	d := math.Inf(1)
	for i := range q {
		for j := range other {
			d = math.Min(d, segmentDistance(q[i], other[j], other[(j+1)%4]))
			d = math.Min(d, segmentDistance(other[j], q[i], q[(i+1)%4]))
		}
	}
	return d
}

// Scale multiplies every corner by k.
func (q Quad) Scale(k float64) Quad {
	var out Quad
	for i, p := range q {
		out[i] = p.Scale(k)
	}
	return out
}

// MarshalJSON encodes the quad as [[x,y],[x,y],[x,y],[x,y]].
func (q Quad) MarshalJSON() ([]byte, error) {
	if !q.Finite() {
		return nil, fmt.Errorf("cannot encode quad with non-finite corners")
	}
	pts := make([][2]float64, 4)
	for i, p := range q {
		pts[i] = [2]float64{p.X, p.Y}
	}
	return json.Marshal(pts)
}

// UnmarshalJSON decodes [[x,y],...]. An array that does not hold exactly four
// two-element points decodes to a quad with NaN corners instead of failing,
// so one bad detection does not reject the whole page.
func (q *Quad) UnmarshalJSON(data []byte) error {
	var pts [][]float64
	if err := json.Unmarshal(data, &pts); err != nil {
		return fmt.Errorf("quad must be an array of [x,y] points: %w", err)
	}
	if len(pts) != 4 {
		*q = nanQuad()
		return nil
	}
	var out Quad
	for i, p := range pts {
		if len(p) != 2 {
			*q = nanQuad()
			return nil
		}
		out[i] = Point{X: p[0], Y: p[1]}
	}
	*q = out
	return nil
}

func nanQuad() Quad {
	n := math.NaN()
	return Quad{{n, n}, {n, n}, {n, n}, {n, n}}
}
