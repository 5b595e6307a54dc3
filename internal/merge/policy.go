package merge

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPolicy is returned by Policy.Validate.
var ErrInvalidPolicy = errors.New("invalid merge policy")

// Policy holds the calibrated constants of the compatibility test and the
// optional refinement pass. Every distance threshold is a multiple of line
// thickness, which keeps grouping independent of page resolution.
type Policy struct {
	// FontSizeRatio bounds max(thickness)/min(thickness) of a mergeable pair.
	FontSizeRatio float64 `toml:"font_size_ratio" json:"font_size_ratio"`

	// AspectTolerance is the aspect ratio above which a line's orientation
	// is considered unambiguous. Two unambiguous lines of different
	// orientation never merge.
	AspectTolerance float64 `toml:"aspect_tolerance" json:"aspect_tolerance"`

	// PerpendicularGap bounds the centroid offset across the shared text
	// axis, in multiples of mean thickness.
	PerpendicularGap float64 `toml:"perpendicular_gap" json:"perpendicular_gap"`

	// EdgeGap bounds the polygon-to-polygon distance, in multiples of the
	// smaller thickness.
	EdgeGap float64 `toml:"edge_gap" json:"edge_gap"`

	// AxisExtension bounds the gap between the two lines' extents along the
	// shared text axis, in multiples of mean thickness.
	AxisExtension float64 `toml:"axis_extension" json:"axis_extension"`

	// Alignment bounds the smallest of the start, end and centre offsets
	// along the shared text axis, in multiples of the smaller thickness.
	Alignment float64 `toml:"alignment" json:"alignment"`

	// SplitGamma, SplitSigma and SplitStdFactor drive the refinement pass.
	SplitGamma     float64 `toml:"split_gamma" json:"split_gamma"`
	SplitSigma     float64 `toml:"split_sigma" json:"split_sigma"`
	SplitStdFactor float64 `toml:"split_std_factor" json:"split_std_factor"`
}

// DefaultPolicy returns the constants calibrated against the reference
// manga and comic pages used in the package tests.
func DefaultPolicy() Policy {
	return Policy{
		FontSizeRatio:    2.0,
		AspectTolerance:  1.3,
		PerpendicularGap: 1.7,
		EdgeGap:          1.0,
		AxisExtension:    1.0,
		Alignment:        1.7,
		SplitGamma:       0.5,
		SplitSigma:       2.0,
		SplitStdFactor:   0.3,
	}
}

// Validate checks that every constant is a positive finite number and that
// FontSizeRatio is at least 1.
func (p Policy) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"font_size_ratio", p.FontSizeRatio},
		{"aspect_tolerance", p.AspectTolerance},
		{"perpendicular_gap", p.PerpendicularGap},
		{"edge_gap", p.EdgeGap},
		{"axis_extension", p.AxisExtension},
		{"alignment", p.Alignment},
		{"split_gamma", p.SplitGamma},
		{"split_sigma", p.SplitSigma},
		{"split_std_factor", p.SplitStdFactor},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidPolicy, f.name, f.v)
		}
	}
	if p.FontSizeRatio < 1 {
		return fmt.Errorf("%w: font_size_ratio must be at least 1, got %v", ErrInvalidPolicy, p.FontSizeRatio)
	}
	return nil
}

// Compatible reports whether lines a and b belong to the same region.
//
// The test is symmetric and pure. It rejects, in order:
//   - degenerate or malformed lines
//   - pairs whose thickness ratio exceeds FontSizeRatio
//   - pairs of unambiguous lines with different orientation
//   - pairs whose centroids are too far apart across the shared text axis
//   - pairs whose outlines are more than EdgeGap thicknesses apart
//   - pairs whose extents along the text axis neither overlap nor nearly touch
//   - pairs that share no start, end or centre alignment along the text axis
func (p Policy) Compatible(a, b Features) bool {
	if a.Degenerate || b.Degenerate {
		return false
	}

	tMin := math.Min(a.Thickness, b.Thickness)
	tMax := math.Max(a.Thickness, b.Thickness)
	tMean := (a.Thickness + b.Thickness) / 2
	if tMax/tMin > p.FontSizeRatio {
		return false
	}

	if a.Orientation != b.Orientation && math.Min(a.Aspect(), b.Aspect()) > p.AspectTolerance {
		return false
	}

	u := a.Direction.Add(b.Direction).Unit()
	if u.Norm() == 0 {
		u = a.Direction
	}

	offset := b.Centroid.Sub(a.Centroid)
	if math.Abs(offset.Dot(u.Perp())) > p.PerpendicularGap*tMean {
		return false
	}

	if a.Quad.Distance(b.Quad) > p.EdgeGap*tMin {
		return false
	}

	a0, a1 := a.Quad.Project(u)
	b0, b1 := b.Quad.Project(u)
	if math.Max(a0, b0)-math.Min(a1, b1) > p.AxisExtension*tMean {
		return false
	}

	align := math.Min(math.Abs(a0-b0), math.Abs(a1-b1))
	align = math.Min(align, math.Abs((a0+a1)-(b0+b1))/2)
	return align <= p.Alignment*tMin
}
