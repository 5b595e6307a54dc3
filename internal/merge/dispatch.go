package merge

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"
)

// ErrInvalidPageSize is returned when the page width or height is not a
// positive finite number.
var ErrInvalidPageSize = errors.New("invalid page size")

// Options configures a Merger.
type Options struct {
	// Policy holds the compatibility constants. The zero Policy selects
	// DefaultPolicy.
	Policy Policy

	// Refine enables the region-level outlier split after partitioning.
	Refine bool

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Merger runs the line-to-region pipeline with a fixed configuration. It
// holds no per-page state and is safe for concurrent use.
type Merger struct {
	policy Policy
	refine bool
	logger *log.Logger
}

// New validates opts and returns a Merger.
func New(opts Options) (*Merger, error) {
	policy := opts.Policy
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Merger{policy: policy, refine: opts.Refine, logger: logger}, nil
}

// Policy returns the constants in use.
func (m *Merger) Policy() Policy {
	return m.policy
}

var defaultMerger = &Merger{
	policy: DefaultPolicy(),
	logger: log.NewWithOptions(io.Discard, log.Options{}),
}

// Dispatch groups the lines of one page using DefaultPolicy without
// refinement. See Merger.Dispatch.
func Dispatch(lines []Line, pageWidth, pageHeight float64) ([]Region, error) {
	return defaultMerger.Dispatch(lines, pageWidth, pageHeight)
}

// Dispatch groups the lines of one page into regions.
//
// Parameters:
//   - lines: the page's detected lines. Identity is the slice index.
//   - pageWidth, pageHeight: page size in the lines' coordinate space.
//     Both must be positive.
//
// Returns:
//   - []Region: every input index appears in exactly one region. Regions are
//     ordered by the top edge of their bounds, then the left edge, then their
//     smallest member index. When vertical regions are the majority the page
//     reads right to left instead: right edge descending, then top edge.
//     Malformed lines come last as singletons.
//   - error: ErrInvalidPageSize for a non-positive or non-finite page size.
//     No other input causes an error.
//
// An empty line slice yields an empty, non-nil result.
func (m *Merger) Dispatch(lines []Line, pageWidth, pageHeight float64) ([]Region, error) {
	if !validDimension(pageWidth) || !validDimension(pageHeight) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidPageSize, pageWidth, pageHeight)
	}
	if len(lines) == 0 {
		return []Region{}, nil
	}

	features := ExtractAll(lines)
	graph := BuildGraph(features, m.policy)
	components := graph.Components()
	m.logger.Debug("built compatibility graph", "lines", len(lines), "edges", len(graph.Edges), "components", len(components))

	if m.refine {
		before := len(components)
		components = m.policy.refine(components, features)
		m.logger.Debug("refined components", "before", before, "after", len(components))
	}

	regions := make([]Region, 0, len(components))
	for _, c := range components {
		regions = append(regions, Assemble(c, features))
	}
	sortRegions(regions)
	return regions, nil
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// sortRegions puts regions in page reading order. Pages where vertical
// regions outnumber horizontal ones read in columns from the right edge,
// as vertical lines do within a region.
func sortRegions(regions []Region) {
	rightToLeft := verticalPage(regions)
	sort.SliceStable(regions, func(i, j int) bool {
		a, b := regions[i], regions[j]
		if a.Malformed != b.Malformed {
			return !a.Malformed
		}
		if !a.Malformed {
			if rightToLeft {
				if a.Bounds.X2 != b.Bounds.X2 {
					return a.Bounds.X2 > b.Bounds.X2
				}
				if a.Bounds.Y1 != b.Bounds.Y1 {
					return a.Bounds.Y1 < b.Bounds.Y1
				}
			} else {
				if a.Bounds.Y1 != b.Bounds.Y1 {
					return a.Bounds.Y1 < b.Bounds.Y1
				}
				if a.Bounds.X1 != b.Bounds.X1 {
					return a.Bounds.X1 < b.Bounds.X1
				}
			}
		}
		return a.minIndex() < b.minIndex()
	})
}

// verticalPage reports whether vertical regions strictly outnumber
// horizontal ones. Malformed regions do not vote.
func verticalPage(regions []Region) bool {
	var votes [2]int
	for _, r := range regions {
		if !r.Malformed {
			votes[r.Orientation]++
		}
	}
	return votes[Vertical] > votes[Horizontal]
}
