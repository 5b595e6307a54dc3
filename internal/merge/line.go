package merge

import (
	"fmt"

	"github.com/ironsheep/textline-regions/internal/geometry"
)

// Line is one detected text line: a quadrilateral plus the detector's
// payload. Text and Confidence are carried through untouched and never
// influence grouping. A Line's identity is its index in the input slice.
type Line struct {
	// Quad holds the four corners in consistent winding order.
	Quad geometry.Quad `json:"pts"`

	// Text is an opaque payload, typically empty before recognition.
	Text string `json:"text"`

	// Confidence is the detector score in [0, 1].
	Confidence float64 `json:"prob"`
}

// Orientation is the dominant text-flow axis of a line or region.
type Orientation int

const (
	// Horizontal text flows along the x axis.
	Horizontal Orientation = iota
	// Vertical text flows along the y axis.
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the long
// names as well as "h" and "v".
func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal", "h":
		*o = Horizontal
	case "vertical", "v":
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation: %q", text)
	}
	return nil
}
