package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776405003785

// Palette returns n distinct, stable colours. The same n always yields the
// same colours, so repeated renders of a page are comparable.
func Palette(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		h := math.Mod(float64(i)*goldenAngle, 360)
		c := colorful.Hcl(h, 0.7, 0.6).Clamped()
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// withAlpha returns c premultiplied to alpha a.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	k := uint32(a)
	return color.RGBA{
		R: uint8(uint32(c.R) * k / 255),
		G: uint8(uint32(c.G) * k / 255),
		B: uint8(uint32(c.B) * k / 255),
		A: a,
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
// The result is premultiplied.
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return withAlpha(color.RGBA{R: r, G: g, B: b, A: 255}, a), nil
}
