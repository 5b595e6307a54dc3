package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ironsheep/textline-regions/internal/geometry"
	"github.com/ironsheep/textline-regions/internal/merge"
)

// MaxSide is the largest canvas edge, in pixels, that Blank and Overlay
// will allocate.
const MaxSide = 16384

// ErrCanvasTooLarge is returned when a requested canvas exceeds MaxSide.
var ErrCanvasTooLarge = errors.New("canvas too large")

// CheckSize reports whether a width x height canvas can be allocated.
func CheckSize(width, height float64) error {
	if !(width <= MaxSide) || !(height <= MaxSide) {
		return fmt.Errorf("%w: %vx%v exceeds %d pixels per side", ErrCanvasTooLarge, width, height, MaxSide)
	}
	return nil
}

// Options controls Overlay.
type Options struct {
	// Scale resizes the output. Geometry is scaled with it so outlines
	// stay sharp. Zero means 1.
	Scale float64

	// Stroke is the outline width in output pixels. Default 2.
	Stroke float64

	// FillAlpha is the tint opacity of member quads. Default 72.
	FillAlpha uint8

	// LineColor outlines every input line, as "#RRGGBB" or "#RRGGBBAA".
	// Empty selects a translucent grey.
	LineColor string

	// Labels draws the region index at each region's top-left corner.
	Labels bool

	// Order connects member centroids in reading order.
	Order bool
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Stroke <= 0 {
		o.Stroke = 2
	}
	if o.FillAlpha == 0 {
		o.FillAlpha = 72
	}
	if o.LineColor == "" {
		o.LineColor = "#40404080"
	}
	return o
}

// Blank returns a white page to draw on when no source image is at hand.
func Blank(width, height int) *image.NRGBA {
	return imaging.New(width, height, color.White)
}

// Overlay draws lines and regions over a copy of page. Lines and regions are
// in page pixel coordinates; malformed regions are skipped.
func Overlay(page image.Image, lines []merge.Line, regions []merge.Region, opts Options) (*image.NRGBA, error) {
	opts = opts.withDefaults()
	lineColor, err := parseHexColor(opts.LineColor)
	if err != nil {
		return nil, fmt.Errorf("invalid line color %q: %w", opts.LineColor, err)
	}

	b := page.Bounds()
	var canvas *image.NRGBA
	if opts.Scale == 1 {
		canvas = imaging.Clone(page)
	} else {
		fw, fh := float64(b.Dx())*opts.Scale, float64(b.Dy())*opts.Scale
		if err := CheckSize(fw, fh); err != nil {
			return nil, err
		}
		w, h := int(fw+0.5), int(fh+0.5)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v leaves an empty image", opts.Scale)
		}
		canvas = imaging.Resize(page, w, h, imaging.Lanczos)
	}

	p := &painter{dst: canvas, stroke: opts.Stroke}
	scaled := func(q geometry.Quad) geometry.Quad { return q.Scale(opts.Scale) }

	colors := Palette(len(regions))
	for ri, r := range regions {
		if r.Malformed {
			continue
		}
		c := colors[ri]
		fill := withAlpha(c, opts.FillAlpha)
		for _, li := range r.Lines {
			if li < 0 || li >= len(lines) || !lines[li].Quad.Finite() {
				continue
			}
			p.fill(scaled(lines[li].Quad), fill)
		}
		box := r.Bounds.Scale(opts.Scale)
		p.outline(geometry.QuadFromRect(box.X1, box.Y1, box.X2, box.Y2), c)

		if opts.Order && len(r.Lines) > 1 {
			p.path(r.Lines, lines, opts.Scale, withAlpha(c, 200))
		}
		if opts.Labels {
			drawLabel(canvas, int(box.X1)+2, int(box.Y1)+2, fmt.Sprintf("%d", ri), color.RGBA{255, 255, 255, 255}, withAlpha(c, 220))
		}
	}

	thin := &painter{dst: canvas, stroke: 1}
	for _, l := range lines {
		if l.Quad.Finite() {
			thin.outline(scaled(l.Quad), lineColor)
		}
	}
	return canvas, nil
}

// Save writes img as PNG.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// painter rasterizes polygons onto dst.
type painter struct {
	dst    draw.Image
	stroke float64
}

func (p *painter) rasterizer() *vector.Rasterizer {
	size := p.dst.Bounds().Size()
	return vector.NewRasterizer(size.X, size.Y)
}

func (p *painter) draw(z *vector.Rasterizer, c color.RGBA) {
	z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *painter) fill(q geometry.Quad, c color.RGBA) {
	z := p.rasterizer()
	polygon(z, q[:])
	p.draw(z, c)
}

// outline strokes the four edges of q. All edges go into one rasterizer so
// the corners are not painted twice.
func (p *painter) outline(q geometry.Quad, c color.RGBA) {
	z := p.rasterizer()
	for i := range q {
		segment(z, q[i], q[(i+1)%len(q)], p.stroke)
	}
	p.draw(z, c)
}

// path joins the centroids of members in reading order.
func (p *painter) path(members []int, lines []merge.Line, scale float64, c color.RGBA) {
	z := p.rasterizer()
	var prev geometry.Point
	started := false
	for _, li := range members {
		if li < 0 || li >= len(lines) || !lines[li].Quad.Finite() {
			continue
		}
		pt := lines[li].Quad.Centroid().Scale(scale)
		if started {
			segment(z, prev, pt, p.stroke)
		}
		prev, started = pt, true
	}
	p.draw(z, c)
}

// segment adds a stroke of width w from a to b as a closed rectangle.
func segment(z *vector.Rasterizer, a, b geometry.Point, w float64) {
	d := b.Sub(a)
	if d.Norm() == 0 {
		return
	}
	n := d.Unit().Perp().Scale(w / 2)
	polygon(z, []geometry.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// polygon adds pts as a closed path, clipped to the rasterizer's bounds.
func polygon(z *vector.Rasterizer, pts []geometry.Point) {
	size := z.Size()
	pts = clip(pts, float64(size.X), float64(size.Y))
	if len(pts) < 3 {
		return
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
}

// clip cuts a polygon to the rectangle [0,w]x[0,h], one edge at a time
// (Sutherland-Hodgman).
func clip(pts []geometry.Point, w, h float64) []geometry.Point {
	edges := []struct {
		inside func(geometry.Point) bool
		cross  func(a, b geometry.Point) geometry.Point
	}{
		{func(p geometry.Point) bool { return p.X >= 0 }, func(a, b geometry.Point) geometry.Point { return atX(a, b, 0) }},
		{func(p geometry.Point) bool { return p.X <= w }, func(a, b geometry.Point) geometry.Point { return atX(a, b, w) }},
		{func(p geometry.Point) bool { return p.Y >= 0 }, func(a, b geometry.Point) geometry.Point { return atY(a, b, 0) }},
		{func(p geometry.Point) bool { return p.Y <= h }, func(a, b geometry.Point) geometry.Point { return atY(a, b, h) }},
	}
	for _, e := range edges {
		if len(pts) == 0 {
			return nil
		}
		out := make([]geometry.Point, 0, len(pts)+2)
		prev := pts[len(pts)-1]
		for _, cur := range pts {
			switch in, prevIn := e.inside(cur), e.inside(prev); {
			case in && prevIn:
				out = append(out, cur)
			case in:
				out = append(out, e.cross(prev, cur), cur)
			case prevIn:
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
		pts = out
	}
	return pts
}

func atX(a, b geometry.Point, x float64) geometry.Point {
	t := (x - a.X) / (b.X - a.X)
	return geometry.Pt(x, a.Y+t*(b.Y-a.Y))
}

func atY(a, b geometry.Point, y float64) geometry.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return geometry.Pt(a.X+t*(b.X-a.X), y)
}

// drawLabel draws text on a filled background box with its top-left corner
// at (x, y).
func drawLabel(img draw.Image, x, y int, text string, fg, bg color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}

	width := d.MeasureString(text).Ceil()
	height := face.Metrics().Height.Ceil()
	box := image.Rect(x-1, y-1, x+width+1, y+height+1).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Over)

	d.Dot = fixed.P(x, y+face.Metrics().Ascent.Ceil())
	d.DrawString(text)
}
