package detection

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"

	"github.com/ironsheep/textline-regions/internal/geometry"
	"github.com/ironsheep/textline-regions/internal/merge"
)

// Options tunes DetectLines. Zero fields take the defaults noted below.
type Options struct {
	// MinConfidence drops lines scoring below it. Default 0.
	MinConfidence float64

	// Vertical smears along y instead of x, for top-to-bottom scripts.
	Vertical bool

	// Gap is the largest run of background, in pixels, bridged between two
	// edge pixels along the text axis. Default is 2% of the page's larger
	// side, at least 4.
	Gap int

	// EdgeThreshold is the Sobel magnitude (0-255) above which a pixel is an
	// edge. Default 128.
	EdgeThreshold uint8

	// MinThickness is the smallest accepted blob extent across the text
	// axis. Default 4.
	MinThickness int

	// MinAspect is the smallest accepted length/thickness ratio. Default 1.5.
	MinAspect float64
}

func (o Options) withDefaults(width, height int) Options {
	if o.Gap <= 0 {
		o.Gap = max(4, int(0.02*float64(max(width, height))))
	}
	if o.EdgeThreshold == 0 {
		o.EdgeThreshold = 128
	}
	if o.MinThickness <= 0 {
		o.MinThickness = 4
	}
	if o.MinAspect <= 0 {
		o.MinAspect = 1.5
	}
	return o
}

// Result holds the detected lines and the page size they were found on.
type Result struct {
	Lines  []merge.Line `json:"lines"`
	Count  int          `json:"count"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
}

// DetectLines finds text lines in img. Lines are returned top to bottom, then
// left to right, in the page coordinates of img.
func DetectLines(img image.Image, opts Options) (*Result, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("cannot detect lines in an empty image")
	}
	opts = opts.withDefaults(width, height)

	edges := edgeMask(img, opts.EdgeThreshold)
	smeared := smear(edges, width, height, opts.Gap, opts.Vertical)

	lines := make([]merge.Line, 0)
	for _, box := range components(smeared, width, height) {
		length, thickness := box.Dx(), box.Dy()
		if opts.Vertical {
			length, thickness = thickness, length
		}
		if thickness < opts.MinThickness || float64(length) < opts.MinAspect*float64(thickness) {
			continue
		}

		confidence := scoreBlob(edges, width, box, opts.Vertical)
		if confidence < opts.MinConfidence {
			continue
		}
		lines = append(lines, merge.Line{
			Quad: geometry.QuadFromRect(
				float64(box.Min.X+bounds.Min.X), float64(box.Min.Y+bounds.Min.Y),
				float64(box.Max.X+bounds.Min.X), float64(box.Max.Y+bounds.Min.Y),
			),
			Confidence: confidence,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].Quad[0], lines[j].Quad[0]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return &Result{Lines: lines, Count: len(lines), Width: width, Height: height}, nil
}

// edgeMask returns a row-major mask of Sobel edges, indexed from the image's
// top-left corner.
func edgeMask(img image.Image, level uint8) []bool {
	gray := effect.Grayscale(img)
	binary := segment.Threshold(effect.Sobel(gray), level)

	b := binary.Bounds()
	mask := make([]bool, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := binary.Pix[y*binary.Stride : y*binary.Stride+b.Dx()]
		for x, v := range row {
			mask[y*b.Dx()+x] = v != 0
		}
	}
	return mask
}

// smear fills background runs no longer than gap that lie between two set
// pixels on the same row (or column when vertical).
func smear(mask []bool, width, height, gap int, vertical bool) []bool {
	out := make([]bool, len(mask))
	copy(out, mask)

	lines, span := height, width
	at := func(line, k int) int { return line*width + k }
	if vertical {
		lines, span = width, height
		at = func(line, k int) int { return k*width + line }
	}

	for l := 0; l < lines; l++ {
		last := -1
		for k := 0; k < span; k++ {
			if !mask[at(l, k)] {
				continue
			}
			if last >= 0 && k-last-1 <= gap {
				for f := last + 1; f < k; f++ {
					out[at(l, f)] = true
				}
			}
			last = k
		}
	}
	return out
}

// components labels 4-connected set pixels and returns each component's
// bounding rectangle.
func components(mask []bool, width, height int) []image.Rectangle {
	d := merge.NewDisjointSet(len(mask))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if !mask[i] {
				continue
			}
			if x+1 < width && mask[i+1] {
				d.Union(i, i+1)
			}
			if y+1 < height && mask[i+width] {
				d.Union(i, i+width)
			}
		}
	}

	boxes := make(map[int]image.Rectangle)
	var order []int
	for i, set := range mask {
		if !set {
			continue
		}
		root := d.Find(i)
		px := image.Rect(i%width, i/width, i%width+1, i/width+1)
		if box, ok := boxes[root]; ok {
			boxes[root] = box.Union(px)
		} else {
			boxes[root] = px
			order = append(order, root)
		}
	}

	out := make([]image.Rectangle, len(order))
	for k, root := range order {
		out[k] = boxes[root]
	}
	return out
}

// scoreBlob rates how text-like the raw edges inside box are. Text has a
// moderate edge density and more runs along its axis than across it.
func scoreBlob(edges []bool, width int, box image.Rectangle, vertical bool) float64 {
	var count int
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if edges[y*width+x] {
				count++
			}
		}
	}
	density := float64(count) / float64(box.Dx()*box.Dy())

	fill := math.Max(0, 1-math.Abs(density-0.2)/0.2)
	confidence := fill * axisScore(edges, width, box, vertical)
	return math.Round(confidence*1000) / 1000
}

// axisScore is the share of edge runs that lie along the text axis.
func axisScore(edges []bool, width int, box image.Rectangle, vertical bool) float64 {
	var along, across int

	for y := box.Min.Y; y < box.Max.Y; y++ {
		inRun := false
		for x := box.Min.X; x < box.Max.X; x++ {
			if edges[y*width+x] {
				if !inRun {
					along++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}
	for x := box.Min.X; x < box.Max.X; x++ {
		inRun := false
		for y := box.Min.Y; y < box.Max.Y; y++ {
			if edges[y*width+x] {
				if !inRun {
					across++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if vertical {
		along, across = across, along
	}
	if along+across == 0 {
		return 0
	}
	return float64(along) / float64(along+across)
}
