package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/textline-regions/internal/geometry"
	"github.com/ironsheep/textline-regions/internal/imaging"
	"github.com/ironsheep/textline-regions/internal/merge"
)

// Recognition is the text read from one line crop.
type Recognition struct {
	Text string `json:"text"`

	// Confidence is in [0, 1].
	Confidence float64 `json:"confidence"`
}

// Recognizer reads the text in a single-line crop.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, o merge.Orientation, language string) (Recognition, error)
}

// ReadOptions tunes ReadRegions.
type ReadOptions struct {
	// Language picks the language code per region orientation. Nil uses
	// "eng" for everything.
	Language func(merge.Orientation) string

	// Padding grows each line crop by this multiple of the region's font
	// size. Default 0.15.
	Padding float64

	// MinGlyph is the font size, in pixels, below which crops are upscaled
	// to reach it. Default 24.
	MinGlyph float64
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.Language == nil {
		o.Language = func(merge.Orientation) string { return "eng" }
	}
	if o.Padding <= 0 {
		o.Padding = 0.15
	}
	if o.MinGlyph <= 0 {
		o.MinGlyph = 24
	}
	return o
}

// RegionText is the recognized content of one region.
type RegionText struct {
	// Region is the index into the regions slice passed to ReadRegions.
	Region int `json:"region"`

	// Lines holds the member line indices in reading order and Texts the
	// text read from each.
	Lines []int    `json:"lines"`
	Texts []string `json:"texts"`

	// Text joins Texts with newlines.
	Text string `json:"text"`

	// Confidence is the mean line confidence.
	Confidence float64 `json:"confidence"`

	Language string        `json:"language"`
	Bounds   geometry.BBox `json:"bounds"`
}

// ReadRegions recognizes every region on page. lines must be the slice the
// regions were computed from. Malformed regions are returned with empty text.
func ReadRegions(ctx context.Context, rec Recognizer, page image.Image, lines []merge.Line, regions []merge.Region, opts ReadOptions) ([]RegionText, error) {
	opts = opts.withDefaults()

	out := make([]RegionText, 0, len(regions))
	for ri, r := range regions {
		rt := RegionText{
			Region:   ri,
			Lines:    append([]int(nil), r.Lines...),
			Texts:    make([]string, 0, len(r.Lines)),
			Language: opts.Language(r.Orientation),
			Bounds:   r.Bounds,
		}
		if r.Malformed {
			out = append(out, rt)
			continue
		}

		scale := 1.0
		if r.FontSize > 0 && r.FontSize < opts.MinGlyph {
			scale = opts.MinGlyph / r.FontSize
		}

		var confSum float64
		for _, li := range r.Lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if li < 0 || li >= len(lines) {
				return nil, fmt.Errorf("region %d refers to line %d of %d", ri, li, len(lines))
			}

			crop, err := imaging.CropBBox(page, lines[li].Quad.Bounds(), opts.Padding*r.FontSize, scale)
			if err != nil {
				// Lines partly off the page still get a slot in Texts.
				rt.Texts = append(rt.Texts, "")
				continue
			}
			got, err := rec.Recognize(ctx, crop.Image, r.Orientation, rt.Language)
			if err != nil {
				return nil, fmt.Errorf("region %d line %d: %w", ri, li, err)
			}
			rt.Texts = append(rt.Texts, strings.TrimSpace(got.Text))
			confSum += got.Confidence
		}
		if len(r.Lines) > 0 {
			rt.Confidence = confSum / float64(len(r.Lines))
		}
		rt.Text = strings.Join(rt.Texts, "\n")
		out = append(out, rt)
	}
	return out, nil
}
