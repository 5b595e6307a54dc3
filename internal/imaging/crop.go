package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/textline-regions/internal/geometry"
)

// EncodedImage is a PNG ready to be returned to an MCP client.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &EncodedImage{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// PNGBytes encodes img as raw PNG bytes.
func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Crop is a region cut out of a page.
type Crop struct {
	// Image holds the cropped, possibly rescaled, pixels.
	Image *image.NRGBA

	// Origin is the page coordinate of the crop's top-left pixel before
	// scaling.
	Origin image.Point

	// Scale is the factor applied after cropping.
	Scale float64
}

// ToPage maps a point in crop pixels back to page coordinates.
func (c Crop) ToPage(p geometry.Point) geometry.Point {
	s := c.Scale
	if s <= 0 {
		s = 1
	}
	return geometry.Pt(p.X/s+float64(c.Origin.X), p.Y/s+float64(c.Origin.Y))
}

// CropBBox cuts box out of img, grown by padding pixels on every side and
// clipped to the image. A positive scale other than 1 resizes the crop with
// Lanczos resampling, which helps OCR on small glyphs.
func CropBBox(img image.Image, box geometry.BBox, padding, scale float64) (*Crop, error) {
	if box.Empty() {
		return nil, fmt.Errorf("cannot crop an empty box")
	}
	if math.IsNaN(padding) || padding < 0 {
		padding = 0
	}

	grown := geometry.BBox{
		X1: box.X1 - padding,
		Y1: box.Y1 - padding,
		X2: box.X2 + padding,
		Y2: box.Y2 + padding,
	}
	r := grown.Rect().Intersect(img.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("crop region %v outside image bounds %v", grown, img.Bounds())
	}

	cropped := imaging.Crop(img, r)
	if scale <= 0 {
		scale = 1
	}
	if scale != 1 {
		w := int(math.Round(float64(cropped.Bounds().Dx()) * scale))
		h := int(math.Round(float64(cropped.Bounds().Dy()) * scale))
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v leaves an empty crop", scale)
		}
		cropped = imaging.Resize(cropped, w, h, imaging.Lanczos)
	}

	return &Crop{Image: cropped, Origin: r.Min, Scale: scale}, nil
}
