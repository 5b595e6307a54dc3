package ocr

import (
	"context"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/textline-regions/internal/imaging"
	"github.com/ironsheep/textline-regions/internal/merge"
)

// Tesseract recognizes line crops with the system Tesseract library. A fresh
// client is created per call, so one Tesseract value may be shared between
// goroutines.
type Tesseract struct {
	// TessdataPrefix overrides the directory holding *.traineddata files.
	TessdataPrefix string
}

// Recognize implements Recognizer.
//
// Horizontal crops run in single-line mode. Vertical crops run in vertical
// block mode, which is the only vertical layout Tesseract offers.
func (t Tesseract) Recognize(ctx context.Context, img image.Image, o merge.Orientation, language string) (Recognition, error) {
	if err := ctx.Err(); err != nil {
		return Recognition{}, err
	}

	data, err := imaging.PNGBytes(img)
	if err != nil {
		return Recognition{}, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return Recognition{}, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(language); err != nil {
		return Recognition{}, fmt.Errorf("failed to set language: %w", err)
	}

	mode := gosseract.PSM_SINGLE_LINE
	if o == merge.Vertical {
		mode = gosseract.PSM_SINGLE_BLOCK_VERT_TEXT
	}
	if err := client.SetPageSegMode(mode); err != nil {
		return Recognition{}, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return Recognition{}, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return Recognition{}, fmt.Errorf("OCR failed: %w", err)
	}

	// Word boxes only feed the confidence; a failure here keeps the text.
	var confidence float64
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil {
		var sum float64
		var n int
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			sum += box.Confidence
			n++
		}
		if n > 0 {
			confidence = sum / float64(n) / 100
		}
	}

	return Recognition{Text: text, Confidence: confidence}, nil
}

// Info describes the OCR backend.
type Info struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Backend   string `json:"backend"`
}

// Version reports the linked Tesseract version.
func (t Tesseract) Version() Info {
	client := gosseract.NewClient()
	defer client.Close()

	v := client.Version()
	return Info{Available: v != "", Version: v, Backend: "gosseract"}
}
