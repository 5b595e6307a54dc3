package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textline-regions/internal/detection"
	"github.com/ironsheep/textline-regions/internal/imaging"
	"github.com/ironsheep/textline-regions/internal/merge"
	"github.com/ironsheep/textline-regions/internal/ocr"
)

func newOCRCmd() *cobra.Command {
	var (
		linesPath string
		language  string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "ocr [image]",
		Short: "Recognize the text of each region with Tesseract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if language != "" {
				cfg.OCR.Language = language
			}
			logger := loggerFromContext(ctx)

			img, err := imaging.NewImageCache().Load(args[0])
			if err != nil {
				return err
			}
			b := img.Bounds()

			var lines []merge.Line
			if linesPath != "" {
				doc, err := readDocument(linesPath, cmd.InOrStdin())
				if err != nil {
					return err
				}
				lines = doc.Lines
			} else {
				res, err := detection.DetectLines(img, detection.Options{MinConfidence: cfg.Detect.MinConfidence})
				if err != nil {
					return err
				}
				lines = res.Lines
			}

			regions, err := runMerge(ctx, merge.Document{Width: float64(b.Dx()), Height: float64(b.Dy()), Lines: lines}, cfg.Refine)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			texts, err := ocr.ReadRegions(ctx, ocr.Tesseract{}, img, lines, regions, ocr.ReadOptions{Language: cfg.LanguageFor})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Recognized %d regions", len(texts)))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), "", texts)
			}
			for i, t := range texts {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&linesPath, "lines", "", "lines document to use instead of detecting lines")
	cmd.Flags().StringVar(&language, "lang", "", "Tesseract language (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print regions with their text as JSON")
	return cmd
}
