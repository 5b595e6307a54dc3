package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textline-regions/internal/detection"
	"github.com/ironsheep/textline-regions/internal/imaging"
	"github.com/ironsheep/textline-regions/internal/merge"
)

func newDetectCmd() *cobra.Command {
	var (
		minConfidence float64
		vertical      bool
		output        string
	)

	cmd := &cobra.Command{
		Use:   "detect [image]",
		Short: "Find text lines in a page image and print a lines document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := detection.Options{MinConfidence: configFromContext(ctx).Detect.MinConfidence, Vertical: vertical}
			if cmd.Flags().Changed("min-confidence") {
				opts.MinConfidence = minConfidence
			}

			img, err := imaging.NewImageCache().Load(args[0])
			if err != nil {
				return err
			}
			p := newProgress(loggerFromContext(ctx))
			res, err := detection.DetectLines(img, opts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Detected %d lines", res.Count))

			return writeJSON(cmd.OutOrStdout(), output, merge.Document{
				Width:  float64(res.Width),
				Height: float64(res.Height),
				Lines:  res.Lines,
			})
		},
	}

	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "drop lines scoring below this (default from config)")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "look for top-to-bottom text columns")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to this file instead of stdout")
	return cmd
}
