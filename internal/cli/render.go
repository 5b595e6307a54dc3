package cli

import (
	"fmt"
	"image"
	"math"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textline-regions/internal/imaging"
	"github.com/ironsheep/textline-regions/internal/render"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output string  // PNG path
	image  string  // page to draw on; blank when empty
	scale  float64 // output scale factor
	labels bool    // draw region numbers
	order  bool    // connect lines in reading order
	refine bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{scale: 1, labels: true, order: true}

	cmd := &cobra.Command{
		Use:   "render [lines.json|-]",
		Short: "Draw regions over a page and save a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			var page image.Image
			if opts.image != "" {
				if page, err = imaging.NewImageCache().Load(opts.image); err != nil {
					return err
				}
			} else {
				if err := render.CheckSize(doc.Width, doc.Height); err != nil {
					return err
				}
				w, h := int(math.Ceil(doc.Width)), int(math.Ceil(doc.Height))
				if w <= 0 || h <= 0 {
					return fmt.Errorf("document has no page size; pass --image")
				}
				page = render.Blank(w, h)
			}

			refine := configFromContext(ctx).Refine
			if cmd.Flags().Changed("refine") {
				refine = opts.refine
			}
			regions, err := runMerge(ctx, doc, refine)
			if err != nil {
				return err
			}

			out, err := render.Overlay(page, doc.Lines, regions, render.Options{
				Scale:  opts.scale,
				Labels: opts.labels,
				Order:  opts.order,
			})
			if err != nil {
				return err
			}
			if err := render.Save(opts.output, out); err != nil {
				return err
			}
			printFile(cmd.OutOrStdout(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "regions.png", "output PNG path")
	cmd.Flags().StringVar(&opts.image, "image", "", "page image to draw on (default: blank page of the document size)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "output scale factor")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw region numbers")
	cmd.Flags().BoolVar(&opts.order, "order", opts.order, "connect lines in reading order")
	cmd.Flags().BoolVar(&opts.refine, "refine", false, "split regions at outlier gaps (default from config)")
	return cmd
}
