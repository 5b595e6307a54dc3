package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textline-regions/internal/merge"
)

// mergeOpts holds the flags of the merge command.
type mergeOpts struct {
	refine  bool // split regions at outlier gaps
	summary bool // print a styled summary instead of JSON
	output  string
}

func newMergeCmd() *cobra.Command {
	var opts mergeOpts

	cmd := &cobra.Command{
		Use:   "merge [lines.json|-]",
		Short: "Group the lines of a lines document into regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			refine := configFromContext(cmd.Context()).Refine
			if cmd.Flags().Changed("refine") {
				refine = opts.refine
			}
			regions, err := runMerge(cmd.Context(), doc, refine)
			if err != nil {
				return err
			}

			if opts.summary {
				printSummary(cmd.OutOrStdout(), regions, doc.Lines)
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), opts.output, mergeOutput{
				Width: doc.Width, Height: doc.Height, Regions: regions, Count: len(regions),
			})
		},
	}

	cmd.Flags().BoolVar(&opts.refine, "refine", false, "split regions at outlier gaps (default from config)")
	cmd.Flags().BoolVarP(&opts.summary, "summary", "s", false, "print a human-readable summary")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON to this file instead of stdout")
	return cmd
}

type mergeOutput struct {
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
	Regions []merge.Region `json:"regions"`
	Count   int            `json:"count"`
}

func runMerge(ctx context.Context, doc merge.Document, refine bool) ([]merge.Region, error) {
	logger := loggerFromContext(ctx)
	opts := configFromContext(ctx).MergeOptions(logger.WithPrefix("merge"))
	opts.Refine = refine

	m, err := merge.New(opts)
	if err != nil {
		return nil, err
	}
	p := newProgress(logger)
	regions, err := doc.Dispatch(m)
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Merged %d lines into %d regions", len(doc.Lines), len(regions)))
	return regions, nil
}

// readDocument reads a lines document from path, or from stdin for "-".
func readDocument(path string, stdin io.Reader) (merge.Document, error) {
	if path == "-" {
		return merge.DecodeDocument(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return merge.Document{}, err
	}
	defer f.Close()
	doc, err := merge.DecodeDocument(f)
	if err != nil {
		return merge.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// writeJSON writes v indented to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v interface{}) error {
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
