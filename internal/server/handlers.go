package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ironsheep/textline-regions/internal/detection"
	"github.com/ironsheep/textline-regions/internal/imaging"
	"github.com/ironsheep/textline-regions/internal/merge"
	"github.com/ironsheep/textline-regions/internal/ocr"
	"github.com/ironsheep/textline-regions/internal/render"
)

var (
	// errInvalidArgs marks argument errors, reported as -32602.
	errInvalidArgs = errors.New("invalid arguments")

	// errUnknownTool is returned for tool names not in GetToolDefinitions.
	errUnknownTool = errors.New("unknown tool")
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "textline_merge").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.callTool(ctx, uuid.New().String(), params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, errInvalidArgs) || errors.Is(err, errUnknownTool) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	text, err := marshalResult(result)
	if err != nil {
		return s.errorResponse(req.ID, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// callTool runs one tool with a request-scoped logger and logs the outcome.
func (s *Server) callTool(ctx context.Context, requestID, name string, args json.RawMessage) (interface{}, error) {
	logger := s.logger.With("req", requestID, "tool", name)
	ctx = withLogger(ctx, logger)

	start := time.Now()
	result, err := s.executeTool(ctx, name, args)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		logger.Warn("tool failed", "err", err, "elapsed", elapsed)
		return nil, err
	}
	logger.Info("tool done", "elapsed", elapsed)
	return result, nil
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "textline_merge":
		return s.handleMerge(ctx, args)
	case "textline_detect":
		return s.handleDetect(ctx, args)
	case "textline_regions":
		return s.handleRegions(ctx, args)
	case "textline_ocr":
		return s.handleOCR(ctx, args)
	case "textline_render":
		return s.handleRender(ctx, args)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidArgs, err)
	}
	return nil
}

// marshalResult converts a tool result to a pretty-printed JSON string.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}

// mergerFor returns the configured merger, or a copy with refinement
// overridden when the call asks for it.
func (s *Server) mergerFor(ctx context.Context, refine *bool) (*merge.Merger, error) {
	if refine == nil || *refine == s.cfg.Refine {
		return s.merger, nil
	}
	opts := s.cfg.MergeOptions(loggerFromContext(ctx))
	opts.Refine = *refine
	return merge.New(opts)
}

// RegionResult is a region plus the text payloads of its members.
type RegionResult struct {
	merge.Region
	Texts []string `json:"texts,omitempty"`
}

func regionResults(regions []merge.Region, lines []merge.Line) []RegionResult {
	out := make([]RegionResult, len(regions))
	for i, r := range regions {
		out[i] = RegionResult{Region: r}
		texts := r.Texts(lines)
		for _, t := range texts {
			if t != "" {
				out[i].Texts = texts
				break
			}
		}
	}
	return out
}

// === Page handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	return imaging.LoadPageInfo(s.cache, a.Path)
}

// === Merge handlers ===

type mergeArgs struct {
	Lines  []merge.Line `json:"lines"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Refine *bool        `json:"refine"`
}

// MergeResult is returned by textline_merge.
type MergeResult struct {
	Regions []RegionResult `json:"regions"`
	Count   int            `json:"count"`
}

func (s *Server) handleMerge(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a mergeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	m, err := s.mergerFor(ctx, a.Refine)
	if err != nil {
		return nil, err
	}

	regions, err := m.Dispatch(a.Lines, a.Width, a.Height)
	if err != nil {
		if errors.Is(err, merge.ErrInvalidPageSize) {
			return nil, fmt.Errorf("%w: %w", errInvalidArgs, err)
		}
		return nil, err
	}
	loggerFromContext(ctx).Debug("merged lines", "lines", len(a.Lines), "regions", len(regions))
	return &MergeResult{Regions: regionResults(regions, a.Lines), Count: len(regions)}, nil
}

// === Detection handlers ===

type detectArgs struct {
	Path          string   `json:"path"`
	MinConfidence *float64 `json:"min_confidence"`
	Vertical      bool     `json:"vertical"`
	Refine        *bool    `json:"refine"`
}

func (s *Server) detect(ctx context.Context, a detectArgs) (image.Image, *detection.Result, error) {
	if a.Path == "" {
		return nil, nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, err
	}

	opts := detection.Options{MinConfidence: s.cfg.Detect.MinConfidence, Vertical: a.Vertical}
	if a.MinConfidence != nil {
		opts.MinConfidence = *a.MinConfidence
	}
	res, err := detection.DetectLines(img, opts)
	if err != nil {
		return nil, nil, err
	}
	loggerFromContext(ctx).Debug("detected lines", "path", a.Path, "lines", res.Count)
	return img, res, nil
}

func (s *Server) handleDetect(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a detectArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	_, res, err := s.detect(ctx, a)
	return res, err
}

// RegionsResult is returned by textline_regions.
type RegionsResult struct {
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Lines   []merge.Line   `json:"lines"`
	Regions []RegionResult `json:"regions"`
	Count   int            `json:"count"`
}

func (s *Server) handleRegions(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a detectArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	_, res, err := s.detect(ctx, a)
	if err != nil {
		return nil, err
	}
	m, err := s.mergerFor(ctx, a.Refine)
	if err != nil {
		return nil, err
	}
	regions, err := m.Dispatch(res.Lines, float64(res.Width), float64(res.Height))
	if err != nil {
		return nil, err
	}
	return &RegionsResult{
		Width:   res.Width,
		Height:  res.Height,
		Lines:   res.Lines,
		Regions: regionResults(regions, res.Lines),
		Count:   len(regions),
	}, nil
}

// === OCR handlers ===

type ocrArgs struct {
	Path             string       `json:"path"`
	Lines            []merge.Line `json:"lines"`
	Language         string       `json:"language"`
	VerticalLanguage string       `json:"vertical_language"`
	Refine           *bool        `json:"refine"`
}

// OCRResult is returned by textline_ocr.
type OCRResult struct {
	Regions []ocr.RegionText `json:"regions"`
	Count   int              `json:"count"`

	// Text joins every region's text with blank lines, in page order.
	Text string `json:"text"`
}

func (s *Server) handleOCR(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a ocrArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	lines := a.Lines
	var img image.Image
	if lines == nil {
		var res *detection.Result
		var err error
		img, res, err = s.detect(ctx, detectArgs{Path: a.Path})
		if err != nil {
			return nil, err
		}
		lines = res.Lines
	} else {
		if a.Path == "" {
			return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
		}
		var err error
		if img, err = s.cache.Load(a.Path); err != nil {
			return nil, err
		}
	}

	m, err := s.mergerFor(ctx, a.Refine)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	regions, err := m.Dispatch(lines, float64(b.Dx()), float64(b.Dy()))
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if a.Language != "" {
		cfg.OCR.Language = a.Language
	}
	if a.VerticalLanguage != "" {
		cfg.OCR.VerticalLanguage = a.VerticalLanguage
	}

	texts, err := ocr.ReadRegions(ctx, s.recognizer, img, lines, regions, ocr.ReadOptions{Language: cfg.LanguageFor})
	if err != nil {
		return nil, err
	}

	result := &OCRResult{Regions: texts, Count: len(texts)}
	for i, t := range texts {
		if i > 0 {
			result.Text += "\n\n"
		}
		result.Text += t.Text
	}
	return result, nil
}

// === Render handlers ===

type renderArgs struct {
	Path   string       `json:"path"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Lines  []merge.Line `json:"lines"`
	Refine *bool        `json:"refine"`
	Scale  float64      `json:"scale"`
	Labels *bool        `json:"labels"`
	Order  *bool        `json:"order"`
}

// RenderResult is returned by textline_render.
type RenderResult struct {
	*imaging.EncodedImage
	Regions int `json:"regions"`
}

func (s *Server) handleRender(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var page image.Image
	if a.Path != "" {
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		page = img
	} else {
		if err := render.CheckSize(a.Width, a.Height); err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidArgs, err)
		}
		w, h := int(math.Ceil(a.Width)), int(math.Ceil(a.Height))
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("%w: path or positive width and height are required", errInvalidArgs)
		}
		page = render.Blank(w, h)
	}

	m, err := s.mergerFor(ctx, a.Refine)
	if err != nil {
		return nil, err
	}
	b := page.Bounds()
	regions, err := m.Dispatch(a.Lines, float64(b.Dx()), float64(b.Dy()))
	if err != nil {
		return nil, err
	}

	opts := render.Options{Scale: a.Scale, Labels: true, Order: true}
	if a.Labels != nil {
		opts.Labels = *a.Labels
	}
	if a.Order != nil {
		opts.Order = *a.Order
	}
	out, err := render.Overlay(page, a.Lines, regions, opts)
	if err != nil {
		if errors.Is(err, render.ErrCanvasTooLarge) {
			return nil, fmt.Errorf("%w: %w", errInvalidArgs, err)
		}
		return nil, err
	}
	encoded, err := imaging.EncodePNG(out)
	if err != nil {
		return nil, err
	}
	return &RenderResult{EncodedImage: encoded, Regions: len(regions)}, nil
}

// === Context helpers ===

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
