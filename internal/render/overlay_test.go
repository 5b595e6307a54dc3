package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/textline-regions/internal/geometry"
	"github.com/ironsheep/textline-regions/internal/merge"
)

func testPage(t *testing.T) ([]merge.Line, []merge.Region) {
	t.Helper()
	lines := []merge.Line{
		{Quad: geometry.QuadFromRect(20, 20, 180, 40)},
		{Quad: geometry.QuadFromRect(20, 46, 180, 66)},
		{Quad: geometry.QuadFromRect(300, 20, 320, 180)},
	}
	regions, err := merge.Dispatch(lines, 400, 200)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	return lines, regions
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestOverlay(t *testing.T) {
	lines, regions := testPage(t)
	page := Blank(400, 200)

	out, err := Overlay(page, lines, regions, Options{})
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}
	if out.Bounds() != page.Bounds() {
		t.Errorf("bounds = %v, want %v", out.Bounds(), page.Bounds())
	}

	tests := []struct {
		name  string
		x, y  int
		white bool
	}{
		{"inside first line", 100, 30, false},
		{"inside vertical line", 310, 100, false},
		{"between lines inside bounds", 100, 43, true},
		{"outside everything", 250, 150, true},
		{"region outline", 20, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWhite(out.At(tt.x, tt.y)); got != tt.white {
				t.Errorf("pixel (%d,%d) white = %v, want %v", tt.x, tt.y, got, tt.white)
			}
		})
	}

	// The source page must not be modified.
	if !isWhite(page.At(100, 30)) {
		t.Error("Overlay modified its input")
	}
}

func TestOverlay_DistinctRegionColors(t *testing.T) {
	lines, regions := testPage(t)
	out, err := Overlay(Blank(400, 200), lines, regions, Options{})
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}
	if out.At(100, 30) == out.At(310, 100) {
		t.Error("regions should be tinted differently")
	}
	if out.At(100, 30) != out.At(100, 56) {
		t.Error("lines of one region should share a tint")
	}
}

func TestOverlay_Scale(t *testing.T) {
	lines, regions := testPage(t)
	out, err := Overlay(Blank(400, 200), lines, regions, Options{Scale: 2})
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}
	if out.Bounds().Dx() != 800 || out.Bounds().Dy() != 400 {
		t.Errorf("size = %v, want 800x400", out.Bounds().Size())
	}
	if isWhite(out.At(200, 60)) {
		t.Error("scaled line interior should be tinted")
	}
}

func TestOverlay_LabelsAndOrder(t *testing.T) {
	lines, regions := testPage(t)
	plain, _ := Overlay(Blank(400, 200), lines, regions, Options{})
	marked, err := Overlay(Blank(400, 200), lines, regions, Options{Labels: true, Order: true})
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}

	// Label box sits just inside the top-left corner of region 0.
	if plain.At(25, 26) == marked.At(25, 26) {
		t.Error("label should change pixels near the region corner")
	}
	// Reading-order path crosses the gap between the two member lines.
	if plain.At(100, 43) == marked.At(100, 43) {
		t.Error("order path should cross the gap between members")
	}
}

func TestOverlay_SkipsMalformed(t *testing.T) {
	lines := []merge.Line{
		{Quad: geometry.QuadFromRect(10, 10, 90, 20)},
		{Quad: geometry.Quad{{X: math.Inf(1)}}},
	}
	regions, err := merge.Dispatch(lines, 100, 100)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if _, err := Overlay(Blank(100, 100), lines, regions, Options{Labels: true}); err != nil {
		t.Errorf("Overlay() error = %v", err)
	}
}

func TestOverlay_Errors(t *testing.T) {
	lines, regions := testPage(t)
	if _, err := Overlay(Blank(400, 200), lines, regions, Options{LineColor: "#12"}); err == nil {
		t.Error("expected error for bad line color")
	}
	if _, err := Overlay(Blank(10, 10), lines, regions, Options{Scale: 0.01}); err == nil {
		t.Error("expected error for scale that empties the image")
	}
	if _, err := Overlay(Blank(100, 100), lines, regions, Options{Scale: 1000}); !errors.Is(err, ErrCanvasTooLarge) {
		t.Errorf("huge scale: got %v, want ErrCanvasTooLarge", err)
	}
}

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"page", 800, 1280, false},
		{"at limit", MaxSide, MaxSide, false},
		{"too wide", MaxSide + 1, 10, true},
		{"too tall", 10, 1e6, true},
		{"infinite", math.Inf(1), 10, true},
		{"nan", 10, math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckSize(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrCanvasTooLarge) {
				t.Errorf("error %v should wrap ErrCanvasTooLarge", err)
			}
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.png")
	if err := Save(path, Blank(30, 20)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open saved file: %v", err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if format != "png" || cfg.Width != 30 || cfg.Height != 20 {
		t.Errorf("got %s %dx%d, want png 30x20", format, cfg.Width, cfg.Height)
	}
}

func TestSave_BadPath(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "missing", "x.png"), Blank(1, 1)); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestClip(t *testing.T) {
	pt := geometry.Pt
	tests := []struct {
		name  string
		pts   []geometry.Point
		wantN int
	}{
		{"inside", []geometry.Point{pt(1, 1), pt(9, 1), pt(9, 9), pt(1, 9)}, 4},
		{"outside", []geometry.Point{pt(20, 20), pt(30, 20), pt(30, 30)}, 0},
		{"straddles right edge", []geometry.Point{pt(5, 2), pt(15, 2), pt(15, 8), pt(5, 8)}, 4},
		{"covers page", []geometry.Point{pt(-5, -5), pt(15, -5), pt(15, 15), pt(-5, 15)}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clip(tt.pts, 10, 10)
			if len(got) != tt.wantN {
				t.Fatalf("got %d points %v, want %d", len(got), got, tt.wantN)
			}
			for _, p := range got {
				if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
					t.Errorf("point %v outside the page", p)
				}
			}
		})
	}
}

func TestOverlay_LinesOffPage(t *testing.T) {
	lines := []merge.Line{{Quad: geometry.QuadFromRect(50, 50, 300, 70)}}
	regions, _ := merge.Dispatch(lines, 400, 400)
	out, err := Overlay(Blank(100, 100), lines, regions, Options{Labels: true, Order: true})
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}
	if isWhite(out.At(75, 60)) {
		t.Error("visible part of the line should be tinted")
	}
}
