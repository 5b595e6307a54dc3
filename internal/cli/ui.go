package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/textline-regions/internal/merge"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorAmber = lipgloss.Color("220") // Amber - warnings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// printSummary writes a short human-readable account of regions to w.
func printSummary(w io.Writer, regions []merge.Region, lines []merge.Line) {
	var malformed int
	for _, r := range regions {
		if r.Malformed {
			malformed++
		}
	}

	fmt.Fprintln(w, styleTitle.Render("Regions"))
	fmt.Fprintln(w, styleKey.Render("lines")+" "+styleNumber.Render(fmt.Sprint(len(lines))))
	fmt.Fprintln(w, styleKey.Render("regions")+" "+styleNumber.Render(fmt.Sprint(len(regions))))
	if malformed > 0 {
		fmt.Fprintln(w, styleWarning.Render(fmt.Sprintf("%s %d malformed line(s)", iconWarning, malformed)))
	}

	for i, r := range regions {
		if r.Malformed {
			fmt.Fprintf(w, "  %s %s\n", styleDim.Render(fmt.Sprintf("#%d", i)), styleWarning.Render(fmt.Sprintf("malformed line %d", r.Lines[0])))
			continue
		}
		parts := []string{
			fmt.Sprintf("%d line(s)", len(r.Lines)),
			r.Orientation.String(),
			fmt.Sprintf("font %.1f", r.FontSize),
			fmt.Sprintf("(%.0f,%.0f)-(%.0f,%.0f)", r.Bounds.X1, r.Bounds.Y1, r.Bounds.X2, r.Bounds.Y2),
		}
		if r.Angle != 0 {
			parts = append(parts, fmt.Sprintf("%.1f°", r.Angle))
		}
		fmt.Fprintf(w, "  %s %s\n", styleDim.Render(fmt.Sprintf("#%d", i)), styleValue.Render(strings.Join(parts, styleDim.Render(" · "))))

		if texts := nonEmpty(r.Texts(lines)); len(texts) > 0 {
			fmt.Fprintf(w, "     %s\n", styleDim.Render(strings.Join(texts, " / ")))
		}
	}
}

// printFile reports a written file.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
