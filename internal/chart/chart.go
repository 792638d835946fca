// Package chart renders the ranking as a horizontal bar chart image.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/surveyrank/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bar fill matching the original report styling (sky blue).
var barColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// Figure sizing: fixed width, height grows with the number of bars.
const (
	chartWidth     = 10 * vg.Inch
	minChartHeight = 6 * vg.Inch
	perBarHeight   = vg.Inch / 2
)

// RenderRankings writes a horizontal bar chart of the ranked entries to
// outputPath. Bars keep the ranking order top to bottom and bar length is
// proportional to the mean rating. Long names are wrapped at wrapWidth
// characters.
func RenderRankings(entries []schema.RankedEntry, respondents int, outputPath string, wrapWidth int) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to chart")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create chart directory: %w", err)
		}
	}

	// NominalY places index 0 at the bottom, so feed entries in reverse to
	// keep rank 1 at the top.
	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		j := len(entries) - 1 - i
		values[j] = e.MeanRating
		labels[j] = WrapLabel(e.Name, wrapWidth)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Course and Program Ratings (N=%d)", respondents)
	p.X.Label.Text = "Mean Rating (1-5 Scale)"
	p.Y.Label.Text = "Course / Program"
	p.X.Min = 0
	p.X.Max = schema.MaxRating

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("cannot build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)

	height := perBarHeight * vg.Length(len(entries))
	if height < minChartHeight {
		height = minChartHeight
	}

	if err := p.Save(chartWidth, height, outputPath); err != nil {
		return fmt.Errorf("cannot save chart to %s: %w", outputPath, err)
	}
	return nil
}

// WrapLabel wraps a name at word boundaries so no line exceeds width
// characters, joining lines with newlines. Words longer than width are kept
// whole on their own line.
func WrapLabel(name string, width int) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return name
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
