package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/wgomg/wordfreq/internal/processor"
)

const ChartTitle = "Top 20 Most Frequent Words in Tweets"

var ErrNoData = errors.New("nothing to plot")

var skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// NewChart builds a bar chart of table with the count printed above each bar.
func NewChart(table []processor.TableRow, title string) (*plot.Plot, error) {
	if len(table) == 0 {
		return nil, ErrNoData
	}

	values := make(plotter.Values, len(table))
	words := make([]string, len(table))
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(table)),
		Labels: make([]string, len(table)),
	}
	for i, row := range table {
		values[i] = float64(row.Frequency)
		words[i] = row.Word
		labels.XYs[i] = plotter.XY{X: float64(i), Y: float64(row.Frequency)}
		labels.Labels[i] = strconv.Itoa(row.Frequency)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Words"
	p.Y.Label.Text = "Frequency"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = vg.Length(0)

	counts, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("failed to build bar labels: %w", err)
	}
	for i := range counts.TextStyle {
		counts.TextStyle[i].XAlign = draw.XCenter
		counts.TextStyle[i].YAlign = draw.YBottom
	}

	p.Add(bars, counts)
	p.NominalX(words...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}

// SaveChart writes the chart of table as a PNG and returns the file name
// used; ".png" is appended when path lacks it.
func SaveChart(path string, table []processor.TableRow) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		path += ".png"
	}

	p, err := NewChart(table, ChartTitle)
	if err != nil {
		return "", err
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	return path, nil
}
