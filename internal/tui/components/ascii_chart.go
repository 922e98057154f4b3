package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F"))
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// Marker annotates a point on the X axis, e.g. a crossover year.
type Marker struct {
	X     float64 // in X-axis units
	Label string
}

// ASCIIChart displays a simple multi-series line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Markers    []Marker
	XValues    []float64 // shared X axis, same length as every series
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      72,
		Height:     16,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithXValues sets the shared X axis values
func (c *ASCIIChart) WithXValues(xs []float64) *ASCIIChart {
	c.XValues = xs
	return c
}

// WithMarker adds an X-axis annotation
func (c *ASCIIChart) WithMarker(x float64, label string) *ASCIIChart {
	c.Markers = append(c.Markers, Marker{X: x, Label: label})
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > 20 {
		c.Width = width
	}
	if height > 6 {
		c.Height = height
	}
	return c
}

// WithAxisLabel sets the X axis label
func (c *ASCIIChart) WithAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return legendStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.valueRange()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString(axisStyle.Italic(true).Render(c.XAxisLabel))
		content.WriteString("\n")
	}

	for _, m := range c.Markers {
		content.WriteString(markerStyle.Render(fmt.Sprintf("▲ %s", m.Label)))
		content.WriteString("\n")
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// valueRange finds the padded min and max values across all series
func (c *ASCIIChart) valueRange() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if math.IsInf(minVal, 1) {
		return 0, 0
	}
	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = 1
	}
	return minVal - padding, maxVal + padding
}

// renderGrid renders the chart grid with data points
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth - 3
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	xMin, xMax := c.xRange()
	toCol := func(x float64) int {
		if xMax == xMin {
			return 0
		}
		return int((x - xMin) / (xMax - xMin) * float64(chartWidth-1))
	}
	toRow := func(v float64) int {
		return c.Height - 1 - int((v-minVal)/(maxVal-minVal)*float64(c.Height-1))
	}

	// Marker columns go in first so data overdraws them.
	for _, m := range c.Markers {
		col := toCol(m.X)
		if col >= 0 && col < chartWidth {
			for row := 0; row < c.Height; row++ {
				grid[row][col] = '·'
			}
		}
	}

	for seriesIdx, series := range c.Series {
		pointChar := seriesChar(seriesIdx)
		prevCol, prevRow := -1, -1
		for i, point := range series.Points {
			x := float64(i)
			if len(c.XValues) == len(series.Points) {
				x = c.XValues[i]
			}
			col, row := toCol(x), toRow(point)
			if prevCol >= 0 {
				drawLine(grid, prevCol, prevRow, col, row, pointChar)
			} else if col >= 0 && col < chartWidth && row >= 0 && row < c.Height {
				grid[row][col] = pointChar
			}
			prevCol, prevRow = col, row
		}
	}

	var output strings.Builder
	valueSpan := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueSpan
		label := fmt.Sprintf("%*s", yAxisWidth, formatChartValue(yValue))
		output.WriteString(axisStyle.Render(label))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")
	output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth, xMin, xMax))

	return output.String()
}

// xRange returns the bounds of the shared X axis
func (c *ASCIIChart) xRange() (float64, float64) {
	if len(c.XValues) == 0 {
		longest := 0
		for _, s := range c.Series {
			if len(s.Points) > longest {
				longest = len(s.Points)
			}
		}
		if longest < 2 {
			return 0, 1
		}
		return 0, float64(longest - 1)
	}
	return c.XValues[0], c.XValues[len(c.XValues)-1]
}

// seriesChar returns the character to use for a series
func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦', '○'}
	return chars[index%len(chars)]
}

// drawLine draws a line between two points using Bresenham's algorithm
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) {
			if grid[y][x] == ' ' || grid[y][x] == '·' {
				grid[y][x] = char
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels renders evenly spaced X-axis labels
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int, xMin, xMax float64) string {
	var output strings.Builder
	output.WriteString(strings.Repeat(" ", yAxisWidth+3))

	labels := 5
	for i := 0; i <= labels; i++ {
		x := xMin + (xMax-xMin)*float64(i)/float64(labels)
		label := fmt.Sprintf("%.1f", x)
		output.WriteString(axisStyle.Render(label))
		if i < labels {
			gap := chartWidth/labels - len(label)
			if gap > 0 {
				output.WriteString(strings.Repeat(" ", gap))
			}
		}
	}
	output.WriteString("\n")
	return output.String()
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	var items []string
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}
	return legendStyle.Render("Legend: " + strings.Join(items, "  "))
}

// formatChartValue formats a value for display on the Y axis
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.2fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

// abs returns absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
