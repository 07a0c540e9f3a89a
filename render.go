package imghist

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Series colors, matching the named colors red, green and blue.
var channelColors = [3]colorful.Color{
	Red:   {R: 1},
	Green: {G: 128.0 / 255},
	Blue:  {B: 1},
}

func withAlpha(c colorful.Color, alpha float64) drawing.Color {
	r, g, b := c.Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: uint8(max(0, min(255, alpha*255+0.5)))}
}

// legendWidth is the left padding reserved for the legend.
const legendWidth = 110

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

// Title is the chart heading for an input with the given base name.
func Title(baseName string) string {
	return "Color Histogram - " + baseName
}

// NewChart lays out the three channel series as overlaid lines.
func NewChart(h *Histogram, title string, opt Options) chart.Chart {
	xs := BinEdges()
	peak := 0
	series := make([]chart.Series, 0, len(Channels))
	for _, c := range Channels {
		ys := make([]float64, NumBins)
		for i, v := range h[c] {
			ys[i] = float64(v)
			peak = max(peak, v)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    strings.ToUpper(c.String()),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: withAlpha(channelColors[c], opt.Alpha),
				StrokeWidth: 1.5,
			},
		})
	}
	// go-chart refuses a zero-height range.
	yMax := float64(max(peak, 1)) * 1.05

	grid := chart.Style{
		StrokeColor: drawing.ColorBlack.WithAlpha(uint8(opt.GridAlpha*255 + 0.5)),
		StrokeWidth: 1,
	}
	ticks := make([]chart.Tick, 0, 6)
	for v := 0; v < NumBins; v += 50 {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprint(v)})
	}

	ch := chart.Chart{
		Title:      title,
		Width:      opt.Width,
		Height:     opt.Height,
		DPI:        opt.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: legendWidth, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Pixel Value",
			Range:          &chart.ContinuousRange{Min: 0, Max: NumBins - 1},
			Ticks:          ticks,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           "Frequency",
			Range:          &chart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: countFormatter,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: series,
	}
	// Drawn in the left padding, clear of the title and the plot area.
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}
	return ch
}

// Render draws the histogram chart and trims its background margins.
func Render(h *Histogram, title string, opt Options) (image.Image, error) {
	ch := NewChart(h, title, opt)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	if opt.TrimPadding < 0 {
		return img, nil
	}
	return Trim(img, opt.TrimPadding), nil
}
