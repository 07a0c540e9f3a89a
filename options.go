package imghist

import "github.com/setanarut/imghist/utils"

type Options struct {
	// Chart canvas size in pixels before trimming.
	Width  int
	Height int
	// Rendering DPI. Font sizes given in points scale with it.
	DPI float64
	// Opacity of the channel lines, in [0,1].
	Alpha float64
	// Opacity of the grid lines, in [0,1].
	GridAlpha float64
	// Border kept around the chart content after trimming the background.
	// Negative disables trimming.
	TrimPadding int
	// Directory receiving <base>_histogram.png, relative to the working directory.
	OutputDir string
	// Number of dominant colors drawn under the chart. 0 disables the strip.
	PaletteSize int
	// Palette extraction method used when PaletteSize > 0.
	PaletteMethod utils.PaletteMethod
	// Height of the palette strip in pixels.
	SwatchHeight int
	// Log per-channel statistics after binning.
	LogSummary bool
}

func DefaultOptions() Options {
	return Options{
		Width:         1000,
		Height:        600,
		DPI:           150,
		Alpha:         0.7,
		GridAlpha:     0.3,
		TrimPadding:   8,
		OutputDir:     "histograms",
		PaletteSize:   0,
		PaletteMethod: utils.PaletteMethodDominantColor,
		SwatchHeight:  48,
	}
}
