package imghist

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/setanarut/imghist/utils"
)

// ErrNotExist reports that the input path does not resolve to a filesystem entry.
var ErrNotExist = errors.New("image does not exist")

// Generator turns one image file into a saved histogram chart.
type Generator struct {
	Options Options
	Decoder *utils.Decoder
	// Logger receives progress lines. Nil discards them.
	Logger *log.Logger
}

// NewGenerator returns a Generator using dec for input. dec must already
// have every extra format (such as HEIF) registered.
func NewGenerator(dec *utils.Decoder, opt Options, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{Options: opt, Decoder: dec, Logger: logger}
}

// Result describes a finished run.
type Result struct {
	OutputPath string
	Format     string
	Histogram  *Histogram
	Summary    [3]Summary
}

// Generate reads the image at path, bins its channels, renders the chart and
// writes it to <OutputDir>/<base>_histogram.png. Nothing is created on disk
// when path does not exist.
func (g *Generator) Generate(path string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, err
	}

	base := BaseName(path)
	out := OutputPath(g.Options.OutputDir, path)

	g.Logger.Printf("Loading image: %s", path)
	src, format, err := g.Decoder.ReadImage(path)
	if err != nil {
		return nil, err
	}
	img, err := Normalize(src)
	if err != nil {
		return nil, err
	}

	h := Compute(img)
	res := &Result{OutputPath: out, Format: format, Histogram: h, Summary: h.Summarize()}
	if g.Options.LogSummary {
		for _, s := range res.Summary {
			g.Logger.Print(s)
		}
	}

	chartImg, err := Render(h, Title(base), g.Options)
	if err != nil {
		return nil, err
	}
	if chartImg, err = g.withPalette(chartImg, img); err != nil {
		return nil, err
	}

	if err := EnsureOutputDir(g.Options.OutputDir); err != nil {
		return nil, err
	}
	if err := utils.SaveImage(chartImg, out); err != nil {
		return nil, fmt.Errorf("save histogram: %w", err)
	}
	g.Logger.Printf("Histogram saved to: %s", out)
	return res, nil
}

func (g *Generator) withPalette(chartImg image.Image, img *RGB) (image.Image, error) {
	if g.Options.PaletteSize <= 0 {
		return chartImg, nil
	}
	palette := utils.ExtractPalette(img, g.Options.PaletteSize, g.Options.PaletteMethod, g.Logger)
	if len(palette) == 0 {
		g.Logger.Println("palette warning: no colors extracted, skipping swatches")
		return chartImg, nil
	}
	strip, err := utils.AppendSwatches(chartImg, palette, g.Options.SwatchHeight)
	if err != nil {
		return nil, err
	}
	return strip, nil
}
