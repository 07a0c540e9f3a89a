// Command imghist plots the red, green and blue intensity histograms of an
// image and saves the chart as histograms/<name>_histogram.png.
//
// Usage:
//
//	imghist [options] <image_path>
//
// Input may be PNG, JPEG, GIF, BMP, TIFF, WebP or HEIC/HEIF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/setanarut/imghist"
	"github.com/setanarut/imghist/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opt := imghist.DefaultOptions()

	fs := flag.NewFlagSet("imghist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.OutputDir, "out", opt.OutputDir, "output directory")
	fs.IntVar(&opt.PaletteSize, "palette", opt.PaletteSize, "number of dominant colors drawn under the chart (0 disables)")
	method := fs.String("palette-method", opt.PaletteMethod.String(), "palette extraction method: dominantcolor or kmeans")
	fs.BoolVar(&opt.LogSummary, "stats", opt.LogSummary, "print per-channel statistics")
	fs.Usage = func() {
		fmt.Fprintln(stdout, "Usage: imghist [options] <image_path>")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fs.SetOutput(stderr)
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	m, err := utils.ParsePaletteMethod(*method)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	opt.PaletteMethod = m

	dec := utils.NewDecoder()
	dec.RegisterHEIF()

	gen := imghist.NewGenerator(dec, opt, log.New(stdout, "", 0))
	path := fs.Arg(0)
	if _, err := gen.Generate(path); err != nil {
		if errors.Is(err, imghist.ErrNotExist) {
			fmt.Fprintf(stdout, "Error: Image %s does not exist\n", path)
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
