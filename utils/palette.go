package utils

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod accepts the names produced by PaletteMethod.String.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "dominantcolor", "dominant":
		return PaletteMethodDominantColor, nil
	case "kmeans":
		return PaletteMethodKMeans, nil
	}
	return 0, fmt.Errorf("unknown palette method %q", s)
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// luminance is the relative luminance of c (Rec. 709 weights on linear RGB).
func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		la, lb := luminance(a), luminance(b)
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return 0
	})
}

// pickDiverse takes the heaviest candidate first, then repeatedly the one
// farthest (in Lab) from everything picked so far, biased toward heavy colors.
func pickDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))

	maxW := 0.0
	for i := range cands {
		cands[i].Col = cands[i].Col.Clamped()
		cands[i].Weight = max(cands[i].Weight, 1e-6)
		maxW = max(maxW, cands[i].Weight)
	}

	taken := make([]bool, len(cands))
	first := 0
	for i, c := range cands {
		if c.Weight > cands[first].Weight {
			first = i
		}
	}
	taken[first] = true
	out := []colorful.Color{cands[first].Col}

	for len(out) < k {
		best, bestScore := -1, -1.0
		for i, c := range cands {
			if taken[i] {
				continue
			}
			nearest := math.MaxFloat64
			for _, p := range out {
				nearest = min(nearest, c.Col.DistanceLab(p))
			}
			score := nearest * (0.55 + 0.45*math.Sqrt(c.Weight/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		out = append(out, cands[best].Col)
	}
	return out
}

func dominantPalette(img image.Image, k int) []colorful.Color {
	var found []dominantcolor.Color
	if !img.Bounds().Empty() {
		found = dominantcolor.FindWeight(img, max(24, k*8))
	}
	if len(found) == 0 {
		found = []dominantcolor.Color{{RGBA: color.RGBA{R: 128, G: 128, B: 128, A: 255}, Weight: 1}}
	}
	cands := make([]weightedColor, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, weightedColor{Col: col, Weight: c.Weight})
	}
	return pickDiverse(cands, k)
}

// kmeansSampleLimit bounds the number of pixels handed to kmeans.
const kmeansSampleLimit = 12000

func kmeansPalette(img image.Image, k int) []colorful.Color {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return nil
	}
	step := 1
	if n > kmeansSampleLimit {
		step = int(math.Sqrt(float64(n)/kmeansSampleLimit)) + 1
	}

	obs := make(clusters.Observations, 0, min(n, kmeansSampleLimit))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			col, _ := colorful.MakeColor(img.At(x, y))
			obs = append(obs, clusters.Coordinates{col.R, col.G, col.B})
		}
	}

	cc, err := kmeans.New().Partition(obs, min(max(k*4, k+2), len(obs)))
	if err != nil || len(cc) == 0 {
		return nil
	}
	cands := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		cands = append(cands, weightedColor{
			Col:    colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]},
			Weight: float64(len(c.Observations)),
		})
	}
	return pickDiverse(cands, k)
}

// ExtractPalette returns up to k representative colors of img, darkest first.
// An empty kmeans result falls back to the dominant-color method and is
// reported to logger; a nil logger uses the standard logger.
func ExtractPalette(img image.Image, k int, method PaletteMethod, logger *log.Logger) []colorful.Color {
	if k <= 0 {
		return nil
	}
	var p []colorful.Color
	if method == PaletteMethodKMeans {
		p = kmeansPalette(img, k)
		if len(p) == 0 {
			if logger == nil {
				logger = log.Default()
			}
			logger.Println("palette warning: kmeans returned empty palette, falling back to dominantcolor")
		}
	}
	if len(p) == 0 {
		p = dominantPalette(img, k)
	}
	SortPaletteByBrightness(p)
	return p
}
