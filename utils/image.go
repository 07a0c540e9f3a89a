package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// SaveImage writes img to filename as PNG, replacing any existing file.
func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return f.Close()
}

// AppendSwatches returns a copy of img with a band of equal-width color
// tiles, one per palette entry, attached below it.
func AppendSwatches(img image.Image, palette []colorful.Color, height int) (*image.RGBA, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if height <= 0 {
		height = 48
	}
	b := img.Bounds()
	w := b.Dx()
	out := image.NewRGBA(image.Rect(0, 0, w, b.Dy()+height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, w, b.Dy()), img, b.Min, draw.Src)

	for i, c := range palette {
		r, g, bl := c.Clamped().RGB255()
		x0 := i * w / len(palette)
		x1 := (i + 1) * w / len(palette)
		tile := image.Rect(x0, b.Dy(), x1, b.Dy()+height)
		draw.Draw(out, tile, image.NewUniform(color.RGBA{R: r, G: g, B: bl, A: 255}), image.Point{}, draw.Src)
	}
	return out, nil
}
