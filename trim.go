package imghist

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ContentBounds returns the smallest rectangle holding every pixel that
// differs from the top-left (background) pixel. A uniform image yields an
// empty rectangle.
func ContentBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}
	}
	bg := color.NRGBAModel.Convert(img.At(b.Min.X, b.Min.Y))
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)) == bg {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x+1)
			minY, maxY = min(minY, y), max(maxY, y+1)
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// Trim crops img to its content plus pad pixels on each side, clamped to the
// original bounds. The result is anchored at the origin.
func Trim(img image.Image, pad int) image.Image {
	content := ContentBounds(img)
	if content.Empty() {
		return img
	}
	r := image.Rect(content.Min.X-pad, content.Min.Y-pad, content.Max.X+pad, content.Max.Y+pad).
		Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}
