package imghist

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrUnsupportedModel is returned by Normalize for pixel representations
// outside the enumerated set.
var ErrUnsupportedModel = errors.New("unsupported pixel representation")

// RGB is an in-memory image with three 8-bit channels per pixel and no alpha.
type RGB struct {
	// Pix holds R, G, B triples in row-major order.
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 255}
}

func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB) SetRGB(x, y int, r, g, b uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i], p.Pix[i+1], p.Pix[i+2] = r, g, b
}

// Normalize converts a decoded image into three-channel 8-bit form.
//
// Accepted sources and their rules:
//   - *RGB: returned unchanged.
//   - *image.RGBA, *image.RGBA64, *image.NRGBA, *image.NRGBA64: colour is
//     un-premultiplied, reduced to 8 bits and alpha is discarded.
//   - *image.Gray, *image.Gray16: the luma value is replicated into R, G, B.
//   - *image.Paletted: palette lookup, then treated as NRGBA.
//   - *image.CMYK: color.CMYKToRGB.
//   - *image.YCbCr, *image.NYCbCrA: color.YCbCrToRGB, alpha discarded.
//
// Any other type yields ErrUnsupportedModel.
func Normalize(img image.Image) (*RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("normalize: %w: nil image", ErrUnsupportedModel)
	}
	if p, ok := img.(*RGB); ok {
		return p, nil
	}

	if p, ok := img.(*image.Paletted); ok && len(p.Palette) == 0 {
		return nil, fmt.Errorf("normalize: %w: empty palette", ErrUnsupportedModel)
	}

	b := img.Bounds()
	out := NewRGB(b)

	var px func(x, y int) (uint8, uint8, uint8)
	switch src := img.(type) {
	case *image.Gray:
		px = func(x, y int) (uint8, uint8, uint8) {
			v := src.GrayAt(x, y).Y
			return v, v, v
		}
	case *image.Gray16:
		px = func(x, y int) (uint8, uint8, uint8) {
			v := uint8(src.Gray16At(x, y).Y >> 8)
			return v, v, v
		}
	case *image.NRGBA:
		px = func(x, y int) (uint8, uint8, uint8) {
			c := src.NRGBAAt(x, y)
			return c.R, c.G, c.B
		}
	case *image.RGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted:
		px = func(x, y int) (uint8, uint8, uint8) {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			return c.R, c.G, c.B
		}
	case *image.CMYK:
		px = func(x, y int) (uint8, uint8, uint8) {
			c := src.CMYKAt(x, y)
			return color.CMYKToRGB(c.C, c.M, c.Y, c.K)
		}
	case *image.YCbCr:
		px = func(x, y int) (uint8, uint8, uint8) {
			c := src.YCbCrAt(x, y)
			return color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
		}
	case *image.NYCbCrA:
		px = func(x, y int) (uint8, uint8, uint8) {
			c := src.NYCbCrAAt(x, y)
			return color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
		}
	default:
		return nil, fmt.Errorf("normalize: %w: %T", ErrUnsupportedModel, img)
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Pix[i], out.Pix[i+1], out.Pix[i+2] = px(x, y)
			i += 3
		}
	}
	return out, nil
}
