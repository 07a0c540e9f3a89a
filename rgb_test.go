package imghist_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setanarut/imghist"
)

func rgbAt(t *testing.T, img *imghist.RGB, x, y int) [3]uint8 {
	t.Helper()
	i := img.PixOffset(x, y)
	return [3]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
}

func TestNormalizePassThrough(t *testing.T) {
	src := imghist.NewRGB(image.Rect(0, 0, 2, 2))
	src.SetRGB(1, 1, 1, 2, 3)

	got, err := imghist.Normalize(src)
	require.NoError(t, err)
	require.Same(t, src, got)
}

func TestNormalizeGrayReplicates(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 77})
	src.SetGray(2, 0, color.Gray{Y: 255})

	got, err := imghist.Normalize(src)
	require.NoError(t, err)
	require.Equal(t, [3]uint8{77, 77, 77}, rgbAt(t, got, 1, 0))
	require.Equal(t, [3]uint8{255, 255, 255}, rgbAt(t, got, 2, 0))

	g16 := image.NewGray16(image.Rect(0, 0, 1, 1))
	g16.SetGray16(0, 0, color.Gray16{Y: 0x8040})
	got, err = imghist.Normalize(g16)
	require.NoError(t, err)
	require.Equal(t, [3]uint8{0x80, 0x80, 0x80}, rgbAt(t, got, 0, 0))
}

func TestNormalizeDropsAlpha(t *testing.T) {
	n := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	n.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	got, err := imghist.Normalize(n)
	require.NoError(t, err)
	require.Equal(t, [3]uint8{10, 20, 30}, rgbAt(t, got, 0, 0))

	r := image.NewRGBA(image.Rect(0, 0, 1, 1))
	r.SetRGBA(0, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})
	got, err = imghist.Normalize(r)
	require.NoError(t, err)
	require.Equal(t, [3]uint8{40, 50, 60}, rgbAt(t, got, 0, 0))

	r.SetRGBA(0, 0, color.RGBA{R: 50, G: 25, B: 0, A: 100})
	got, err = imghist.Normalize(r)
	require.NoError(t, err)
	want := color.NRGBAModel.Convert(r.At(0, 0)).(color.NRGBA)
	require.Equal(t, [3]uint8{want.R, want.G, want.B}, rgbAt(t, got, 0, 0))
}

func TestNormalizePaletted(t *testing.T) {
	pal := color.Palette{color.RGBA{R: 1, G: 2, B: 3, A: 255}, color.RGBA{R: 200, G: 100, B: 50, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	src.SetColorIndex(1, 0, 1)

	got, err := imghist.Normalize(src)
	require.NoError(t, err)
	require.Equal(t, [3]uint8{1, 2, 3}, rgbAt(t, got, 0, 0))
	require.Equal(t, [3]uint8{200, 100, 50}, rgbAt(t, got, 1, 0))

	_, err = imghist.Normalize(image.NewPaletted(image.Rect(0, 0, 1, 1), nil))
	require.ErrorIs(t, err, imghist.ErrUnsupportedModel)
}

func TestNormalizeCMYK(t *testing.T) {
	src := image.NewCMYK(image.Rect(0, 0, 1, 1))
	src.SetCMYK(0, 0, color.CMYK{C: 10, M: 200, Y: 30, K: 40})

	got, err := imghist.Normalize(src)
	require.NoError(t, err)
	r, g, b := color.CMYKToRGB(10, 200, 30, 40)
	require.Equal(t, [3]uint8{r, g, b}, rgbAt(t, got, 0, 0))
}

func TestNormalizeYCbCr(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	for i := range src.Y {
		src.Y[i] = uint8(60 + i)
		src.Cb[i] = 100
		src.Cr[i] = 150
	}

	got, err := imghist.Normalize(src)
	require.NoError(t, err)
	for y := range 2 {
		for x := range 2 {
			c := src.YCbCrAt(x, y)
			r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
			require.Equal(t, [3]uint8{r, g, b}, rgbAt(t, got, x, y))
		}
	}
}

func TestNormalizeKeepsOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(5, 7, 8, 9))
	src.SetGray(7, 8, color.Gray{Y: 9})

	got, err := imghist.Normalize(src)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())
	require.Equal(t, [3]uint8{9, 9, 9}, rgbAt(t, got, 7, 8))
}

func TestNormalizeUnsupported(t *testing.T) {
	_, err := imghist.Normalize(image.NewAlpha(image.Rect(0, 0, 1, 1)))
	require.ErrorIs(t, err, imghist.ErrUnsupportedModel)

	_, err = imghist.Normalize(nil)
	require.ErrorIs(t, err, imghist.ErrUnsupportedModel)
}
