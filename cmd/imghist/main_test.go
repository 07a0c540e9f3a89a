package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUsage(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, args := range [][]string{nil, {"a.png", "b.png"}, {"-palette", "3"}, {"-h"}, {"-h", "a.png"}} {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run(args, &stdout, &stderr), "%q", args)
		require.Contains(t, stdout.String(), "Usage: imghist [options] <image_path>")
	}
	require.NoDirExists(t, "histograms")
}

func TestRunMissingInput(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"/tmp/does-not-exist.png"}, &stdout, &stderr))
	require.Equal(t, "Error: Image /tmp/does-not-exist.png does not exist\n", stdout.String())
	require.NoDirExists(t, "histograms")
}

func TestRunBadPaletteMethod(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"-palette-method", "octree", "x.png"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "unknown palette method")
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	f, err := os.Create("gray.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"gray.png"}, &stdout, &stderr), stderr.String())

	out := filepath.Join("histograms", "gray_histogram.png")
	require.Equal(t, "Loading image: gray.png\nHistogram saved to: "+out+"\n", stdout.String())
	require.FileExists(t, out)

	stdout.Reset()
	require.Equal(t, 0, run([]string{"-stats", "-palette", "2", "-out", "charts", "gray.png"}, &stdout, &stderr), stderr.String())
	require.Contains(t, stdout.String(), "red ")
	require.FileExists(t, filepath.Join("charts", "gray_histogram.png"))
}

func TestRunDecodeError(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("bad.jpg", []byte{0xff, 0xd8, 0x00}, 0o644))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"bad.jpg"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "decode jpeg")
	require.NoDirExists(t, "histograms")
}
