package imagefile

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/require"
)

const (
	fixtureWidth  = 24
	fixtureHeight = 16
)

func fixtureImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fixtureWidth, fixtureHeight))
	for y := 0; y < fixtureHeight; y++ {
		for x := 0; x < fixtureWidth; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 15), B: 128, A: 255})
		}
	}
	return img
}

func encodeFixture(t testing.TB, format Format, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	switch format {
	case FormatPNG:
		require.NoError(t, png.Encode(buf, img))
	case FormatJPEG:
		require.NoError(t, jpeg.Encode(buf, img, nil))
	case FormatWebP:
		require.NoError(t, webp.Encode(buf, img, &webp.Options{Lossless: true}))
	default:
		t.Fatalf("no fixture encoder for %q", format)
	}
	return buf.Bytes()
}

func writeFixture(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	fpath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fpath, data, 0o644))
	return fpath
}

func decodeOutput(t testing.TB, fpath string) (image.Image, string) {
	t.Helper()
	fh, err := os.Open(fpath)
	require.NoError(t, err)
	defer fh.Close()
	img, format, err := image.Decode(fh)
	require.NoError(t, err)
	return img, format
}
