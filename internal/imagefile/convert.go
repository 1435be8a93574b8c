package imagefile

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

var (
	// ErrorDecode wraps failures to open or decode the source image
	ErrorDecode = fmt.Errorf("unable to decode image")
	// ErrorEncode wraps failures to create, encode or write the output image
	ErrorEncode = fmt.Errorf("unable to encode image")
)

// ConvertFile converts inputPath to the format named by target and writes it to outputPath.
// An unsupported target fails before the input is read.
func ConvertFile(inputPath, outputPath, target string) error {
	format, err := ParseFormat(target)
	if err != nil {
		return err
	}
	return Convert(inputPath, outputPath, format)
}

// Convert decodes inputPath (format detected from content) and writes it to outputPath encoded
// as format. The input file is never modified.
func Convert(inputPath, outputPath string, format Format) error {
	encode, ok := encoders[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrorUnsupportedFormat, string(format))
	}

	img, _, err := decodeFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrorDecode, inputPath, err)
	}

	destFh, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorEncode, err)
	}
	if err := encode(destFh, img); err != nil {
		destFh.Close()
		os.Remove(outputPath)
		return fmt.Errorf("%w: %s: %v", ErrorEncode, outputPath, err)
	}
	if err := destFh.Close(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("%w: %s: %v", ErrorEncode, outputPath, err)
	}
	return nil
}

type encodeFunc func(w io.Writer, img image.Image) error

var encoders = map[Format]encodeFunc{
	FormatPNG:  encodePNG,
	FormatJPEG: encodeJPEG,
	FormatWebP: encodeWebP,
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: jpeg.DefaultQuality})
}

func encodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: true})
}

// flatten composites img over an opaque white background, JPEG has no alpha channel
func flatten(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)
	return dst
}
