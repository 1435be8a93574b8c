// Package imagefile classifies files as images by decoding them and converts images between
// the supported output formats.
package imagefile

import (
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "github.com/gen2brain/avif" // register AVIF decoder
	_ "golang.org/x/image/bmp"    // register BMP decoder
	_ "golang.org/x/image/tiff"   // register TIFF decoder
	_ "golang.org/x/image/webp"   // register WebP decoder
)

// Kind is the decoder name of a file that decoded successfully, e.g. "png" or "jpeg"
type Kind string

// NotAnImage is the Kind of any file that could not be decoded
const NotAnImage Kind = ""

// Classify fully decodes the file at fpath. The returned error is the open or decode failure
// and is only meant for logging; any failure means the file is not an image.
func Classify(fpath string) (Kind, error) {
	_, format, err := decodeFile(fpath)
	if err != nil {
		return NotAnImage, err
	}
	return Kind(format), nil
}

// IsImage reports whether the file at fpath decodes as an image
func IsImage(fpath string) bool {
	kind, err := Classify(fpath)
	return err == nil && kind != NotAnImage
}

func decodeFile(fpath string) (image.Image, string, error) {
	fh, err := os.Open(fpath)
	if err != nil {
		return nil, "", err
	}
	defer fh.Close()

	return image.Decode(fh)
}
