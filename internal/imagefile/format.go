package imagefile

import (
	"fmt"
	"strings"
)

// Format is one of the supported output encodings
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
)

var (
	// ErrorUnsupportedFormat is returned for any target format other than png, jpg, jpeg or webp
	ErrorUnsupportedFormat = fmt.Errorf("unsupported format")

	formatNames = map[string]Format{
		"png":  FormatPNG,
		"jpg":  FormatJPEG,
		"jpeg": FormatJPEG,
		"webp": FormatWebP,
	}
)

// ParseFormat maps a target format name to a Format. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	format, ok := formatNames[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrorUnsupportedFormat, name)
	}
	return format, nil
}

// SupportedFormatNames lists the names accepted by ParseFormat
func SupportedFormatNames() []string {
	return []string{"png", "jpg", "jpeg", "webp"}
}
