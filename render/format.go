package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	GIF
	BMP
	TIFF
)

var formatNames = map[string]Format{
	"png":  PNG,
	"gif":  GIF,
	"bmp":  BMP,
	"tif":  TIFF,
	"tiff": TIFF,
}

func (f Format) String() string {
	switch f {
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return "png"
}

// Animated reports whether the format stores every frame.
func (f Format) Animated() bool { return f == GIF }

// ParseFormat maps a case-insensitive name ("png", "gif", "bmp", "tif",
// "tiff") to a Format.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimPrefix(name, "."))]
	if !ok {
		return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
