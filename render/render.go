// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/imggen/volume"
)

// DefaultDelay is the GIF frame delay in hundredths of a second.
const DefaultDelay = 10

// Option customizes Encode and WriteFile.
type Option func(*options)

type options struct {
	frame int
	delay int
	loop  int
}

// WithFrame picks the depth slice a still format writes. Default 0.
func WithFrame(z int) Option {
	if z < 0 {
		panic(fmt.Sprintf("render: WithFrame(%d): must be non-negative", z))
	}
	return func(o *options) { o.frame = z }
}

// WithDelay sets the GIF frame delay in hundredths of a second.
func WithDelay(cs int) Option {
	if cs < 0 {
		panic(fmt.Sprintf("render: WithDelay(%d): must be non-negative", cs))
	}
	return func(o *options) { o.delay = cs }
}

// WithLoopCount sets how often a GIF repeats: 0 forever, -1 play once.
func WithLoopCount(n int) Option {
	return func(o *options) { o.loop = n }
}

// grayPalette maps palette index i to gray level i.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// Frame returns depth slice z of v as an 8-bit gray image.
func Frame(v *volume.Volume, z int) (*image.Gray, error) {
	s := v.Shape()
	if s.Size() == 0 {
		return nil, fmt.Errorf("Frame: %w: %s", ErrNoFrames, s)
	}
	if z < 0 || z >= s.Depth {
		return nil, fmt.Errorf("Frame(%d): %w: depth %d", z, ErrFrameOutOfRange, s.Depth)
	}
	n := s.Rows * s.Cols
	img := image.NewGray(image.Rect(0, 0, s.Cols, s.Rows))
	copy(img.Pix, v.Bytes()[z*n:(z+1)*n])
	return img, nil
}

// Frames returns every depth slice of v as a paletted gray image.
func Frames(v *volume.Volume) ([]*image.Paletted, error) {
	s := v.Shape()
	if s.Size() == 0 {
		return nil, fmt.Errorf("Frames: %w: %s", ErrNoFrames, s)
	}
	n := s.Rows * s.Cols
	b := v.Bytes()
	out := make([]*image.Paletted, s.Depth)
	for z := range out {
		img := image.NewPaletted(image.Rect(0, 0, s.Cols, s.Rows), grayPalette)
		copy(img.Pix, b[z*n:(z+1)*n])
		out[z] = img
	}
	return out, nil
}

// Encode writes v to w in format f.
func Encode(w io.Writer, v *volume.Volume, f Format, opts ...Option) error {
	o := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	if f.Animated() {
		return encodeGIF(w, v, o)
	}
	img, err := Frame(v, o.frame)
	if err != nil {
		return fmt.Errorf("Encode(%s): %w", f, err)
	}
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if err != nil {
		return fmt.Errorf("Encode(%s): %w", f, err)
	}
	return nil
}

func encodeGIF(w io.Writer, v *volume.Volume, o options) error {
	frames, err := Frames(v)
	if err != nil {
		return fmt.Errorf("Encode(gif): %w", err)
	}
	g := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: o.loop,
	}
	for i := range g.Delay {
		g.Delay[i] = o.delay
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("Encode(gif): %w", err)
	}
	return nil
}

// WriteFile encodes v into path, picking the format from its extension.
func WriteFile(path string, v *volume.Volume, opts ...Option) error {
	f, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := Encode(bw, v, f, opts...); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	return file.Close()
}
