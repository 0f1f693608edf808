package render

import "errors"

// ErrUnknownFormat indicates a format name or file extension render has no
// encoder for.
var ErrUnknownFormat = errors.New("render: unknown image format")

// ErrNoFrames indicates a volume with zero depth, rows or cols.
var ErrNoFrames = errors.New("render: volume has no frames")

// ErrFrameOutOfRange indicates a frame index outside the volume depth.
var ErrFrameOutOfRange = errors.New("render: frame index out of range")
