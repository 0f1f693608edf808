// Package render turns volumes into grayscale image files.
//
// Each depth slice is one frame; voxel values map to gray levels with
// volume.Volume.Bytes (truncating v*0xff, saturating outside [0,1]).
// Still formats (PNG, BMP, TIFF) write a single frame; GIF writes every
// frame as one animation.
package render
