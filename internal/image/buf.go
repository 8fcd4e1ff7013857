// Package image provides the straight-alpha RGBA8 pixel buffers used by the
// compositor.
package image

import (
	"errors"
	"math"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or when width*height*4 does not fit in an int.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataSize is returned when provided data does not match the
	// dimensions exactly.
	ErrDataSize = errors.New("image: data length does not match dimensions")
)

// bytesPerPixel is the size of one RGBA8 pixel.
const bytesPerPixel = 4

// PixLen returns width*height*4, the byte length of a tightly packed RGBA8
// buffer. ok is false for non-positive dimensions or when the product
// overflows int.
func PixLen(width, height int) (n int, ok bool) {
	if width <= 0 || height <= 0 || width > math.MaxInt/bytesPerPixel/height {
		return 0, false
	}
	return width * height * bytesPerPixel, true
}

// ImageBuf is a tightly packed RGBA8 buffer with its dimensions.
// Rows are width*4 bytes apart and channels hold straight alpha.
//
// Thread safety: ImageBuf is safe for concurrent reads. Writers to
// overlapping rows need external synchronization; writers to disjoint rows
// do not.
type ImageBuf struct {
	data   []byte
	width  int
	height int
}

// NewImageBuf creates a zeroed buffer with the given dimensions.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	n, ok := PixLen(width, height)
	if !ok {
		return nil, ErrInvalidDimensions
	}
	return &ImageBuf{
		data:   make([]byte, n),
		width:  width,
		height: height,
	}, nil
}

// FromRaw wraps existing data without copying.
// len(data) must equal width*height*4; the ImageBuf shares data.
func FromRaw(data []byte, width, height int) (*ImageBuf, error) {
	n, ok := PixLen(width, height)
	if !ok {
		return nil, ErrInvalidDimensions
	}
	if len(data) != n {
		return nil, ErrDataSize
	}
	return &ImageBuf{
		data:   data,
		width:  width,
		height: height,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int { return b.height }

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// stride returns the number of bytes per row.
func (b *ImageBuf) stride() int { return b.width * bytesPerPixel }

// RowBytes returns the pixel data for row y, or nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	return b.Rows(y, y+1)
}

// Rows returns the pixel data for rows [y0, y1).
// It returns nil for an empty or out-of-range span.
func (b *ImageBuf) Rows(y0, y1 int) []byte {
	if y0 < 0 || y1 > b.height || y0 >= y1 {
		return nil
	}
	s := b.stride()
	return b.data[y0*s : y1*s : y1*s]
}
