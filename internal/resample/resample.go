package resample

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	pixbuf "github.com/gogpu/composite/internal/image"
)

// ErrSize is returned when a buffer length does not match its dimensions.
var ErrSize = errors.New("resample: buffer length does not match dimensions")

// Resizer scales RGBA8 buffers with a fixed kernel.
// The zero value uses Nearest. A Resizer holds no mutable state and is safe
// for concurrent use.
type Resizer struct {
	Kernel Kernel
}

// New returns a Resizer using kernel k.
func New(k Kernel) *Resizer {
	return &Resizer{Kernel: k}
}

// Resize returns a new dstW x dstH buffer holding pix scaled from srcW x srcH.
func (r *Resizer) Resize(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	n, ok := pixbuf.PixLen(dstW, dstH)
	if !ok {
		return nil, fmt.Errorf("resample: target %dx%d: %w", dstW, dstH, ErrSize)
	}
	dst := make([]byte, n)
	if err := r.ResizeInto(dst, pix, srcW, srcH, dstW, dstH); err != nil {
		return nil, err
	}
	return dst, nil
}

// ResizeInto scales pix into dst, overwriting every destination pixel.
// len(pix) must be srcW*srcH*4 and len(dst) must be dstW*dstH*4.
func (r *Resizer) ResizeInto(dst, pix []byte, srcW, srcH, dstW, dstH int) error {
	src, err := view(pix, srcW, srcH)
	if err != nil {
		return fmt.Errorf("resample: source: %w", err)
	}
	out, err := view(dst, dstW, dstH)
	if err != nil {
		return fmt.Errorf("resample: destination: %w", err)
	}

	r.Kernel.interpolator().Scale(out, out.Rect, src, src.Rect, xdraw.Src, nil)
	return nil
}

// view wraps pix as an *image.NRGBA without copying.
func view(pix []byte, w, h int) (*image.NRGBA, error) {
	if n, ok := pixbuf.PixLen(w, h); !ok || len(pix) != n {
		return nil, fmt.Errorf("%dx%d with %d bytes: %w", w, h, len(pix), ErrSize)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}
