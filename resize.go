package composite

import (
	"github.com/gogpu/composite/internal/image"
	"github.com/gogpu/composite/internal/resample"
)

// Resizer scales a straight-alpha RGBA8 buffer from srcW x srcH to
// dstW x dstH. The result must hold exactly dstW*dstH*4 bytes; the
// compositor rejects anything else with a *ReconciliationError.
//
// Resize is called synchronously, once per layer whose size differs from
// the canvas. It must not modify pix.
type Resizer interface {
	Resize(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error)
}

// ResizerFunc adapts an ordinary function to the Resizer interface.
type ResizerFunc func(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error)

// Resize calls f.
func (f ResizerFunc) Resize(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return f(pix, srcW, srcH, dstW, dstH)
}

// intoResizer is implemented by resizers that can write into a
// caller-supplied buffer, letting the compositor recycle scratch space.
type intoResizer interface {
	ResizeInto(dst, pix []byte, srcW, srcH, dstW, dstH int) error
}

// Interpolation selects the kernel of the built-in resizer.
type Interpolation = resample.Kernel

// Built-in interpolation kernels.
const (
	InterpNearest        = resample.Nearest
	InterpApproxBilinear = resample.ApproxBilinear
	InterpBilinear       = resample.Bilinear
	InterpCatmullRom     = resample.CatmullRom
)

// ParseInterpolation resolves a kernel name such as "nearest", "bilinear",
// "approx-bilinear" or "catmull-rom" (alias "bicubic").
func ParseInterpolation(name string) (Interpolation, error) {
	return resample.ParseKernel(name)
}

// reconcile returns the layer's pixels at canvas size.
//
// A layer already at canvas size is wrapped without copying. Otherwise the
// resizer runs; if it drew into a pooled buffer, pooled is true and the
// buffer must be handed back to the pool once the layer has been applied.
func (c *Compositor) reconcile(index int, l Layer, w, h int) (src *image.ImageBuf, pooled bool, err error) {
	if l.width == w && l.height == h {
		src, err = image.FromRaw(l.pixels, w, h)
		if err != nil {
			return nil, false, &ReconciliationError{Index: index, Got: len(l.pixels), Want: w * h * 4, Err: err}
		}
		return src, false, nil
	}

	want := w * h * 4
	c.log.Debug("composite: resizing layer",
		"layer", index,
		"from", [2]int{l.width, l.height},
		"to", [2]int{w, h})

	if ri, ok := c.resizer.(intoResizer); ok {
		buf := c.pool.Get(w, h)
		if buf == nil {
			return nil, false, &ReconciliationError{Index: index, Got: -1, Want: want, Err: image.ErrInvalidDimensions}
		}
		if err := ri.ResizeInto(buf.Data(), l.pixels, l.width, l.height, w, h); err != nil {
			c.pool.Put(buf)
			return nil, false, &ReconciliationError{Index: index, Got: -1, Want: want, Err: err}
		}
		return buf, true, nil
	}

	out, err := c.resizer.Resize(l.pixels, l.width, l.height, w, h)
	if err != nil {
		return nil, false, &ReconciliationError{Index: index, Got: -1, Want: want, Err: err}
	}
	src, err = image.FromRaw(out, w, h)
	if err != nil {
		return nil, false, &ReconciliationError{Index: index, Got: len(out), Want: want}
	}
	return src, false, nil
}
