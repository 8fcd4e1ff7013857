package composite

import (
	"bytes"
	"log/slog"

	"github.com/gogpu/composite/internal/blend"
	"github.com/gogpu/composite/internal/image"
	"github.com/gogpu/composite/internal/parallel"
	"github.com/gogpu/composite/internal/resample"
)

// minParallelPixels is the canvas size below which band splitting costs
// more than it saves.
const minParallelPixels = 64 * 64

// Compositor merges ordered layer stacks into single images.
//
// A Compositor holds only configuration, a scratch-buffer pool and an
// optional worker pool. Every Compose call owns its accumulator, so one
// Compositor may serve many goroutines.
type Compositor struct {
	resizer Resizer
	pool    *image.Pool
	workers *parallel.WorkerPool
	log     *slog.Logger
}

// New creates a Compositor.
// Call Close when done if WithWorkers was given a value other than 1.
func New(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{
		resizer: o.resizer,
		pool:    image.NewPool(o.poolSize),
		log:     o.logger,
	}
	if c.resizer == nil {
		c.resizer = resample.New(o.interp)
	}
	if c.log == nil {
		c.log = Logger()
	}
	if o.workers != 1 {
		c.workers = parallel.NewWorkerPool(o.workers)
	}
	return c
}

// Compose is a one-shot helper: it creates a Compositor with opts, composes
// inputs and releases the Compositor.
func Compose(inputs []LayerInput, opts ...Option) (*Image, error) {
	c := New(opts...)
	defer c.Close()
	return c.Compose(inputs)
}

// Compose merges inputs bottom to top into one image the size of
// inputs[0].
//
// Each layer is validated, resized to the canvas if needed and composited
// over the running result with its opacity and blend mode. The call is
// all-or-nothing: on error the returned image is nil. Input buffers are only
// read.
func (c *Compositor) Compose(inputs []LayerInput) (*Image, error) {
	layers, err := NormalizeLayers(inputs)
	if err != nil {
		return nil, err
	}

	base := layers[0]
	w, h := base.width, base.height
	c.log.Debug("composite: start", "layers", len(layers), "width", w, "height", h)

	out, err := newImage(bytes.Clone(base.pixels), w, h)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(layers); i++ {
		l := layers[i]
		src, pooled, err := c.reconcile(i, l, w, h)
		if err != nil {
			return nil, err
		}
		c.apply(out.buf, src, l)
		if pooled {
			c.pool.Put(src)
		}
	}

	c.log.Debug("composite: done", "width", w, "height", h)
	return out, nil
}

// Close releases the worker pool, if any. The Compositor must not be used
// afterwards. Close is safe to call multiple times.
func (c *Compositor) Close() {
	if c.workers != nil {
		c.workers.Close()
	}
}

// apply composites one canvas-sized layer onto acc.
func (c *Compositor) apply(acc, src *image.ImageBuf, l Layer) {
	opacity := float32(l.opacity)
	w, h := acc.Bounds()

	if c.workers == nil || w*h < minParallelPixels {
		blend.CompositeRGBA(acc.Data(), src.Data(), opacity, l.mode)
		return
	}

	bands := parallel.Bands(h, c.workers.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		dst, pix := acc.Rows(b.Y0, b.Y1), src.Rows(b.Y0, b.Y1)
		work[i] = func() {
			blend.CompositeRGBA(dst, pix, opacity, l.mode)
		}
	}
	c.workers.ExecuteAll(work)
}
