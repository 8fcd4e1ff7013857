package composite

import (
	stdimage "image"
	"io"

	"github.com/gogpu/composite/internal/cidutil"
	"github.com/gogpu/composite/internal/image"
)

// Image is a composited straight-alpha RGBA8 image.
type Image struct {
	buf *image.ImageBuf
}

// newImage takes ownership of pix and wraps it as an Image.
func newImage(pix []byte, w, h int) (*Image, error) {
	buf, err := image.FromRaw(pix, w, h)
	if err != nil {
		return nil, &OutputError{Width: w, Height: h, Err: err}
	}
	return &Image{buf: buf}, nil
}

// Pix returns the pixel data: Width()*Height()*4 bytes, row-major, straight
// alpha. The slice is owned by the caller.
func (m *Image) Pix() []byte { return m.buf.Data() }

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.buf.Width() }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.buf.Height() }

// Bounds returns the image dimensions as (width, height).
func (m *Image) Bounds() (int, int) { return m.buf.Bounds() }

// NRGBA returns an *image.NRGBA sharing the pixel data.
func (m *Image) NRGBA() *stdimage.NRGBA { return m.buf.NRGBA() }

// EncodePNG writes the image as PNG.
func (m *Image) EncodePNG(w io.Writer) error { return m.buf.EncodePNG(w) }

// SavePNG writes the image to a PNG file. The file is replaced only after
// encoding succeeds, so a failed save leaves path as it was.
func (m *Image) SavePNG(path string) error { return m.buf.SavePNG(path) }

// ContentID returns a CIDv1 (raw, sha2-256) over the dimensions and pixels.
// Equal composites have equal ids, which makes the id usable as a cache key.
func (m *Image) ContentID() string {
	return cidutil.ImageCID(m.buf.Data(), m.buf.Width(), m.buf.Height())
}
