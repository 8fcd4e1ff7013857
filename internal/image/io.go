package image

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadImage loads an image file, detecting the format from its content.
// PNG, JPEG, WebP, BMP and TIFF are supported.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r into a straight-alpha RGBA8 buffer.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}

	buf := FromStdImage(img)
	if buf == nil {
		return nil, fmt.Errorf("image: decode %s: %w", format, ErrInvalidDimensions)
	}
	return buf, nil
}

// FromStdImage converts any image.Image to a straight-alpha RGBA8 buffer.
// Returns nil for an empty image.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil
	}

	// Fast path: already straight alpha, copy row by row
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[start:start+buf.stride()])
		}
		return buf
	}

	// Everything else goes through the NRGBA colour model, which
	// un-premultiplies *image.RGBA and expands paletted/gray/YCbCr sources.
	dst := buf.NRGBA()
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return buf
}

// NRGBA returns an *image.NRGBA view sharing the buffer's pixel data.
func (b *ImageBuf) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride(),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.NRGBA()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file.
// The file at path is replaced only once encoding has succeeded; on error
// it is left as it was.
func (b *ImageBuf) SavePNG(path string) error {
	return writeFileAtomic(filepath.Clean(path), b.EncodePNG)
}

// writeFileAtomic streams write into a temporary file next to path and
// renames it into place. The temporary file is removed on any error.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}
