// Package composite merges an ordered stack of raster layers into a single
// RGBA image.
//
// # Overview
//
// Every layer is a straight-alpha RGBA8 buffer with an opacity and a blend
// mode. Layer 0 is the base and fixes the canvas size; each following layer
// is resized to the canvas if needed and composited on top, in order.
//
//	img, err := composite.Compose([]composite.LayerInput{
//	    {Data: base, Width: 640, Height: 480},
//	    {Data: shade, Width: 320, Height: 240, Opacity: composite.Opacity(0.5), BlendMode: "multiply"},
//	})
//	if err != nil {
//	    return err
//	}
//	_ = img.SavePNG("out.png")
//
// # Blend modes
//
// Over, Multiply, Screen and Add change only how colours mix. Coverage is
// always combined with the Porter-Duff "over" operator and the result is
// un-premultiplied before it is stored, so semi-transparent layers keep
// their saturation. Mode names are matched case-insensitively; unknown names
// mean Over.
//
// # Validation
//
// Structural problems fail the whole call: an empty request
// (ErrEmptyInput) or a buffer that is not width*height*4 bytes
// (ErrBufferSizeMismatch). Cosmetic parameters never fail: opacity is
// clamped to [0, 1] and unknown modes fall back to Over.
//
// # Resizing
//
// Layers whose size differs from the canvas go through a Resizer. The
// built-in one uses golang.org/x/image/draw with a selectable kernel
// (nearest-neighbour by default). Custom resizers plug in with WithResizer.
//
// # Colour
//
// Values are treated as given; there is no gamma handling or colour
// management.
package composite

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
