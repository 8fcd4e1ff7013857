package composite

import (
	"math"

	"github.com/gogpu/composite/internal/image"
)

// LayerInput is a raw layer descriptor as supplied by a caller.
type LayerInput struct {
	// Data holds straight-alpha RGBA8 pixels, row-major, no padding.
	Data []byte

	Width  int
	Height int

	// Opacity scales the layer's alpha. nil means 1. Values outside [0, 1]
	// are clamped.
	Opacity *float64

	// BlendMode names the colour-mixing mode, see ParseBlendMode.
	// Empty means "over".
	BlendMode string
}

// Opacity returns a pointer to v, for filling LayerInput.Opacity.
func Opacity(v float64) *float64 {
	return &v
}

// Layer is a validated layer.
//
// Its pixel buffer is guaranteed to hold Width()*Height()*4 bytes and its
// opacity lies in [0, 1]. The buffer is shared with the LayerInput it came
// from and is never written by the compositor.
type Layer struct {
	pixels  []byte
	width   int
	height  int
	opacity float64
	mode    BlendMode
}

// NewLayer validates one raw descriptor. index is used only for error
// reporting.
//
// A buffer whose length is not Width*Height*4, non-positive dimensions, or
// dimensions whose byte size overflows int yield a *BufferSizeMismatchError. Opacity and blend mode never cause an
// error: opacity is clamped (NaN becomes 0) and unknown modes become
// BlendOver.
func NewLayer(index int, in LayerInput) (Layer, error) {
	want, ok := image.PixLen(in.Width, in.Height)
	if !ok {
		want = -1
	}
	if !ok || len(in.Data) != want {
		return Layer{}, &BufferSizeMismatchError{
			Index:  index,
			Width:  in.Width,
			Height: in.Height,
			Got:    len(in.Data),
			Want:   want,
		}
	}

	return Layer{
		pixels:  in.Data,
		width:   in.Width,
		height:  in.Height,
		opacity: clampOpacity(in.Opacity),
		mode:    ParseBlendMode(in.BlendMode),
	}, nil
}

// NormalizeLayers validates a whole request in order, stopping at the first
// invalid layer. An empty request fails with ErrEmptyInput.
func NormalizeLayers(inputs []LayerInput) ([]Layer, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyInput
	}

	layers := make([]Layer, 0, len(inputs))
	for i, in := range inputs {
		l, err := NewLayer(i, in)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// Pixels returns the layer's RGBA8 buffer. Callers must not modify it.
func (l Layer) Pixels() []byte { return l.pixels }

// Width returns the layer width in pixels.
func (l Layer) Width() int { return l.width }

// Height returns the layer height in pixels.
func (l Layer) Height() int { return l.height }

// Opacity returns the clamped opacity in [0, 1].
func (l Layer) Opacity() float64 { return l.opacity }

// BlendMode returns the resolved blend mode.
func (l Layer) BlendMode() BlendMode { return l.mode }

func clampOpacity(v *float64) float64 {
	if v == nil {
		return 1
	}
	switch {
	case math.IsNaN(*v), *v < 0:
		return 0
	case *v > 1:
		return 1
	default:
		return *v
	}
}
