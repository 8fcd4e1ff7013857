// Package blend implements straight-alpha layer compositing with separable
// blend modes.
//
// Blend modes only change how the colour of a layer pixel is mixed with the
// colour underneath it. Coverage is always combined with the Porter-Duff
// "over" operator, and the accumulated colour is un-premultiplied by the
// resulting alpha before it is stored back as 8-bit straight alpha.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects the colour-mixing function applied before alpha compositing.
type Mode uint8

const (
	// ModeOver places the layer colour on top. It is the default.
	ModeOver Mode = iota
	// ModeMultiply multiplies base and layer colours. Result is never lighter.
	ModeMultiply
	// ModeScreen inverts, multiplies and inverts again. Result is never darker.
	ModeScreen
	// ModeAdd sums base and layer colours, saturating at 1.
	ModeAdd
)

// String returns the canonical lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOver:
		return "over"
	case ModeMultiply:
		return "multiply"
	case ModeScreen:
		return "screen"
	case ModeAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Mix returns the blended colour for one channel.
// b is the base channel and l the layer channel, both normalized to [0, 1].
// Unknown modes behave like ModeOver.
func Mix(mode Mode, b, l float32) float32 {
	switch mode {
	case ModeMultiply:
		return b * l
	case ModeScreen:
		return 1 - (1-b)*(1-l)
	case ModeAdd:
		return min(b+l, 1)
	default:
		return l
	}
}
