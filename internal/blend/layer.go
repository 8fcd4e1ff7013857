package blend

import "fmt"

// CompositeRGBA composites src onto dst in place.
//
// Both slices hold straight-alpha RGBA8 pixels and must describe the same
// pixel count. opacity scales the coverage of every src pixel and is
// expected to be in [0, 1]. Pixels are independent of each other, so callers
// may split dst and src into matching sub-slices and composite them
// concurrently.
//
// A length mismatch is a programming error and panics.
func CompositeRGBA(dst, src []byte, opacity float32, mode Mode) {
	if len(dst) != len(src) || len(dst)%4 != 0 {
		panic(fmt.Sprintf("blend: mismatched pixel buffers (dst %d bytes, src %d bytes)", len(dst), len(src)))
	}

	for i := 0; i < len(dst); i += 4 {
		compositePixel(dst[i:i+4:i+4], src[i:i+4:i+4], opacity, mode)
	}
}

// compositePixel applies one layer pixel over one base pixel.
func compositePixel(base, layer []byte, opacity float32, mode Mode) {
	la := clamp(unit(layer[3])*opacity, 0, 1)
	if la <= Epsilon {
		return
	}

	ba := clamp(unit(base[3]), 0, 1)
	outA := la + ba*(1-la)

	for c := range 3 {
		b := unit(base[c])
		mixed := Mix(mode, b, unit(layer[c]))
		num := mixed*la + b*ba*(1-la)

		var v float32
		if outA > Epsilon {
			v = clamp(num/outA, 0, 1)
		}
		base[c] = quantize(v)
	}

	base[3] = quantize(outA)
}
