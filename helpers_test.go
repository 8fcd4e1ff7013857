package composite

import "image/color"

func opaque(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// pixelLayer builds a 1x1 layer input.
func pixelLayer(px [4]byte, opacity *float64, mode string) LayerInput {
	return LayerInput{Data: px[:], Width: 1, Height: 1, Opacity: opacity, BlendMode: mode}
}

// fill builds a w x h buffer where every pixel is px.
func fill(w, h int, px [4]byte) []byte {
	return SolidLayer(w, h, color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]})
}

// gradient builds a w x h buffer with varied, partially transparent pixels.
func gradient(w, h int, seed byte) []byte {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(i*31) ^ seed
	}
	return pix
}

// sameColor compares two colours in straight-alpha 8-bit space.
func sameColor(a, b color.Color) bool {
	return color.NRGBAModel.Convert(a) == color.NRGBAModel.Convert(b)
}
