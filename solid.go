package composite

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// SolidLayer returns a width x height RGBA8 buffer filled with c.
// c is converted to straight alpha first. Non-positive sizes yield nil.
func SolidLayer(width, height int, c color.Color) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = n.R, n.G, n.B, n.A
	}
	return pix
}

// ParseHexColor parses "#rgb" or "#rrggbb", optionally followed by
// "@alpha" with alpha in [0, 1], e.g. "#ff8000@0.5".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex, alpha, hasAlpha := strings.Cut(s, "@")

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("composite: parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()

	a := uint8(255)
	if hasAlpha {
		v, err := strconv.ParseFloat(alpha, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("composite: parse colour %q: alpha: %w", s, err)
		}
		if v < 0 || v > 1 || math.IsNaN(v) {
			return color.NRGBA{}, fmt.Errorf("composite: parse colour %q: alpha %v outside [0, 1]", s, v)
		}
		a = uint8(math.Round(v * 255))
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
