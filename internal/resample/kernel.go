// Package resample scales straight-alpha RGBA8 buffers to a new size.
//
// It is the default dimension reconciler for the compositor. Scaling is
// delegated to golang.org/x/image/draw; this package only adapts raw pixel
// slices to the image.NRGBA views that package expects and enforces buffer
// sizes on both sides.
package resample

import (
	"fmt"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Kernel selects the interpolation used when scaling.
type Kernel uint8

const (
	// Nearest selects the closest source pixel (no interpolation).
	// Fast and exact for integer upscales; blocky otherwise.
	Nearest Kernel = iota

	// ApproxBilinear is a fast approximation of bilinear filtering.
	ApproxBilinear

	// Bilinear interpolates between the 4 neighboring pixels.
	Bilinear

	// CatmullRom uses a 4x4 cubic kernel. Highest quality, slowest.
	CatmullRom
)

// String returns the kernel name as accepted by ParseKernel.
func (k Kernel) String() string {
	switch k {
	case Nearest:
		return "nearest"
	case ApproxBilinear:
		return "approx-bilinear"
	case Bilinear:
		return "bilinear"
	case CatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

// ParseKernel resolves a kernel name, ignoring case.
// "bicubic" is accepted as an alias for CatmullRom.
func ParseKernel(name string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest", "":
		return Nearest, nil
	case "approx-bilinear":
		return ApproxBilinear, nil
	case "bilinear":
		return Bilinear, nil
	case "catmull-rom", "bicubic":
		return CatmullRom, nil
	default:
		return Nearest, fmt.Errorf("resample: unknown kernel %q", name)
	}
}

// interpolator maps the kernel onto its x/image/draw implementation.
func (k Kernel) interpolator() xdraw.Interpolator {
	switch k {
	case ApproxBilinear:
		return xdraw.ApproxBiLinear
	case Bilinear:
		return xdraw.BiLinear
	case CatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}
