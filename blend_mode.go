package composite

import (
	"golang.org/x/text/cases"

	"github.com/gogpu/composite/internal/blend"
)

// BlendMode selects how a layer's colour mixes with the colour beneath it.
// Alpha is always combined with the "over" operator, whatever the mode.
type BlendMode = blend.Mode

// Supported blend modes.
const (
	BlendOver     = blend.ModeOver
	BlendMultiply = blend.ModeMultiply
	BlendScreen   = blend.ModeScreen
	BlendAdd      = blend.ModeAdd
)

// ParseBlendMode resolves a blend-mode identifier, ignoring case.
//
// "multiply", "screen", "add" and "plus" are recognized. Anything else,
// including the empty string, resolves to BlendOver. ParseBlendMode never
// fails.
func ParseBlendMode(s string) BlendMode {
	switch cases.Fold().String(s) {
	case "multiply":
		return BlendMultiply
	case "screen":
		return BlendScreen
	case "add", "plus":
		return BlendAdd
	default:
		return BlendOver
	}
}
