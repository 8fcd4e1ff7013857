package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/composite"
	"github.com/gogpu/composite/internal/image"
)

// layerDef describes one layer on the command line or in a manifest.
// Exactly one of Path and Color is set.
type layerDef struct {
	Path      string   `json:"path,omitempty"`
	Color     string   `json:"color,omitempty"`
	Width     int      `json:"width,omitempty"`
	Height    int      `json:"height,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty"`
	BlendMode string   `json:"blend_mode,omitempty"`
}

// parseLayerArg parses "path[,opacity=v][,mode=m]" or
// "solid:#rrggbb[@a]:WxH[,opacity=v][,mode=m]".
func parseLayerArg(s string) (layerDef, error) {
	parts := strings.Split(s, ",")
	src := parts[0]
	if src == "" {
		return layerDef{}, fmt.Errorf("layer %q: missing source", s)
	}

	var def layerDef
	if rest, ok := strings.CutPrefix(src, "solid:"); ok {
		col, size, ok := strings.Cut(rest, ":")
		if !ok {
			return layerDef{}, fmt.Errorf("layer %q: want solid:#rrggbb:WxH", s)
		}
		w, h, err := parseSize(size)
		if err != nil {
			return layerDef{}, fmt.Errorf("layer %q: %w", s, err)
		}
		def.Color, def.Width, def.Height = col, w, h
	} else {
		def.Path = src
	}

	for _, kv := range parts[1:] {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return layerDef{}, fmt.Errorf("layer %q: option %q is not key=value", s, kv)
		}
		switch key {
		case "opacity":
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return layerDef{}, fmt.Errorf("layer %q: opacity: %w", s, err)
			}
			def.Opacity = &v
		case "mode":
			def.BlendMode = val
		default:
			return layerDef{}, fmt.Errorf("layer %q: unknown option %q", s, key)
		}
	}
	return def, nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: must be positive", s)
	}
	return w, h, nil
}

// readManifest loads a JSON array of layer definitions.
func readManifest(path string) ([]layerDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var defs []layerDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return defs, nil
}

var errNoSource = errors.New("layer needs exactly one of path or color")

// load turns a definition into a compositor input, decoding the image file or
// filling the solid colour.
func (s layerDef) load() (composite.LayerInput, error) {
	in := composite.LayerInput{Opacity: s.Opacity, BlendMode: s.BlendMode}

	switch {
	case (s.Path == "") == (s.Color == ""):
		return composite.LayerInput{}, errNoSource

	case s.Color != "":
		c, err := composite.ParseHexColor(s.Color)
		if err != nil {
			return composite.LayerInput{}, err
		}
		if s.Width <= 0 || s.Height <= 0 {
			return composite.LayerInput{}, fmt.Errorf("solid %s: size %dx%d must be positive", s.Color, s.Width, s.Height)
		}
		in.Data = composite.SolidLayer(s.Width, s.Height, c)
		in.Width, in.Height = s.Width, s.Height

	default:
		buf, err := image.LoadImage(s.Path)
		if err != nil {
			return composite.LayerInput{}, err
		}
		in.Data = buf.Data()
		in.Width, in.Height = buf.Width(), buf.Height()
	}
	return in, nil
}
