// Package palette maps room-type tags to display colors.
package palette

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFormatError reports an override color that is out of range or
// unparsable. Key names the offending palette key.
type ColorFormatError struct {
	Key string
	Msg string
}

func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("palette: %s: %s", e.Key, e.Msg)
}

// RGB is a color with each channel in [0,1].
type RGB struct {
	R, G, B float64
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

// Palette maps lower-cased room-type tags to colors. Every palette built
// by this package carries a "default" entry used for unknown tags and a
// "floor" entry used for the floor mesh.
type Palette map[string]RGB

// builtin is the fixed default palette. Never returned directly; Merge
// and Default hand out copies.
var builtin = Palette{
	"bedroom":        {R: 1.0, G: 0.8, B: 0.8},     // #ffcccc
	"master_bedroom": {R: 1.0, G: 0.702, B: 0.702}, // #ffb3b3
	"kitchen":        {R: 1.0, G: 1.0, B: 0.6},     // #ffff99
	"bathroom":       {R: 0.702, G: 0.878, B: 1.0}, // #b3e0ff
	"toilet":         {R: 0.702, G: 0.878, B: 1.0}, // #b3e0ff
	"living_room":    {R: 0.851, G: 1.0, B: 0.851}, // #d9ffd9
	"dining_room":    {R: 0.949, G: 0.902, B: 0.78}, // #f2e6c7
	"hallway":        {R: 0.949, G: 0.949, B: 0.949}, // #f2f2f2
	"balcony":        {R: 0.902, G: 1.0, B: 1.0},   // #e6ffff
	"floor":          {R: 0.851, G: 0.851, B: 0.851}, // #d9d9d9
	"default":        {R: 0.902, G: 0.902, B: 0.902}, // #e6e6e6
}

// Default returns a fresh copy of the built-in palette.
func Default() Palette {
	p := make(Palette, len(builtin))
	for k, v := range builtin {
		p[k] = v
	}
	return p
}

// Merge applies overrides on top of the built-in palette, key by key.
// Keys are lower-cased; a channel outside [0,1] is a ColorFormatError.
func Merge(overrides map[string]RGB) (Palette, error) {
	p := Default()
	for k, c := range overrides {
		for _, ch := range [3]float64{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				return nil, &ColorFormatError{Key: k, Msg: fmt.Sprintf("channel %g outside [0,1]", ch)}
			}
		}
		p[strings.ToLower(k)] = c
	}
	return p, nil
}

// MergeHex is Merge for overrides given as hex strings ("#ffcc00"; the
// leading '#' may be omitted).
func MergeHex(overrides map[string]string) (Palette, error) {
	rgb := make(map[string]RGB, len(overrides))
	for k, s := range overrides {
		c, err := ParseHex(k, s)
		if err != nil {
			return nil, err
		}
		rgb[k] = c
	}
	return Merge(rgb)
}

// ParseHex converts a hex color string to RGB; key is only used to tag
// the ColorFormatError on malformed input.
func ParseHex(key, s string) (RGB, error) {
	h := strings.TrimSpace(strings.ToLower(s))
	if h == "" {
		return RGB{}, &ColorFormatError{Key: key, Msg: "empty color"}
	}
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return RGB{}, &ColorFormatError{Key: key, Msg: fmt.Sprintf("invalid hex color %q", s)}
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// Resolve looks up a room-type tag case-insensitively, falling back to
// the palette's default entry for unknown tags.
func (p Palette) Resolve(tag string) RGB {
	if c, ok := p[strings.ToLower(tag)]; ok {
		return c
	}
	return p["default"]
}
