package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termframe/terminal"
)

// ColorKind distinguishes unset, terminal default, and explicit colors
type ColorKind uint8

const (
	ColorUnset   ColorKind = iota // inherit
	ColorDefault                  // terminal default (SGR 39/49)
	ColorRGB
)

// Color is a paint color with an inherit state
type Color struct {
	Kind ColorKind
	RGB  terminal.RGB
}

// RGB returns an explicit color
func RGB(c terminal.RGB) Color {
	return Color{Kind: ColorRGB, RGB: c}
}

// DefaultColor returns the terminal's own default color
func DefaultColor() Color {
	return Color{Kind: ColorDefault}
}

// IsSet reports whether the color overrides inheritance
func (c Color) IsSet() bool {
	return c.Kind != ColorUnset
}

// Or returns c if set, otherwise fallback
func (c Color) Or(fallback Color) Color {
	if c.IsSet() {
		return c
	}
	return fallback
}

func (c Color) String() string {
	switch c.Kind {
	case ColorDefault:
		return "default"
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return ""
	}
}

// ParseColor accepts "", "default", #rgb, #rrggbb, a 256-palette index, or any W3C/X11 color name
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "inherit":
		return Color{}, nil
	case "default", "reset":
		return DefaultColor(), nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("palette index %d out of range", n)
		}
		return RGB(terminal.Palette256(uint8(n))), nil
	}

	tc := tcell.GetColor(s)
	if tc == tcell.ColorDefault || !tc.Valid() {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return Color{}, fmt.Errorf("color %q has no rgb value", s)
	}
	return RGB(terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}), nil
}

func parseHex(h string) (Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color #%s: %w", h, err)
	}
	return RGB(terminal.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}), nil
}
