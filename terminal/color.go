package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the config spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a config value; "auto" and unknown values fall back to detection
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Cube channel levels for palette indices 16-231
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps a channel value to its nearest cube level
var cubeIndex [256]uint8

func init() {
	for v := range cubeIndex {
		best := 0
		for j := 1; j < len(cubeValues); j++ {
			if abs(v-int(cubeValues[j])) < abs(v-int(cubeValues[best])) {
				best = j
			}
		}
		cubeIndex[v] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func dist(a, b RGB) int {
	return abs(int(a.R)-int(b.R)) + abs(int(a.G)-int(b.G)) + abs(int(a.B)-int(b.B))
}

// RGBTo256 returns the nearest cube or gray-ramp palette index.
// System colors 0-15 are never chosen since terminals remap them.
func RGBTo256(c RGB) uint8 {
	cube := cube256(cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B])

	r, g, b := int(c.R), int(c.G), int(c.B)
	avg := (r + g + b) / 3
	if max(abs(r-avg), abs(g-avg), abs(b-avg)) >= 10 || avg < 4 || avg > 243 {
		return cube
	}

	gray := gray256(uint8(max(avg-8, 0) / 10))
	if dist(c, Palette256(gray)) < dist(c, Palette256(cube)) {
		return gray
	}
	return cube
}

// Environment markers of terminals known to render 24-bit color
var trueColorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"ALACRITTY_LOG",
	"WEZTERM_PANE",
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	for _, key := range trueColorEnv {
		if os.Getenv(key) != "" {
			return ColorModeTrueColor
		}
	}
	termName := strings.ToLower(os.Getenv("TERM"))
	for _, hint := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(termName, hint) {
			return ColorModeTrueColor
		}
	}
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}
