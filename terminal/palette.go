package terminal

// xterm 256 palette layout:
//   0-15    system colors (xterm defaults below)
//   16-231  6x6x6 cube, index = 16 + 36*r + 6*g + b
//   232-255 gray ramp, level = 8 + 10*(index-232)

var systemColors = [16]RGB{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func cube256(r, g, b uint8) uint8 {
	return 16 + 36*min(r, 5) + 6*min(g, 5) + min(b, 5)
}

func gray256(step uint8) uint8 {
	return 232 + min(step, 23)
}

// Palette256 returns the RGB value xterm uses for a palette index
func Palette256(index uint8) RGB {
	switch {
	case index < 16:
		return systemColors[index]
	case index < 232:
		n := index - 16
		return RGB{cubeValues[n/36], cubeValues[(n%36)/6], cubeValues[n%6]}
	default:
		v := 8 + 10*(index-232)
		return RGB{v, v, v}
	}
}
