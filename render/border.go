package render

import "github.com/lixenwraith/termframe/style"

// boxChars contains box drawing glyph sets indexed by style.BorderStyle
var boxChars = [...][6]string{
	style.BorderNone:    {" ", " ", " ", " ", " ", " "},
	style.BorderSingle:  {"┌", "─", "┐", "│", "└", "┘"},
	style.BorderDouble:  {"╔", "═", "╗", "║", "╚", "╝"},
	style.BorderRounded: {"╭", "─", "╮", "│", "╰", "╯"},
	style.BorderHeavy:   {"┏", "━", "┓", "┃", "┗", "┛"},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// borderGlyphs returns the glyph set for b, single for unknown values
func borderGlyphs(b style.BorderStyle) [6]string {
	if int(b) >= len(boxChars) {
		return boxChars[style.BorderSingle]
	}
	return boxChars[b]
}
