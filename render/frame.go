package render

import (
	"strings"

	"github.com/lixenwraith/termframe/terminal"
)

// Frame is a row-major grid of cells sized to the output surface
// The compositor builds a fresh one per render; the diff engine copies it into its baseline
type Frame struct {
	Cells  []terminal.Cell
	Width  int
	Height int
}

// NewFrame creates a blank frame; negative sizes become zero
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{
		Cells:  make([]terminal.Cell, width*height),
		Width:  width,
		Height: height,
	}
	f.Clear()
	return f
}

// Clear resets all cells to blanks using exponential copy
func (f *Frame) Clear() {
	if len(f.Cells) == 0 {
		return
	}
	f.Cells[0] = terminal.BlankCell
	for filled := 1; filled < len(f.Cells); filled *= 2 {
		copy(f.Cells[filled:], f.Cells[:filled])
	}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// At returns the cell at (x, y); out of range yields a blank
func (f *Frame) At(x, y int) terminal.Cell {
	if !f.inBounds(x, y) {
		return terminal.BlankCell
	}
	return f.Cells[y*f.Width+x]
}

// Set writes one cell and keeps wide glyphs whole
// Overwriting either half of a wide glyph blanks the other half.
// A wide glyph that does not fit before the right edge is written as a blank
func (f *Frame) Set(x, y int, c terminal.Cell) {
	if !f.inBounds(x, y) {
		return
	}
	if c.Width == 2 && x+1 >= f.Width {
		c = blankLike(c)
	}
	if c.Width == 0 {
		// Continuations are only placed by their lead
		return
	}

	idx := y*f.Width + x
	f.breakWide(x, y)
	if c.Width == 2 {
		f.breakWide(x+1, y)
	}

	f.Cells[idx] = c
	if c.Width == 2 {
		cont := c
		cont.Glyph = ""
		cont.Width = 0
		f.Cells[idx+1] = cont
	}
}

// breakWide blanks the partner of a wide glyph half at (x, y) before it is overwritten
func (f *Frame) breakWide(x, y int) {
	idx := y*f.Width + x
	old := f.Cells[idx]
	switch {
	case old.IsContinuation() && x > 0:
		f.Cells[idx-1] = blankLike(f.Cells[idx-1])
	case old.Width == 2 && x+1 < f.Width:
		f.Cells[idx+1] = blankLike(f.Cells[idx+1])
	}
}

// blankLike returns a space carrying c's colors and attributes
func blankLike(c terminal.Cell) terminal.Cell {
	c.Glyph = " "
	c.Width = 1
	return c
}

// SetBg recolors the background of (x, y), keeping its glyph
func (f *Frame) SetBg(x, y int, bg terminal.RGB, isDefault bool) {
	if !f.inBounds(x, y) {
		return
	}
	idx := y*f.Width + x
	setBg(&f.Cells[idx], bg, isDefault)
}

func setBg(c *terminal.Cell, bg terminal.RGB, isDefault bool) {
	c.Bg = bg
	c.Attrs &^= terminal.AttrBg256
	if isDefault {
		c.Attrs |= terminal.AttrBgDefault
	} else {
		c.Attrs &^= terminal.AttrBgDefault
	}
}

// Lines returns the glyphs of each row as plain text, continuation cells skipped
func (f *Frame) Lines() []string {
	lines := make([]string, f.Height)
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		b.Reset()
		row := f.Cells[y*f.Width : (y+1)*f.Width]
		for _, c := range row {
			if c.IsContinuation() {
				continue
			}
			b.WriteString(c.Glyph)
		}
		lines[y] = b.String()
	}
	return lines
}

// Text returns all rows joined by newlines with trailing spaces trimmed
func (f *Frame) Text() string {
	lines := f.Lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
