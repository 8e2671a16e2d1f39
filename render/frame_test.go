package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/termframe/terminal"
)

func wide(g string) terminal.Cell {
	return terminal.Cell{Glyph: g, Width: 2, Attrs: terminal.AttrDefaultColors}
}

func narrow(g string) terminal.Cell {
	return terminal.Cell{Glyph: g, Width: 1, Attrs: terminal.AttrDefaultColors}
}

func TestNewFrameIsBlank(t *testing.T) {
	f := NewFrame(3, 2)
	assert.Len(t, f.Cells, 6)
	for _, c := range f.Cells {
		assert.Equal(t, terminal.BlankCell, c)
	}
	assert.Equal(t, []string{"   ", "   "}, f.Lines())
	assert.Equal(t, "\n", f.Text())

	assert.Empty(t, NewFrame(-1, 4).Cells)
}

func TestFrameWideGlyphReservesContinuation(t *testing.T) {
	f := NewFrame(4, 1)
	f.Set(1, 0, wide("世"))

	assert.Equal(t, uint8(2), f.At(1, 0).Width)
	assert.True(t, f.At(2, 0).IsContinuation())
	assert.Equal(t, " 世 ", f.Lines()[0])
}

func TestFrameOverwriteContinuationBlanksLead(t *testing.T) {
	f := NewFrame(4, 1)
	f.Set(1, 0, wide("世"))
	f.Set(2, 0, narrow("x"))

	assert.Equal(t, " ", f.At(1, 0).Glyph)
	assert.Equal(t, uint8(1), f.At(1, 0).Width)
	assert.Equal(t, "  x ", f.Lines()[0])
}

func TestFrameOverwriteLeadBlanksContinuation(t *testing.T) {
	f := NewFrame(4, 1)
	f.Set(1, 0, wide("世"))
	f.Set(1, 0, narrow("y"))

	assert.False(t, f.At(2, 0).IsContinuation())
	assert.Equal(t, " y  ", f.Lines()[0])
}

func TestFrameWideOverlappingWide(t *testing.T) {
	f := NewFrame(5, 1)
	f.Set(2, 0, wide("界"))
	f.Set(1, 0, wide("世"))

	assert.Equal(t, " 世  ", f.Lines()[0])
	assert.False(t, f.At(3, 0).IsContinuation(), "old continuation is blanked")
}

func TestFrameWideAtRightEdgeBecomesBlank(t *testing.T) {
	f := NewFrame(3, 1)
	f.Set(2, 0, wide("世"))
	assert.Equal(t, "   ", f.Lines()[0])
	assert.Equal(t, uint8(1), f.At(2, 0).Width)
}

func TestFrameIgnoresOutOfBounds(t *testing.T) {
	f := NewFrame(2, 2)
	f.Set(-1, 0, narrow("x"))
	f.Set(0, 5, narrow("x"))
	f.Set(0, 0, terminal.Cell{Width: 0})
	assert.Equal(t, "\n", f.Text())
	assert.Equal(t, terminal.BlankCell, f.At(9, 9))
}

func TestChangedCells(t *testing.T) {
	a := NewFrame(3, 1)
	b := NewFrame(3, 1)
	assert.Equal(t, 0, ChangedCells(a, b))

	b.Set(0, 0, narrow("z"))
	assert.Equal(t, 1, ChangedCells(a, b))
	assert.Equal(t, 4, ChangedCells(NewFrame(1, 1), NewFrame(2, 2)))
}

func TestTextDiff(t *testing.T) {
	assert.Empty(t, TextDiff("a\nb", "a\nb"))

	d := TextDiff("same\nold\n", "same\nnew\n")
	assert.Contains(t, d, "  same\n")
	assert.Contains(t, d, "- old\n")
	assert.Contains(t, d, "+ new\n")
}
