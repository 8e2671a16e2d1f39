package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termframe/terminal"
)

func intp(n int) *int    { return &n }
func boolp(b bool) *bool { return &b }

func TestSpecApplyLayersOverBase(t *testing.T) {
	base := DefaultTable().Lookup("header")
	sp := &Spec{
		Display:  "flex",
		Grow:     intp(2),
		Columns:  "10 1fr",
		Overflow: "hidden scroll",
		Padding:  "0 1",
		Border:   "double",
		Width:    "50%",
		Bg:       "#102030",
		Bold:     boolp(false),
		Italic:   boolp(true),
		Wrap:     boolp(true),
	}

	s, err := sp.Apply(base)
	require.NoError(t, err)

	assert.Equal(t, DisplayFlex, s.Display)
	assert.Equal(t, 2, s.Grow)
	assert.Equal(t, []Track{FixedTrack(10), Fr(1)}, s.Columns)
	assert.Equal(t, Overflow{X: OverflowHidden, Y: OverflowScroll}, s.Overflow)
	assert.Equal(t, Spacing{Right: 1, Left: 1}, s.Padding)
	assert.Equal(t, BorderDouble, s.BorderStyle)
	assert.Equal(t, Percent(50), s.Width)
	assert.Equal(t, RGB(terminal.RGB{R: 0x10, G: 0x20, B: 0x30}), s.Bg)
	assert.Equal(t, terminal.AttrItalic, s.Attrs)
	assert.True(t, s.Wrap)

	// Untouched fields keep the base value
	assert.Equal(t, base.Fg, s.Fg)
	assert.Equal(t, base.Shrink, s.Shrink)
}

func TestSpecApplyNil(t *testing.T) {
	var sp *Spec
	s, err := sp.Apply(New())
	require.NoError(t, err)
	assert.Equal(t, New(), s)
}

func TestSpecApplyCollectsErrors(t *testing.T) {
	sp := &Spec{Display: "table", Fg: "notacolor", Overflow: "a b c"}
	s, err := sp.Apply(New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display")
	assert.Contains(t, err.Error(), "fg")
	assert.Contains(t, err.Error(), "overflow")
	assert.Equal(t, New(), s, "base returned unchanged on error")
}

func TestSpecAttrList(t *testing.T) {
	s, err := (&Spec{Attrs: []string{"bold", "strike"}, Underline: boolp(true)}).Apply(New())
	require.NoError(t, err)
	assert.Equal(t, terminal.AttrBold|terminal.AttrStrike|terminal.AttrUnderline, s.Attrs)
}

func TestSpecAttrsReplaceInherited(t *testing.T) {
	s, err := (&Spec{Attrs: []string{"none"}}).Apply(New())
	require.NoError(t, err)
	assert.Zero(t, s.Attrs)
	assert.True(t, s.AttrsSet)

	s, err = (&Spec{Bold: boolp(false)}).Apply(New())
	require.NoError(t, err)
	assert.Zero(t, s.Attrs)
	assert.True(t, s.AttrsSet)

	s, err = (&Spec{Fg: "red"}).Apply(New())
	require.NoError(t, err)
	assert.False(t, s.AttrsSet, "styles without attributes keep inheriting")
}
