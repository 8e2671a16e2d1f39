package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termframe/terminal"
)

func TestSizeResolve(t *testing.T) {
	n, ok := Cells(12).Resolve(100)
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	n, ok = Percent(33).Resolve(40)
	assert.True(t, ok)
	assert.Equal(t, 13, n, "percent floors")

	_, ok = Auto().Resolve(40)
	assert.False(t, ok)

	n, _ = Cells(-4).Resolve(10)
	assert.Equal(t, 0, n, "negative sizes clamp to zero")
}

func TestBorderWidthsDefaultToOneWithStyle(t *testing.T) {
	s := New()
	assert.Equal(t, Spacing{}, s.BorderWidths())

	s.BorderStyle = BorderSingle
	assert.Equal(t, Uniform(1), s.BorderWidths())

	s.Border = Spacing{Top: 1, Bottom: 1}
	assert.Equal(t, Spacing{Top: 1, Bottom: 1}, s.BorderWidths())

	s.Padding = Spacing{Left: 2, Right: -3}
	assert.Equal(t, Spacing{Top: 1, Bottom: 1, Left: 2}, s.Inset())
}

func TestClampMinMax(t *testing.T) {
	s := New()
	s.MinWidth = 5
	s.MaxWidth = 10
	assert.Equal(t, 5, s.ClampWidth(2))
	assert.Equal(t, 10, s.ClampWidth(30))
	assert.Equal(t, 7, s.ClampWidth(7))

	s.MinHeight = 0
	s.MaxHeight = 0
	assert.Equal(t, 0, s.ClampHeight(-3))
	assert.Equal(t, 500, s.ClampHeight(500))
}

func TestCloneIsDeep(t *testing.T) {
	s := New()
	s.Columns = []Track{Fr(1), FixedTrack(4)}
	c := s.Clone()
	c.Columns[0] = Fr(9)
	assert.Equal(t, Fr(1), s.Columns[0])
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"", Color{}},
		{"default", DefaultColor()},
		{"#ff8000", RGB(terminal.RGB{R: 255, G: 128, B: 0})},
		{"#0f0", RGB(terminal.RGB{R: 0, G: 255, B: 0})},
		{"red", RGB(terminal.RGB{R: 255, G: 0, B: 0})},
		{"Navy", RGB(terminal.RGB{R: 0, G: 0, B: 128})},
		{"196", RGB(terminal.RGB{R: 255, G: 0, B: 0})},
		{"244", RGB(terminal.RGB{R: 128, G: 128, B: 128})},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColor("not-a-color")
	assert.Error(t, err)
	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("256")
	assert.Error(t, err)
}

func TestParseTracks(t *testing.T) {
	tracks, err := ParseTracks("1fr 20 fr 3fr")
	require.NoError(t, err)
	assert.Equal(t, []Track{Fr(1), FixedTrack(20), Fr(1), Fr(3)}, tracks)

	_, err = ParseTracks("1fr x")
	assert.Error(t, err)
}

func TestParseSizeAndSpacing(t *testing.T) {
	sz, err := ParseSize("50%")
	require.NoError(t, err)
	assert.Equal(t, Percent(50), sz)

	sz, err = ParseSize("auto")
	require.NoError(t, err)
	assert.True(t, sz.IsAuto())

	sp, err := ParseSpacing("1 2")
	require.NoError(t, err)
	assert.Equal(t, Spacing{Top: 1, Right: 2, Bottom: 1, Left: 2}, sp)

	_, err = ParseSpacing("1 2 3")
	assert.Error(t, err)
}

func TestParseKeywords(t *testing.T) {
	d, err := ParseDisplay("Grid")
	require.NoError(t, err)
	assert.Equal(t, DisplayGrid, d)

	b, err := ParseBorderStyle("rounded")
	require.NoError(t, err)
	assert.Equal(t, BorderRounded, b)

	a, err := ParseAttrs([]string{"bold", "underline"})
	require.NoError(t, err)
	assert.Equal(t, terminal.AttrBold|terminal.AttrUnderline, a)

	_, err = ParseAttr("sparkly")
	assert.Error(t, err)
}

func TestTableLookupAndResolve(t *testing.T) {
	tbl := DefaultTable()

	assert.Equal(t, DisplayFlex, tbl.Lookup("row").Display)
	assert.Equal(t, DisplayBlock, tbl.Lookup("no-such-tag").Display)
	assert.True(t, tbl.Has("panel"))
	assert.Contains(t, tbl.Tags(), "grid")

	explicit := New()
	explicit.Display = DisplayGrid
	assert.Equal(t, DisplayGrid, tbl.Resolve("row", &explicit).Display)
	assert.Equal(t, DisplayFlex, tbl.Resolve("row", nil).Display)
}

func TestTableIsIsolated(t *testing.T) {
	tags := map[string]ComputedStyles{"box": New()}
	tbl := NewTable(New(), tags)

	changed := New()
	changed.Display = DisplayCenter
	tags["box"] = changed
	assert.Equal(t, DisplayBlock, tbl.Lookup("box").Display, "table copies its input map")

	clone := tbl.Clone()
	clone.Set("box", changed)
	assert.Equal(t, DisplayBlock, tbl.Lookup("box").Display)
	assert.Equal(t, DisplayCenter, clone.Lookup("box").Display)
}

func TestNilTableFallsBack(t *testing.T) {
	var tbl *Table
	assert.Equal(t, New(), tbl.Lookup("div"))
	assert.Nil(t, tbl.Tags())
}

func TestIsZero(t *testing.T) {
	var s ComputedStyles
	assert.True(t, s.IsZero())
	n := New()
	assert.False(t, n.IsZero(), "New enables shrink")
}
