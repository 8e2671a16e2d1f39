package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/terminal"
)

func styled(f func(s *style.ComputedStyles)) *style.ComputedStyles {
	s := style.New()
	f(&s)
	return &s
}

func newTestRenderer(w, h int) *Renderer {
	return New(w, h, Options{ColorMode: terminal.ColorModeTrueColor})
}

func twoLines(first, second string) *layout.Element {
	return &layout.Element{
		Children: []layout.Element{
			{Tag: "div", Content: first},
			{Tag: "div", Content: second},
		},
	}
}

// assertFrame compares frame text and reports a line diff on mismatch
func assertFrame(t *testing.T, want string, f *Frame) {
	t.Helper()
	if got := f.Text(); got != want {
		t.Errorf("frame mismatch:\n%s", TextDiff(want, got))
	}
}

func TestClippingHiddenOverflow(t *testing.T) {
	el := &layout.Element{
		Children: []layout.Element{{
			Style: styled(func(s *style.ComputedStyles) {
				s.Width = style.Cells(5)
				s.Overflow = style.Overflow{X: style.OverflowHidden, Y: style.OverflowHidden}
			}),
			Children: []layout.Element{{Tag: "div", Content: "HELLOWORLD"}},
		}},
	}
	r := newTestRenderer(20, 2)
	l := r.Layout(el)

	out := ansi.Strip(string(r.RenderOffscreen(l)))
	assert.Contains(t, out, "HELLO")
	assert.NotContains(t, out, "WORLD")
	assertFrame(t, "HELLO\n", r.Compose(l))
}

func TestVisibleOverflowClipsToOwnRect(t *testing.T) {
	el := &layout.Element{
		Children: []layout.Element{{
			Content: "HELLOWORLD",
			Style:   styled(func(s *style.ComputedStyles) { s.Width = style.Cells(5) }),
		}},
	}
	r := newTestRenderer(12, 1)
	l := r.Layout(el)
	require.Len(t, l.Children, 1)
	assert.Equal(t, 5, l.Children[0].Rect.Width)

	assertFrame(t, "HELLO", r.Compose(l))
	assert.NotContains(t, ansi.Strip(string(r.RenderOffscreen(l))), "WORLD")
}

func TestWrappedLinesBelowRectNotPainted(t *testing.T) {
	el := &layout.Element{
		Children: []layout.Element{{
			Content: "HELLO WORLD",
			Style: styled(func(s *style.ComputedStyles) {
				s.Width = style.Cells(5)
				s.Height = style.Cells(1)
				s.Wrap = true
			}),
		}},
	}
	r := newTestRenderer(8, 3)
	assertFrame(t, "HELLO\n\n", r.Compose(r.Layout(el)))
}

func TestOffscreenPurity(t *testing.T) {
	r := newTestRenderer(10, 2)
	l := r.Layout(twoLines("a", "b"))

	off := string(r.RenderOffscreen(l))
	assert.NotContains(t, off, terminal.SeqClear)
	assert.NotContains(t, off, terminal.SeqCursorHide)
	assert.NotContains(t, off, terminal.SeqCursorShow)

	full := string(r.Render(l))
	assert.Contains(t, full, terminal.SeqClear)
	assert.Contains(t, full, terminal.SeqCursorHide)
	assert.Contains(t, full, terminal.SeqCursorShow)
}

func TestOffscreenLeavesBaseline(t *testing.T) {
	r := newTestRenderer(10, 2)
	l1 := r.Layout(twoLines("one", "two"))
	l2 := r.Layout(twoLines("three", "four"))

	require.NotEmpty(t, r.RenderDiff(l1))
	r.RenderOffscreen(l2)
	assert.Empty(t, r.RenderDiff(l1))
	assert.Equal(t, terminal.StateDiffing, r.State())
}

func TestRenderDiffIdempotent(t *testing.T) {
	r := newTestRenderer(12, 3)
	l := r.Layout(twoLines("hello", "world"))

	first := string(r.RenderDiff(l))
	assert.Contains(t, first, terminal.SeqClear)
	assert.Equal(t, terminal.StateBaseline, r.State())

	assert.Empty(t, r.RenderDiff(l))
	assert.Equal(t, terminal.StateDiffing, r.State())
}

func TestResizeForcesRepaint(t *testing.T) {
	r := newTestRenderer(12, 3)
	l := r.Layout(twoLines("hello", "world"))
	r.RenderDiff(l)
	r.RenderDiff(l)

	r.OnResize(12, 3)
	assert.Equal(t, terminal.StateUninitialized, r.State())
	assert.Contains(t, string(r.RenderDiff(l)), terminal.SeqClear)

	r.OnResize(20, 5)
	w, h := r.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)
	assert.Contains(t, string(r.RenderDiff(r.Layout(twoLines("hello", "world")))), terminal.SeqClear)
}

func TestMinimalMultiRowDiff(t *testing.T) {
	r := newTestRenderer(8, 2)
	r.RenderDiff(r.Layout(twoLines("line one", "line two")))

	out := string(r.RenderDiff(r.Layout(twoLines("line one", "line 2!!"))))
	assert.Contains(t, out, "\x1b[2;")
	assert.NotContains(t, out, terminal.SeqClear)
	assert.Equal(t, "2!!", ansi.Strip(out))
}

func TestShorterTextErasesTail(t *testing.T) {
	r := newTestRenderer(6, 1)
	r.RenderDiff(r.Layout(twoLines("abcdef", "")))

	out := string(r.RenderDiff(r.Layout(twoLines("ab", ""))))
	assert.Equal(t, "    ", ansi.Strip(out))
}

func TestInteractiveDiffHidesCursor(t *testing.T) {
	r := New(6, 1, Options{ColorMode: terminal.ColorModeTrueColor, Interactive: true})
	r.RenderDiff(r.Layout(twoLines("ab", "")))

	out := string(r.RenderDiff(r.Layout(twoLines("ac", ""))))
	assert.True(t, strings.HasPrefix(out, terminal.SeqCursorHide))
	assert.True(t, strings.HasSuffix(out, terminal.SeqCursorShow))
}

func TestAttributeOnlyChangeIsDetected(t *testing.T) {
	r := newTestRenderer(4, 1)
	plain := &layout.Element{Tag: "div", Content: "ok"}
	bold := &layout.Element{Tag: "div", Content: "ok", Style: styled(func(s *style.ComputedStyles) {
		s.Attrs = terminal.AttrBold
	})}

	r.RenderDiff(r.Layout(plain))
	out := string(r.RenderDiff(r.Layout(bold)))
	assert.Contains(t, out, "\x1b[0;1m")
	assert.Equal(t, "ok", ansi.Strip(out))
}

func TestColorMode256Output(t *testing.T) {
	r := New(3, 1, Options{ColorMode: terminal.ColorMode256})
	el := &layout.Element{Content: "x", Style: styled(func(s *style.ComputedStyles) {
		s.Fg = style.RGB(terminal.RGB{R: 255})
	})}
	out := string(r.RenderOffscreen(r.Layout(el)))
	assert.Contains(t, out, "38;5;196")
	assert.NotContains(t, out, "38;2;")
}

func TestWideGlyphClippedAtEdge(t *testing.T) {
	el := &layout.Element{
		Children: []layout.Element{{
			Style: styled(func(s *style.ComputedStyles) {
				s.Width = style.Cells(3)
				s.Overflow = style.Overflow{X: style.OverflowHidden}
			}),
			Children: []layout.Element{{Tag: "div", Content: "ab世"}},
		}},
	}
	r := newTestRenderer(6, 1)
	f := r.Compose(r.Layout(el))

	assert.Equal(t, "ab    ", f.Lines()[0])
	assert.Equal(t, uint8(1), f.At(2, 0).Width)
	assert.NotContains(t, ansi.Strip(string(r.RenderOffscreen(r.Layout(el)))), "世")
}

func TestWideGlyphPaintsContinuation(t *testing.T) {
	r := newTestRenderer(5, 1)
	f := r.Compose(r.Layout(&layout.Element{Tag: "div", Content: "ab世"}))

	assert.Equal(t, "ab世 ", f.Lines()[0])
	assert.Equal(t, uint8(2), f.At(2, 0).Width)
	assert.True(t, f.At(3, 0).IsContinuation())
}

func TestBorderAndBackground(t *testing.T) {
	red := terminal.RGB{R: 200}
	el := &layout.Element{Style: styled(func(s *style.ComputedStyles) {
		s.BorderStyle = style.BorderSingle
		s.Bg = style.RGB(red)
	})}
	r := newTestRenderer(4, 3)
	f := r.Compose(r.Layout(el))

	assertFrame(t, "┌──┐\n│  │\n└──┘", f)
	inner := f.At(1, 1)
	assert.Equal(t, red, inner.Bg)
	assert.Zero(t, inner.Attrs&terminal.AttrBgDefault)
	assert.Equal(t, red, f.At(0, 0).Bg, "border keeps the node background")
}

func TestChildrenPaintOverParentBackground(t *testing.T) {
	blue := terminal.RGB{B: 200}
	el := &layout.Element{
		Style:    styled(func(s *style.ComputedStyles) { s.Bg = style.RGB(blue) }),
		Children: []layout.Element{{Tag: "div", Content: "hi"}},
	}
	r := newTestRenderer(4, 2)
	f := r.Compose(r.Layout(el))

	assert.Equal(t, "h", f.At(0, 0).Glyph)
	assert.Equal(t, blue, f.At(0, 0).Bg, "text keeps the background underneath")
	assert.Equal(t, blue, f.At(3, 1).Bg)
}

func TestInheritedForegroundAndAttrs(t *testing.T) {
	gold := terminal.RGB{R: 255, G: 215}
	el := &layout.Element{
		Style: styled(func(s *style.ComputedStyles) {
			s.Fg = style.RGB(gold)
			s.Attrs = terminal.AttrBold
		}),
		Children: []layout.Element{{Tag: "div", Content: "x"}},
	}
	r := newTestRenderer(2, 1)
	c := r.Compose(r.Layout(el)).At(0, 0)

	assert.Equal(t, gold, c.Fg)
	assert.NotZero(t, c.Attrs&terminal.AttrBold)
	assert.Zero(t, c.Attrs&terminal.AttrFgDefault)
}

func TestChildClearsInheritedAttrs(t *testing.T) {
	el := &layout.Element{
		Style: styled(func(s *style.ComputedStyles) { s.Attrs = terminal.AttrBold | terminal.AttrUnderline }),
		Children: []layout.Element{
			{Content: "a", Style: styled(func(s *style.ComputedStyles) { s.AttrsSet = true })},
			{Content: "b", Style: styled(func(s *style.ComputedStyles) {
				s.Attrs = terminal.AttrItalic
				s.AttrsSet = true
			})},
			{Tag: "div", Content: "c"},
		},
	}
	r := newTestRenderer(2, 3)
	f := r.Compose(r.Layout(el))

	assert.Zero(t, f.At(0, 0).Attrs&terminal.AttrStyle)
	assert.Equal(t, terminal.AttrItalic, f.At(0, 1).Attrs&terminal.AttrStyle)
	assert.Equal(t, terminal.AttrBold|terminal.AttrUnderline, f.At(0, 2).Attrs&terminal.AttrStyle)
}

func TestMissingStylesUseTableDefault(t *testing.T) {
	tbl := style.NewTable(style.New(), map[string]style.ComputedStyles{
		"warn": *styled(func(s *style.ComputedStyles) {
			s.Fg = style.RGB(terminal.RGB{R: 250, G: 100})
			s.Attrs = terminal.AttrUnderline
		}),
	})
	r := New(4, 1, Options{ColorMode: terminal.ColorModeTrueColor, Table: tbl})

	// Hand-built node with no resolved styles
	l := &layout.Layout{Tag: "warn", Content: "hi", Rect: layout.Rect{Width: 4, Height: 1}}
	c := r.Compose(l).At(0, 0)
	assert.Equal(t, terminal.RGB{R: 250, G: 100}, c.Fg)
	assert.NotZero(t, c.Attrs&terminal.AttrUnderline)
}

func TestTextAlign(t *testing.T) {
	r := newTestRenderer(6, 2)
	el := &layout.Element{Children: []layout.Element{
		{Content: "ab", Style: styled(func(s *style.ComputedStyles) { s.TextAlign = style.TextRight })},
		{Content: "ab", Style: styled(func(s *style.ComputedStyles) { s.TextAlign = style.TextCenter })},
	}}
	f := r.Compose(r.Layout(el))
	assert.Equal(t, []string{"    ab", "  ab  "}, f.Lines())
}

func TestScrollOffsets(t *testing.T) {
	r := newTestRenderer(3, 2)
	el := &layout.Element{Content: "abc\ndef\nghi", Style: styled(func(s *style.ComputedStyles) {
		s.Overflow = style.Overflow{X: style.OverflowScroll, Y: style.OverflowScroll}
		s.ScrollY = 1
		s.ScrollX = 1
	})}
	assertFrame(t, "ef\nhi", r.Compose(r.Layout(el)))
}

func TestDisplayNoneNotPainted(t *testing.T) {
	r := newTestRenderer(6, 1)
	el := &layout.Element{Children: []layout.Element{
		{Tag: "hidden", Content: "secret"},
		{Tag: "div", Content: "shown"},
	}}
	assertFrame(t, "shown", r.Compose(r.Layout(el)))
}

func TestFlushPropagatesSinkError(t *testing.T) {
	r := newTestRenderer(2, 1)
	sink := terminal.NewCaptureSink()

	require.NoError(t, r.Flush(sink, nil))
	assert.Empty(t, sink.Frames(), "empty buffers are not written")

	boom := errors.New("disk on fire")
	sink.FailWith(boom)
	err := r.Flush(sink, []byte("x"))
	assert.ErrorIs(t, err, boom)

	sink.FailWith(nil)
	sink.Close()
	assert.ErrorIs(t, r.Flush(sink, []byte("x")), terminal.ErrSinkClosed)
}

func TestFailedFlushForcesRepaint(t *testing.T) {
	r := newTestRenderer(8, 2)
	sink := terminal.NewCaptureSink()
	l1 := r.Layout(twoLines("one", "two"))
	l2 := r.Layout(twoLines("one", "three"))

	require.NoError(t, r.Flush(sink, r.RenderDiff(l1)))

	sink.FailWith(errors.New("resource temporarily unavailable"))
	require.Error(t, r.Flush(sink, r.RenderDiff(l2)))
	assert.Equal(t, terminal.StateUninitialized, r.State())

	sink.FailWith(nil)
	retry := r.RenderDiff(l2)
	require.NotEmpty(t, retry)
	assert.Contains(t, string(retry), terminal.SeqClear)
	require.NoError(t, r.Flush(sink, retry))
	text := ansi.Strip(string(sink.Last()))
	assert.Contains(t, text, "one")
	assert.Contains(t, text, "three")
}

func TestPaintNilLayout(t *testing.T) {
	r := newTestRenderer(3, 1)
	assertFrame(t, "", r.Compose(nil))
}
