package render

import (
	"github.com/lixenwraith/termframe/glyph"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/terminal"
)

// Compositor paints layout trees into frames
// Holds no per-frame state; every Paint starts from a fresh Frame
type Compositor struct {
	table   *style.Table
	measure *glyph.Measurer
}

// NewCompositor binds the default style table used for nodes without styles
func NewCompositor(table *style.Table, m *glyph.Measurer) *Compositor {
	if table == nil {
		table = style.DefaultTable()
	}
	if m == nil {
		m = glyph.Default
	}
	return &Compositor{table: table, measure: m}
}

// paint carries inherited paint state down the tree
type paint struct {
	fg    style.Color
	attrs terminal.Attr
	clip  layout.Rect
}

// Paint renders l into a new width×height frame
// Traversal is depth-first pre-order: background and border, then text, then children
func (c *Compositor) Paint(l *layout.Layout, width, height int) *Frame {
	f := NewFrame(width, height)
	if l == nil {
		return f
	}
	root := c.table.Lookup("")
	c.paintNode(f, l, paint{
		fg:    root.Fg.Or(style.DefaultColor()),
		attrs: root.Attrs,
		clip:  layout.Rect{Width: f.Width, Height: f.Height},
	})
	return f
}

// stylesFor substitutes the tag default when a node carries no styles
func (c *Compositor) stylesFor(n *layout.Layout) *style.ComputedStyles {
	if n.Styles.IsZero() {
		st := c.table.Lookup(n.Tag)
		return &st
	}
	return &n.Styles
}

func (c *Compositor) paintNode(f *Frame, n *layout.Layout, in paint) {
	st := c.stylesFor(n)
	if st.Display == style.DisplayNone {
		return
	}

	p := paint{fg: st.Fg.Or(in.fg), attrs: in.attrs, clip: in.clip}
	if st.AttrsSet || st.Attrs&terminal.AttrStyle != 0 {
		p.attrs = st.Attrs & terminal.AttrStyle
	}

	own := n.Rect.Intersect(in.clip)
	if st.Bg.IsSet() {
		c.fill(f, own, st.Bg)
	}
	if st.BorderStyle != style.BorderNone {
		c.border(f, n.Rect, own, st, p)
	}

	// Overflow clips this node's text and its children to the area inside the border
	inner := n.Rect.Inset(st.BorderWidths())
	p.clip = clipAxes(in.clip, inner, st.Overflow)

	if n.Content != "" {
		tp := p
		tp.clip = p.clip.Intersect(n.Rect)
		c.text(f, n, st, tp)
	}
	for _, child := range n.Children {
		c.paintNode(f, child, p)
	}
}

// clipAxes narrows clip to box on each axis whose overflow is not Visible
func clipAxes(clip, box layout.Rect, ov style.Overflow) layout.Rect {
	if ov.X != style.OverflowVisible {
		x0 := max(clip.X, box.X)
		x1 := max(min(clip.Right(), box.Right()), x0)
		clip.X, clip.Width = x0, x1-x0
	}
	if ov.Y != style.OverflowVisible {
		y0 := max(clip.Y, box.Y)
		y1 := max(min(clip.Bottom(), box.Bottom()), y0)
		clip.Y, clip.Height = y0, y1-y0
	}
	return clip
}

func (c *Compositor) fill(f *Frame, r layout.Rect, bg style.Color) {
	isDefault := bg.Kind != style.ColorRGB
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cell := terminal.Cell{Glyph: " ", Width: 1, Attrs: terminal.AttrFgDefault}
			setBg(&cell, bg.RGB, isDefault)
			f.Set(x, y, cell)
		}
	}
}

// border draws the box glyphs on each side of rect that has a border width
func (c *Compositor) border(f *Frame, rect, clip layout.Rect, st *style.ComputedStyles, p paint) {
	if rect.Width < 1 || rect.Height < 1 {
		return
	}
	bw := st.BorderWidths()
	chars := borderGlyphs(st.BorderStyle)
	fg := st.BorderColor.Or(p.fg)

	put := func(x, y int, g string) {
		if clip.Contains(x, y) {
			c.put(f, x, y, g, 1, fg, p.attrs)
		}
	}

	top, bottom := rect.Y, rect.Bottom()-1
	left, right := rect.X, rect.Right()-1

	if bw.Top > 0 {
		for x := left; x <= right; x++ {
			put(x, top, chars[boxH])
		}
	}
	if bw.Bottom > 0 && bottom > top {
		for x := left; x <= right; x++ {
			put(x, bottom, chars[boxH])
		}
	}
	if bw.Left > 0 {
		for y := top; y <= bottom; y++ {
			put(left, y, chars[boxV])
		}
	}
	if bw.Right > 0 && right > left {
		for y := top; y <= bottom; y++ {
			put(right, y, chars[boxV])
		}
	}

	if bw.Top > 0 && bw.Left > 0 {
		put(left, top, chars[boxTL])
	}
	if bw.Top > 0 && bw.Right > 0 && right > left {
		put(right, top, chars[boxTR])
	}
	if bw.Bottom > 0 && bw.Left > 0 && bottom > top {
		put(left, bottom, chars[boxBL])
	}
	if bw.Bottom > 0 && bw.Right > 0 && right > left && bottom > top {
		put(right, bottom, chars[boxBR])
	}
}

// text writes the node's content lines into its content box
// p.clip already includes the node's own rect; lines stop at its edge and a wide
// cluster straddling the edge becomes a blank
func (c *Compositor) text(f *Frame, n *layout.Layout, st *style.ComputedStyles, p paint) {
	box := n.Rect.Inset(st.Inset())
	lines := layout.TextLines(c.measure, n.Content, st, box.Width)

	scrollX, scrollY := 0, 0
	if st.Overflow.X == style.OverflowScroll {
		scrollX = max(st.ScrollX, 0)
	}
	if st.Overflow.Y == style.OverflowScroll {
		scrollY = max(st.ScrollY, 0)
	}
	if scrollY >= len(lines) {
		return
	}
	lines = lines[scrollY:]

	for i, line := range lines {
		y := box.Y + i
		if y < p.clip.Y {
			continue
		}
		if y >= p.clip.Bottom() {
			break
		}

		x := box.X + alignOffset(st.TextAlign, box.Width, c.measure.Width(line)) - scrollX
		for _, cl := range c.measure.Clusters(line) {
			if x >= p.clip.Right() {
				break
			}
			if x >= p.clip.X {
				if cl.Width == 2 && x+1 >= p.clip.Right() {
					c.put(f, x, y, " ", 1, p.fg, p.attrs)
				} else {
					c.put(f, x, y, cl.Text, cl.Width, p.fg, p.attrs)
				}
			} else if cl.Width == 2 && x+1 == p.clip.X {
				// Trailing half visible, leading half clipped
				c.put(f, x+1, y, " ", 1, p.fg, p.attrs)
			}
			x += cl.Width
		}
	}
}

func alignOffset(a style.TextAlign, boxW, lineW int) int {
	switch a {
	case style.TextCenter:
		return max((boxW-lineW)/2, 0)
	case style.TextRight:
		return max(boxW-lineW, 0)
	default:
		return 0
	}
}

// put writes a glyph over the existing background
func (c *Compositor) put(f *Frame, x, y int, g string, w int, fg style.Color, attrs terminal.Attr) {
	under := f.At(x, y)
	cell := terminal.Cell{
		Glyph: g,
		Width: uint8(w),
		Fg:    fg.RGB,
		Bg:    under.Bg,
		Attrs: attrs&terminal.AttrStyle | under.Attrs&(terminal.AttrBgDefault|terminal.AttrBg256),
	}
	if fg.Kind != style.ColorRGB {
		cell.Fg = terminal.RGB{}
		cell.Attrs |= terminal.AttrFgDefault
	}
	f.Set(x, y, cell)
}
