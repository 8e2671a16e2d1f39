package layout

import (
	"github.com/lixenwraith/termframe/glyph"
	"github.com/lixenwraith/termframe/style"
)

// Engine computes layouts against one default style table
// Stateless between calls; safe for concurrent use once built
type Engine struct {
	table   *style.Table
	measure *glyph.Measurer

	// sizes memoizes contentSize within one ComputeLayout call; nil on the shared Engine
	sizes map[measureKey]measured
}

type measureKey struct {
	el             *Element
	innerW, innerH int
}

type measured struct {
	w, h int
}

// NewEngine binds a style table and glyph measurer; nil selects the built-in defaults
func NewEngine(table *style.Table, m *glyph.Measurer) *Engine {
	if table == nil {
		table = style.DefaultTable()
	}
	if m == nil {
		m = glyph.Default
	}
	return &Engine{table: table, measure: m}
}

// Table returns the injected default style table
func (e *Engine) Table() *style.Table {
	return e.table
}

// Measurer returns the glyph measurer used for text sizing
func (e *Engine) Measurer() *glyph.Measurer {
	return e.measure
}

// ComputeLayout lays out el inside container with the built-in defaults
func ComputeLayout(el *Element, container Rect) *Layout {
	return NewEngine(nil, nil).ComputeLayout(el, container)
}

// ComputeLayout lays out el inside container
// Negative container dimensions are treated as zero
func (e *Engine) ComputeLayout(el *Element, container Rect) *Layout {
	container = container.Normalized()
	if el == nil {
		return &Layout{Rect: Rect{X: container.X, Y: container.Y}}
	}

	st := e.styleOf(el)
	avail := container.Inset(st.Margin)

	w, ok := st.Width.Resolve(avail.Width)
	if !ok {
		w = avail.Width
	}
	h, ok := st.Height.Resolve(avail.Height)
	if !ok {
		h = avail.Height
	}
	rect := Rect{X: avail.X, Y: avail.Y, Width: st.ClampWidth(w), Height: st.ClampHeight(h)}

	pass := &Engine{table: e.table, measure: e.measure, sizes: make(map[measureKey]measured)}
	return pass.layoutNode(el, st, rect.Intersect(avail))
}

func (e *Engine) styleOf(el *Element) style.ComputedStyles {
	return e.table.Resolve(el.Tag, el.Style)
}

func (e *Engine) childStyles(el *Element) []style.ComputedStyles {
	styles := make([]style.ComputedStyles, len(el.Children))
	for i := range el.Children {
		styles[i] = e.styleOf(&el.Children[i])
	}
	return styles
}

// layoutNode builds the subtree for el given its final border-box rect
func (e *Engine) layoutNode(el *Element, st style.ComputedStyles, rect Rect) *Layout {
	l := &Layout{
		Rect:      rect,
		Tag:       el.Tag,
		ID:        el.ID,
		Content:   el.Content,
		Focused:   el.Focused,
		Focusable: el.Focusable,
		Styles:    st,
	}
	if st.Display == style.DisplayNone {
		l.Rect = Rect{X: rect.X, Y: rect.Y}
		return l
	}
	if len(el.Children) == 0 {
		return l
	}

	content := rect.Inset(st.Inset())
	styles := e.childStyles(el)

	var rects []Rect
	switch st.Display {
	case style.DisplayFlex:
		rects = e.flex(el.Children, styles, &st, content)
	case style.DisplayGrid:
		rects = e.grid(el.Children, styles, &st, content)
	case style.DisplayCenter:
		rects = e.center(el.Children, styles, content)
	default:
		textH := len(e.TextLines(el.Content, &st, content.Width))
		rects, _, _ = e.flow(el.Children, styles, st.Display == style.DisplayInline, content, content.Y+textH, false)
	}

	l.Children = make([]*Layout, len(el.Children))
	for i := range el.Children {
		l.Children[i] = e.layoutNode(&el.Children[i], styles[i], rects[i].Intersect(content))
	}
	return l
}

// TextLines splits content into the lines painted for a node of the given content width
// Layout sizing and painting both call this so they agree on line count
func TextLines(m *glyph.Measurer, content string, st *style.ComputedStyles, width int) []string {
	if content == "" {
		return nil
	}
	if st.Wrap && width > 0 {
		return m.Wrap(content, width)
	}
	return glyph.Lines(content)
}

// TextLines splits content with the engine's measurer
func (e *Engine) TextLines(content string, st *style.ComputedStyles, width int) []string {
	return TextLines(e.measure, content, st, width)
}

// contentSize measures the space el's text and children need inside a content box of innerW.
// Results depend only on el and the box, so each pair is measured once per pass.
func (e *Engine) contentSize(el *Element, st *style.ComputedStyles, innerW, innerH int) (int, int) {
	if e.sizes == nil {
		return e.measureContent(el, st, innerW, innerH)
	}
	key := measureKey{el: el, innerW: innerW, innerH: innerH}
	if m, ok := e.sizes[key]; ok {
		return m.w, m.h
	}
	w, h := e.measureContent(el, st, innerW, innerH)
	e.sizes[key] = measured{w: w, h: h}
	return w, h
}

func (e *Engine) measureContent(el *Element, st *style.ComputedStyles, innerW, innerH int) (int, int) {
	lines := e.TextLines(el.Content, st, innerW)
	tw, th := e.measure.MaxWidth(lines), len(lines)
	if len(el.Children) == 0 {
		return tw, th
	}

	styles := e.childStyles(el)
	switch st.Display {
	case style.DisplayFlex:
		cw, ch := e.flexContentSize(el.Children, styles, st, innerW, innerH)
		return max(tw, cw), max(th, ch)
	case style.DisplayGrid:
		cw, ch := e.gridContentSize(el.Children, styles, st, innerW)
		return max(tw, cw), max(th, ch)
	default:
		box := Rect{Width: innerW, Height: innerH}
		_, cw, ch := e.flow(el.Children, styles, st.Display == style.DisplayInline, box, 0, true)
		return max(tw, cw), th + ch
	}
}

// intrinsicWidth returns the border-box width el wants: explicit, else content width
// Not capped by availW; callers clamp where the algorithm requires it
func (e *Engine) intrinsicWidth(el *Element, st *style.ComputedStyles, availW int) int {
	if st.Display == style.DisplayNone {
		return 0
	}
	if w, ok := st.Width.Resolve(availW); ok {
		return st.ClampWidth(w)
	}
	inset := st.Inset()
	cw, _ := e.contentSize(el, st, max(availW-inset.Horizontal(), 0), 0)
	return st.ClampWidth(cw + inset.Horizontal())
}

// heightFor returns the border-box height of el laid out at border-box width w
func (e *Engine) heightFor(el *Element, st *style.ComputedStyles, w, availH int) int {
	if st.Display == style.DisplayNone {
		return 0
	}
	if h, ok := st.Height.Resolve(availH); ok {
		return st.ClampHeight(h)
	}
	inset := st.Inset()
	_, ch := e.contentSize(el, st, max(w-inset.Horizontal(), 0), max(availH-inset.Vertical(), 0))
	return st.ClampHeight(ch + inset.Vertical())
}
