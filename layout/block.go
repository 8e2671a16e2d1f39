package layout

import "github.com/lixenwraith/termframe/style"

// flow stacks block children vertically from startY and flows inline runs left to right
// With intrinsic set, block children take their content width instead of stretching,
// which is how a container's own content size is measured
func (e *Engine) flow(children []Element, styles []style.ComputedStyles, allInline bool, content Rect, startY int, intrinsic bool) ([]Rect, int, int) {
	n := len(children)
	rects := make([]Rect, n)
	y := startY
	usedW := 0

	isInline := func(i int) bool {
		return allInline || styles[i].Display == style.DisplayInline
	}

	for i := 0; i < n; {
		st := &styles[i]
		if st.Display == style.DisplayNone {
			rects[i] = Rect{X: content.X, Y: y}
			i++
			continue
		}

		if isInline(i) {
			j := i + 1
			for j < n && (isInline(j) || styles[j].Display == style.DisplayNone) {
				j++
			}
			var runW int
			y, runW = e.flowInline(children[i:j], styles[i:j], rects[i:j], content, y)
			usedW = max(usedW, runW)
			i = j
			continue
		}

		m := st.Margin.Clamped()
		availW := max(content.Width-m.Horizontal(), 0)

		var w int
		if intrinsic {
			w = min(e.intrinsicWidth(&children[i], st, availW), availW)
		} else if ew, ok := st.Width.Resolve(content.Width); ok {
			w = st.ClampWidth(ew)
		} else {
			w = st.ClampWidth(availW)
		}
		h := e.heightFor(&children[i], st, w, content.Height)

		rects[i] = Rect{X: content.X + m.Left, Y: y + m.Top, Width: w, Height: h}
		y += m.Top + h + m.Bottom
		usedW = max(usedW, w+m.Horizontal())
		i++
	}

	return rects, usedW, y - startY
}

// flowInline places a run of inline children left to right, wrapping to a new line
// when the next child would cross the content edge; returns the y below the run and its width
func (e *Engine) flowInline(children []Element, styles []style.ComputedStyles, out []Rect, content Rect, y int) (int, int) {
	x := content.X
	lineH := 0
	right := content.X

	for i := range children {
		st := &styles[i]
		if st.Display == style.DisplayNone {
			out[i] = Rect{X: x, Y: y}
			continue
		}

		m := st.Margin.Clamped()
		availW := max(content.Width-m.Horizontal(), 0)
		w := min(e.intrinsicWidth(&children[i], st, availW), availW)
		h := e.heightFor(&children[i], st, w, content.Height)
		outer := w + m.Horizontal()

		if x > content.X && x+outer > content.Right() {
			y += lineH
			x = content.X
			lineH = 0
		}

		out[i] = Rect{X: x + m.Left, Y: y + m.Top, Width: w, Height: h}
		x += outer
		right = max(right, x)
		lineH = max(lineH, h+m.Vertical())
	}

	return y + lineH, right - content.X
}

// center stacks children at their content size and centers the stack by midpoint offset
// Oversized children are pinned to the content origin so they never start outside it
func (e *Engine) center(children []Element, styles []style.ComputedStyles, content Rect) []Rect {
	n := len(children)
	rects := make([]Rect, n)
	ws := make([]int, n)
	hs := make([]int, n)

	total := 0
	for i := range children {
		st := &styles[i]
		if st.Display == style.DisplayNone {
			continue
		}
		m := st.Margin.Clamped()
		availW := max(content.Width-m.Horizontal(), 0)
		ws[i] = min(e.intrinsicWidth(&children[i], st, availW), availW)
		hs[i] = e.heightFor(&children[i], st, ws[i], content.Height)
		total += hs[i] + m.Vertical()
	}

	y := content.Y + max((content.Height-total)/2, 0)
	for i := range children {
		st := &styles[i]
		if st.Display == style.DisplayNone {
			rects[i] = Rect{X: content.X, Y: y}
			continue
		}
		m := st.Margin.Clamped()
		x := content.X + max((content.Width-ws[i]-m.Horizontal())/2, 0)
		rects[i] = Rect{X: x + m.Left, Y: y + m.Top, Width: ws[i], Height: hs[i]}
		y += hs[i] + m.Vertical()
	}
	return rects
}
