package layout

import "github.com/lixenwraith/termframe/style"

// axis abstracts width/height so one flex pass serves both directions
type axis struct {
	row bool
}

func (a axis) main(w, h int) int {
	if a.row {
		return w
	}
	return h
}

func (a axis) cross(w, h int) int {
	if a.row {
		return h
	}
	return w
}

func (a axis) mainSize(st *style.ComputedStyles) style.Size {
	if a.row {
		return st.Width
	}
	return st.Height
}

func (a axis) crossSize(st *style.ComputedStyles) style.Size {
	if a.row {
		return st.Height
	}
	return st.Width
}

func (a axis) clampMain(st *style.ComputedStyles, v int) int {
	if a.row {
		return st.ClampWidth(v)
	}
	return st.ClampHeight(v)
}

func (a axis) clampCross(st *style.ComputedStyles, v int) int {
	if a.row {
		return st.ClampHeight(v)
	}
	return st.ClampWidth(v)
}

// flex lays out children along the container's main axis in two passes:
// basis sizing, then distribution of free space by grow or shrink weight
func (e *Engine) flex(children []Element, styles []style.ComputedStyles, parent *style.ComputedStyles, content Rect) []Rect {
	n := len(children)
	rects := make([]Rect, n)
	ax := axis{row: parent.Direction == style.DirectionRow}
	mainAvail := ax.main(content.Width, content.Height)
	crossAvail := ax.cross(content.Width, content.Height)

	active := make([]int, 0, n)
	for i := range styles {
		if styles[i].Display == style.DisplayNone {
			rects[i] = Rect{X: content.X, Y: content.Y}
			continue
		}
		active = append(active, i)
	}
	if len(active) == 0 {
		return rects
	}

	gap := max(parent.Gap, 0)
	mainM := make([]int, n)
	crossM := make([]int, n)
	cross := make([]int, n)
	sizes := make([]int, n)

	for _, i := range active {
		m := styles[i].Margin.Clamped()
		mainM[i] = ax.main(m.Horizontal(), m.Vertical())
		crossM[i] = ax.cross(m.Horizontal(), m.Vertical())
	}

	// Column items need their width before their content height can be measured
	if !ax.row {
		for _, i := range active {
			cross[i] = e.flexCross(&children[i], &styles[i], parent, ax, 0, crossAvail-crossM[i])
		}
	}

	// Pass 1: basis
	used := gap * (len(active) - 1)
	for _, i := range active {
		sizes[i] = e.flexBasis(&children[i], &styles[i], ax, mainAvail, mainAvail-mainM[i], cross[i])
		used += sizes[i] + mainM[i]
	}

	// Pass 2: distribute free space
	free := mainAvail - used
	weights := make([]int, n)
	switch {
	case free > 0:
		for _, i := range active {
			weights[i] = max(styles[i].Grow, 0)
		}
		for i, add := range Distribute(free, weights) {
			sizes[i] += add
		}
	case free < 0:
		for _, i := range active {
			weights[i] = max(styles[i].Shrink, 0) * sizes[i]
		}
		for i, sub := range Distribute(-free, weights) {
			sizes[i] = max(sizes[i]-sub, 0)
		}
	}

	used = gap * (len(active) - 1)
	for _, i := range active {
		sizes[i] = ax.clampMain(&styles[i], sizes[i])
		used += sizes[i] + mainM[i]
	}
	free = max(mainAvail-used, 0)

	lead, between := justifyOffsets(parent.Justify, free, len(active))

	if ax.row {
		for _, i := range active {
			cross[i] = e.flexCross(&children[i], &styles[i], parent, ax, sizes[i], crossAvail-crossM[i])
		}
	}

	pos := lead
	for k, i := range active {
		m := styles[i].Margin.Clamped()
		off := alignOffset(parent.Align, crossAvail-crossM[i]-cross[i])
		if ax.row {
			rects[i] = Rect{
				X:      content.X + pos + m.Left,
				Y:      content.Y + off + m.Top,
				Width:  sizes[i],
				Height: cross[i],
			}
		} else {
			rects[i] = Rect{
				X:      content.X + off + m.Left,
				Y:      content.Y + pos + m.Top,
				Width:  cross[i],
				Height: sizes[i],
			}
		}
		pos += mainM[i] + sizes[i] + gap
		if k < len(between) {
			pos += between[k]
		}
	}
	return rects
}

// flexBasis resolves pass-1 size: explicit basis, else explicit main size, else content size
func (e *Engine) flexBasis(el *Element, st *style.ComputedStyles, ax axis, mainAvail, itemAvail, crossSize int) int {
	if b, ok := st.Basis.Resolve(mainAvail); ok {
		return b
	}
	if s, ok := ax.mainSize(st).Resolve(mainAvail); ok {
		return ax.clampMain(st, s)
	}
	if ax.row {
		return e.intrinsicWidth(el, st, max(itemAvail, 0))
	}
	return e.heightFor(el, st, crossSize, mainAvail)
}

// flexCross resolves the cross-axis size of one item; avail excludes its cross margins
func (e *Engine) flexCross(el *Element, st *style.ComputedStyles, parent *style.ComputedStyles, ax axis, mainSize, avail int) int {
	avail = max(avail, 0)
	if s, ok := ax.crossSize(st).Resolve(avail); ok {
		return ax.clampCross(st, s)
	}
	if parent.Align == style.AlignStretch {
		return ax.clampCross(st, avail)
	}
	if ax.row {
		return min(e.heightFor(el, st, mainSize, avail), avail)
	}
	return min(e.intrinsicWidth(el, st, avail), avail)
}

// justifyOffsets returns the leading offset and per-gap extra spacing for count items
func justifyOffsets(j style.Justify, free, count int) (int, []int) {
	if free <= 0 || count == 0 {
		return 0, nil
	}
	switch j {
	case style.JustifyEnd:
		return free, nil
	case style.JustifyCenter:
		return free / 2, nil
	case style.JustifySpaceBetween:
		if count < 2 {
			return 0, nil
		}
		ones := make([]int, count-1)
		for i := range ones {
			ones[i] = 1
		}
		return 0, Distribute(free, ones)
	case style.JustifySpaceAround:
		share := free / count
		between := make([]int, count-1)
		for i := range between {
			between[i] = share
		}
		return share / 2, between
	default:
		return 0, nil
	}
}

// alignOffset returns the cross-axis offset for the leftover space
func alignOffset(a style.Align, leftover int) int {
	if leftover <= 0 {
		return 0
	}
	switch a {
	case style.AlignEnd:
		return leftover
	case style.AlignCenter:
		return leftover / 2
	default:
		return 0
	}
}

// flexContentSize measures a flex container's children at their basis sizes
func (e *Engine) flexContentSize(children []Element, styles []style.ComputedStyles, parent *style.ComputedStyles, innerW, innerH int) (int, int) {
	ax := axis{row: parent.Direction == style.DirectionRow}
	gap := max(parent.Gap, 0)

	mainTotal, crossMax, count := 0, 0, 0
	for i := range children {
		st := &styles[i]
		if st.Display == style.DisplayNone {
			continue
		}
		count++
		m := st.Margin.Clamped()
		availW := max(innerW-m.Horizontal(), 0)
		w := e.intrinsicWidth(&children[i], st, availW)
		if !ax.row && parent.Align == style.AlignStretch {
			w = availW
		}
		h := e.heightFor(&children[i], st, w, innerH)

		mainTotal += ax.main(w+m.Horizontal(), h+m.Vertical())
		crossMax = max(crossMax, ax.cross(w+m.Horizontal(), h+m.Vertical()))
	}
	if count > 1 {
		mainTotal += gap * (count - 1)
	}

	if ax.row {
		return mainTotal, crossMax
	}
	return crossMax, mainTotal
}
