package layout

// CenterRect returns a w×h rect centered within outer, clipped to it
func CenterRect(outer Rect, w, h int) Rect {
	x := outer.X + max((outer.Width-w)/2, 0)
	y := outer.Y + max((outer.Height-h)/2, 0)
	return Rect{X: x, Y: y, Width: w, Height: h}.Intersect(outer)
}

// SplitH splits r into side-by-side columns by weight
// Shares follow Distribute, so the last weighted column absorbs rounding
func SplitH(r Rect, weights ...int) []Rect {
	if len(weights) == 0 {
		return nil
	}
	widths := Distribute(max(r.Width, 0), weights)
	out := make([]Rect, len(weights))
	x := r.X
	for i, w := range widths {
		out[i] = Rect{X: x, Y: r.Y, Width: w, Height: max(r.Height, 0)}
		x += w
	}
	return out
}

// SplitV splits r into stacked rows by weight
func SplitV(r Rect, weights ...int) []Rect {
	if len(weights) == 0 {
		return nil
	}
	heights := Distribute(max(r.Height, 0), weights)
	out := make([]Rect, len(weights))
	y := r.Y
	for i, h := range heights {
		out[i] = Rect{X: r.X, Y: y, Width: max(r.Width, 0), Height: h}
		y += h
	}
	return out
}

// SplitHFixed splits with a fixed left width, rest to the right
func SplitHFixed(r Rect, leftW int) (left, right Rect) {
	leftW = clamp(leftW, 0, max(r.Width, 0))
	left = Rect{X: r.X, Y: r.Y, Width: leftW, Height: r.Height}
	right = Rect{X: r.X + leftW, Y: r.Y, Width: max(r.Width-leftW, 0), Height: r.Height}
	return
}

// SplitVFixed splits with a fixed top height, rest to the bottom
func SplitVFixed(r Rect, topH int) (top, bottom Rect) {
	topH = clamp(topH, 0, max(r.Height, 0))
	top = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: topH}
	bottom = Rect{X: r.X, Y: r.Y + topH, Width: r.Width, Height: max(r.Height-topH, 0)}
	return
}
