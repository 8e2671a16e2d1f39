// Package layout resolves a styled element tree into positioned rectangles
// All geometry is in character cells; results are clamped, never negative
package layout

import (
	"github.com/lixenwraith/termframe/style"
)

// Rect is a cell rectangle; X/Y are absolute frame coordinates
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Right returns the exclusive right edge
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the rect covers no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether cell (x, y) lies inside
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Normalized clamps negative dimensions to zero
func (r Rect) Normalized() Rect {
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}

// Inset shrinks the rect by s on each side, clamped to zero size
func (r Rect) Inset(s style.Spacing) Rect {
	s = s.Clamped()
	left := min(s.Left, max(r.Width, 0))
	top := min(s.Top, max(r.Height, 0))
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(r.Width-s.Left-s.Right, 0),
		Height: max(r.Height-s.Top-s.Bottom, 0),
	}
}

// Intersect returns the overlap of r and o
// A disjoint result keeps its origin clamped inside o with zero size
func (r Rect) Intersect(o Rect) Rect {
	o = o.Normalized()
	x0 := clamp(r.X, o.X, o.Right())
	y0 := clamp(r.Y, o.Y, o.Bottom())
	x1 := clamp(r.Right(), x0, o.Right())
	y1 := clamp(r.Bottom(), y0, o.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Element is one node of the input tree
// Style nil means the tag default from the engine's table
type Element struct {
	Tag       string
	ID        string
	Content   string
	Focusable bool
	Focused   bool
	Style     *style.ComputedStyles
	Children  []Element
}

// Layout is the positioned result for one element
// Built fresh per call and never mutated afterwards
type Layout struct {
	Rect      Rect
	Tag       string
	ID        string
	Content   string
	Focused   bool
	Focusable bool
	Styles    style.ComputedStyles
	Children  []*Layout
}

// Walk visits the tree depth-first in pre-order; returning false skips the subtree
func (l *Layout) Walk(fn func(n *Layout, depth int) bool) {
	l.walk(fn, 0)
}

func (l *Layout) walk(fn func(n *Layout, depth int) bool, depth int) {
	if l == nil || !fn(l, depth) {
		return
	}
	for _, c := range l.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns the first node with the given id, nil if none
func (l *Layout) Find(id string) *Layout {
	var found *Layout
	l.Walk(func(n *Layout, _ int) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
