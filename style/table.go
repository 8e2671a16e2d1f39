package style

import (
	"maps"
	"slices"

	"github.com/lixenwraith/termframe/terminal"
)

// Table maps element tags to their default style
// Owned by whoever constructs it and injected into the layout engine and renderer
type Table struct {
	tags     map[string]ComputedStyles
	fallback ComputedStyles
}

// NewTable creates a table from an explicit tag map; unknown tags resolve to fallback
func NewTable(fallback ComputedStyles, tags map[string]ComputedStyles) *Table {
	t := &Table{
		tags:     make(map[string]ComputedStyles, len(tags)),
		fallback: fallback.Clone(),
	}
	for tag, s := range tags {
		t.tags[tag] = s.Clone()
	}
	return t
}

// DefaultTable returns the built-in tag defaults
func DefaultTable() *Table {
	return NewTable(New(), builtinTags())
}

// Lookup returns a copy of the default style for tag
func (t *Table) Lookup(tag string) ComputedStyles {
	if t == nil {
		return New()
	}
	if s, ok := t.tags[tag]; ok {
		return s.Clone()
	}
	return t.fallback.Clone()
}

// Has reports whether tag has its own entry
func (t *Table) Has(tag string) bool {
	if t == nil {
		return false
	}
	_, ok := t.tags[tag]
	return ok
}

// Set replaces the default for tag
func (t *Table) Set(tag string, s ComputedStyles) {
	t.tags[tag] = s.Clone()
}

// Resolve returns the explicit style when present, otherwise the tag default
func (t *Table) Resolve(tag string, explicit *ComputedStyles) ComputedStyles {
	if explicit != nil {
		return *explicit
	}
	return t.Lookup(tag)
}

// Tags returns the registered tag names in sorted order
func (t *Table) Tags() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.tags))
}

// Clone returns an independent copy
func (t *Table) Clone() *Table {
	return NewTable(t.fallback, t.tags)
}

func builtinTags() map[string]ComputedStyles {
	with := func(f func(s *ComputedStyles)) ComputedStyles {
		s := New()
		f(&s)
		return s
	}

	return map[string]ComputedStyles{
		"div": New(),
		"p": with(func(s *ComputedStyles) {
			s.Wrap = true
		}),
		"span": with(func(s *ComputedStyles) {
			s.Display = DisplayInline
		}),
		"text": with(func(s *ComputedStyles) {
			s.Display = DisplayInline
		}),
		"row": with(func(s *ComputedStyles) {
			s.Display = DisplayFlex
			s.Direction = DirectionRow
		}),
		"column": with(func(s *ComputedStyles) {
			s.Display = DisplayFlex
			s.Direction = DirectionColumn
		}),
		"grid": with(func(s *ComputedStyles) {
			s.Display = DisplayGrid
		}),
		"center": with(func(s *ComputedStyles) {
			s.Display = DisplayCenter
		}),
		"hidden": with(func(s *ComputedStyles) {
			s.Display = DisplayNone
		}),
		"panel": with(func(s *ComputedStyles) {
			s.BorderStyle = BorderRounded
			s.BorderColor = RGB(terminal.SlateGray)
			s.Padding = Spacing{Left: 1, Right: 1}
			s.Overflow = Overflow{X: OverflowHidden, Y: OverflowHidden}
		}),
		"header": with(func(s *ComputedStyles) {
			s.Fg = RGB(terminal.Gold)
			s.Bg = RGB(terminal.Gunmetal)
			s.Attrs = terminal.AttrBold
		}),
		"footer": with(func(s *ComputedStyles) {
			s.Fg = RGB(terminal.Silver)
			s.Attrs = terminal.AttrDim
		}),
		"button": with(func(s *ComputedStyles) {
			s.Display = DisplayInline
			s.Fg = RGB(terminal.White)
			s.Bg = RGB(terminal.SteelBlue)
			s.Padding = Spacing{Left: 1, Right: 1}
			s.Attrs = terminal.AttrBold
		}),
		"label": with(func(s *ComputedStyles) {
			s.Display = DisplayInline
			s.Fg = RGB(terminal.LightSkyBlue)
		}),
		"input": with(func(s *ComputedStyles) {
			s.Attrs = terminal.AttrUnderline
			s.Overflow = Overflow{X: OverflowHidden}
		}),
		"error": with(func(s *ComputedStyles) {
			s.Fg = RGB(terminal.BrightRed)
			s.Attrs = terminal.AttrBold
		}),
		"success": with(func(s *ComputedStyles) {
			s.Fg = RGB(terminal.EmeraldGreen)
		}),
		"scroll": with(func(s *ComputedStyles) {
			s.Overflow = Overflow{X: OverflowScroll, Y: OverflowScroll}
			s.Wrap = true
		}),
	}
}
