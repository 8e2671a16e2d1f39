// Package style holds the resolved per-node style record consumed by layout and paint,
// plus the tag default table injected into both
package style

import (
	"reflect"
	"slices"

	"github.com/lixenwraith/termframe/terminal"
)

// Display selects the layout algorithm for a node's children
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayInline
	DisplayNone
	DisplayCenter
)

var displayNames = [...]string{
	DisplayBlock:  "block",
	DisplayFlex:   "flex",
	DisplayGrid:   "grid",
	DisplayInline: "inline",
	DisplayNone:   "none",
	DisplayCenter: "center",
}

func (d Display) String() string {
	if int(d) < len(displayNames) {
		return displayNames[d]
	}
	return "block"
}

// Direction is the flex main axis
type Direction uint8

const (
	DirectionRow Direction = iota
	DirectionColumn
)

func (d Direction) String() string {
	if d == DirectionColumn {
		return "column"
	}
	return "row"
}

// OverflowMode is the per-axis clipping policy applied by the compositor
type OverflowMode uint8

const (
	OverflowVisible OverflowMode = iota
	OverflowHidden
	OverflowScroll
)

func (o OverflowMode) String() string {
	switch o {
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	default:
		return "visible"
	}
}

// Overflow pairs the horizontal and vertical policies
type Overflow struct {
	X OverflowMode
	Y OverflowMode
}

// Clips reports whether either axis constrains descendants
func (o Overflow) Clips() bool {
	return o.X != OverflowVisible || o.Y != OverflowVisible
}

// Justify positions flex items along the main axis
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
)

// Align positions flex items along the cross axis
type Align uint8

const (
	AlignStretch Align = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// TextAlign positions each text line inside the content box
type TextAlign uint8

const (
	TextLeft TextAlign = iota
	TextCenter
	TextRight
)

// BorderStyle selects the box drawing glyph set
type BorderStyle uint8

const (
	BorderNone    BorderStyle = iota
	BorderSingle              // ┌─┐│└┘
	BorderDouble              // ╔═╗║╚╝
	BorderRounded             // ╭─╮│╰╯
	BorderHeavy               // ┏━┓┃┗┛
)

// Spacing is a four-sided width in cells
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Uniform returns the same width on every side
func Uniform(n int) Spacing {
	return Spacing{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns left plus right
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top plus bottom
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// IsZero reports whether all sides are zero
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Clamped returns the spacing with negative sides set to zero
func (s Spacing) Clamped() Spacing {
	return Spacing{Top: max(s.Top, 0), Right: max(s.Right, 0), Bottom: max(s.Bottom, 0), Left: max(s.Left, 0)}
}

// ComputedStyles is the fully resolved style of one node
// A nil *ComputedStyles on an element means the tag default applies
type ComputedStyles struct {
	Display Display

	// Flex container and item parameters
	Direction Direction
	Grow      int
	Shrink    int
	Basis     Size
	Gap       int

	// Grid container parameters
	Columns     []Track
	Rows        []Track
	ColumnGap   int
	RowGap      int
	ColumnCount int
	RowCount    int

	// Grid item parameters, 0 means 1
	ColumnSpan int
	RowSpan    int

	Overflow Overflow
	Margin   Spacing
	Padding  Spacing
	Border   Spacing

	Justify Justify
	Align   Align

	Width     Size
	Height    Size
	MinWidth  int
	MaxWidth  int // 0 is unbounded
	MinHeight int
	MaxHeight int // 0 is unbounded

	Fg          Color
	Bg          Color
	Attrs       terminal.Attr // zero inherits from the nearest ancestor that sets any
	AttrsSet    bool          // Attrs replaces the inherited set even when zero
	BorderStyle BorderStyle
	BorderColor Color

	TextAlign TextAlign
	Wrap      bool
	ScrollX   int
	ScrollY   int
}

// New returns a block style with shrinking enabled and everything else at zero
func New() ComputedStyles {
	return ComputedStyles{Shrink: 1}
}

// Clone returns a deep copy
func (s ComputedStyles) Clone() ComputedStyles {
	s.Columns = slices.Clone(s.Columns)
	s.Rows = slices.Clone(s.Rows)
	return s
}

// IsZero reports whether s is the zero value, as on a hand-built layout node
func (s *ComputedStyles) IsZero() bool {
	return reflect.DeepEqual(*s, ComputedStyles{})
}

// BorderWidths returns the border ring reserved inside the rect
// A border style with no explicit widths reserves one cell per side
func (s *ComputedStyles) BorderWidths() Spacing {
	if s.BorderStyle != BorderNone && s.Border.IsZero() {
		return Uniform(1)
	}
	return s.Border.Clamped()
}

// Inset returns border plus padding per side
func (s *ComputedStyles) Inset() Spacing {
	b := s.BorderWidths()
	p := s.Padding.Clamped()
	return Spacing{
		Top:    b.Top + p.Top,
		Right:  b.Right + p.Right,
		Bottom: b.Bottom + p.Bottom,
		Left:   b.Left + p.Left,
	}
}

// ClampWidth applies MinWidth/MaxWidth and floors at zero
func (s *ComputedStyles) ClampWidth(w int) int {
	return clampMinMax(w, s.MinWidth, s.MaxWidth)
}

// ClampHeight applies MinHeight/MaxHeight and floors at zero
func (s *ComputedStyles) ClampHeight(h int) int {
	return clampMinMax(h, s.MinHeight, s.MaxHeight)
}

func clampMinMax(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return max(v, 0)
}

// ColumnSpanOrOne returns the grid column span, at least 1
func (s *ComputedStyles) ColumnSpanOrOne() int {
	return max(s.ColumnSpan, 1)
}

// RowSpanOrOne returns the grid row span, at least 1
func (s *ComputedStyles) RowSpanOrOne() int {
	return max(s.RowSpan, 1)
}
