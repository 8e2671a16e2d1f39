package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/termframe/terminal"
)

// Spec is the declarative, text-valued form of a style as written in scene and config files
// Empty strings and nil pointers leave the base value untouched
type Spec struct {
	Display   string `yaml:"display,omitempty" toml:"display,omitempty" koanf:"display"`
	Direction string `yaml:"direction,omitempty" toml:"direction,omitempty" koanf:"direction"`
	Grow      *int   `yaml:"grow,omitempty" toml:"grow,omitempty" koanf:"grow"`
	Shrink    *int   `yaml:"shrink,omitempty" toml:"shrink,omitempty" koanf:"shrink"`
	Basis     string `yaml:"basis,omitempty" toml:"basis,omitempty" koanf:"basis"`
	Gap       *int   `yaml:"gap,omitempty" toml:"gap,omitempty" koanf:"gap"`

	Columns     string `yaml:"columns,omitempty" toml:"columns,omitempty" koanf:"columns"`
	Rows        string `yaml:"rows,omitempty" toml:"rows,omitempty" koanf:"rows"`
	ColumnGap   *int   `yaml:"column_gap,omitempty" toml:"column_gap,omitempty" koanf:"column_gap"`
	RowGap      *int   `yaml:"row_gap,omitempty" toml:"row_gap,omitempty" koanf:"row_gap"`
	ColumnCount *int   `yaml:"column_count,omitempty" toml:"column_count,omitempty" koanf:"column_count"`
	RowCount    *int   `yaml:"row_count,omitempty" toml:"row_count,omitempty" koanf:"row_count"`
	ColumnSpan  *int   `yaml:"column_span,omitempty" toml:"column_span,omitempty" koanf:"column_span"`
	RowSpan     *int   `yaml:"row_span,omitempty" toml:"row_span,omitempty" koanf:"row_span"`

	Overflow    string `yaml:"overflow,omitempty" toml:"overflow,omitempty" koanf:"overflow"` // one value, or "x y"
	Margin      string `yaml:"margin,omitempty" toml:"margin,omitempty" koanf:"margin"`
	Padding     string `yaml:"padding,omitempty" toml:"padding,omitempty" koanf:"padding"`
	Border      string `yaml:"border,omitempty" toml:"border,omitempty" koanf:"border"`
	BorderWidth string `yaml:"border_width,omitempty" toml:"border_width,omitempty" koanf:"border_width"`
	BorderColor string `yaml:"border_color,omitempty" toml:"border_color,omitempty" koanf:"border_color"`

	Justify   string `yaml:"justify,omitempty" toml:"justify,omitempty" koanf:"justify"`
	Align     string `yaml:"align,omitempty" toml:"align,omitempty" koanf:"align"`
	TextAlign string `yaml:"text_align,omitempty" toml:"text_align,omitempty" koanf:"text_align"`

	Width     string `yaml:"width,omitempty" toml:"width,omitempty" koanf:"width"`
	Height    string `yaml:"height,omitempty" toml:"height,omitempty" koanf:"height"`
	MinWidth  *int   `yaml:"min_width,omitempty" toml:"min_width,omitempty" koanf:"min_width"`
	MaxWidth  *int   `yaml:"max_width,omitempty" toml:"max_width,omitempty" koanf:"max_width"`
	MinHeight *int   `yaml:"min_height,omitempty" toml:"min_height,omitempty" koanf:"min_height"`
	MaxHeight *int   `yaml:"max_height,omitempty" toml:"max_height,omitempty" koanf:"max_height"`

	Fg        string   `yaml:"fg,omitempty" toml:"fg,omitempty" koanf:"fg"`
	Bg        string   `yaml:"bg,omitempty" toml:"bg,omitempty" koanf:"bg"`
	Bold      *bool    `yaml:"bold,omitempty" toml:"bold,omitempty" koanf:"bold"`
	Dim       *bool    `yaml:"dim,omitempty" toml:"dim,omitempty" koanf:"dim"`
	Italic    *bool    `yaml:"italic,omitempty" toml:"italic,omitempty" koanf:"italic"`
	Underline *bool    `yaml:"underline,omitempty" toml:"underline,omitempty" koanf:"underline"`
	Reverse   *bool    `yaml:"reverse,omitempty" toml:"reverse,omitempty" koanf:"reverse"`
	Attrs     []string `yaml:"attrs,omitempty" toml:"attrs,omitempty" koanf:"attrs"`

	Wrap    *bool `yaml:"wrap,omitempty" toml:"wrap,omitempty" koanf:"wrap"`
	ScrollX *int  `yaml:"scroll_x,omitempty" toml:"scroll_x,omitempty" koanf:"scroll_x"`
	ScrollY *int  `yaml:"scroll_y,omitempty" toml:"scroll_y,omitempty" koanf:"scroll_y"`
}

// Apply layers the set fields of sp over base
// Every field error is collected so a file reports all its mistakes at once
func (sp *Spec) Apply(base ComputedStyles) (ComputedStyles, error) {
	s := base.Clone()
	if sp == nil {
		return s, nil
	}

	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}

	if sp.Display != "" {
		v, err := ParseDisplay(sp.Display)
		check("display", err)
		s.Display = v
	}
	if sp.Direction != "" {
		v, err := ParseDirection(sp.Direction)
		check("direction", err)
		s.Direction = v
	}
	setInt(&s.Grow, sp.Grow)
	setInt(&s.Shrink, sp.Shrink)
	if sp.Basis != "" {
		v, err := ParseSize(sp.Basis)
		check("basis", err)
		s.Basis = v
	}
	setInt(&s.Gap, sp.Gap)

	if sp.Columns != "" {
		v, err := ParseTracks(sp.Columns)
		check("columns", err)
		s.Columns = v
	}
	if sp.Rows != "" {
		v, err := ParseTracks(sp.Rows)
		check("rows", err)
		s.Rows = v
	}
	setInt(&s.ColumnGap, sp.ColumnGap)
	setInt(&s.RowGap, sp.RowGap)
	setInt(&s.ColumnCount, sp.ColumnCount)
	setInt(&s.RowCount, sp.RowCount)
	setInt(&s.ColumnSpan, sp.ColumnSpan)
	setInt(&s.RowSpan, sp.RowSpan)

	if sp.Overflow != "" {
		v, err := parseOverflowPair(sp.Overflow)
		check("overflow", err)
		s.Overflow = v
	}
	if sp.Margin != "" {
		v, err := ParseSpacing(sp.Margin)
		check("margin", err)
		s.Margin = v
	}
	if sp.Padding != "" {
		v, err := ParseSpacing(sp.Padding)
		check("padding", err)
		s.Padding = v
	}
	if sp.Border != "" {
		v, err := ParseBorderStyle(sp.Border)
		check("border", err)
		s.BorderStyle = v
	}
	if sp.BorderWidth != "" {
		v, err := ParseSpacing(sp.BorderWidth)
		check("border_width", err)
		s.Border = v
	}
	if sp.BorderColor != "" {
		v, err := ParseColor(sp.BorderColor)
		check("border_color", err)
		s.BorderColor = v
	}

	if sp.Justify != "" {
		v, err := ParseJustify(sp.Justify)
		check("justify", err)
		s.Justify = v
	}
	if sp.Align != "" {
		v, err := ParseAlign(sp.Align)
		check("align", err)
		s.Align = v
	}
	if sp.TextAlign != "" {
		v, err := ParseTextAlign(sp.TextAlign)
		check("text_align", err)
		s.TextAlign = v
	}

	if sp.Width != "" {
		v, err := ParseSize(sp.Width)
		check("width", err)
		s.Width = v
	}
	if sp.Height != "" {
		v, err := ParseSize(sp.Height)
		check("height", err)
		s.Height = v
	}
	setInt(&s.MinWidth, sp.MinWidth)
	setInt(&s.MaxWidth, sp.MaxWidth)
	setInt(&s.MinHeight, sp.MinHeight)
	setInt(&s.MaxHeight, sp.MaxHeight)

	if sp.Fg != "" {
		v, err := ParseColor(sp.Fg)
		check("fg", err)
		s.Fg = v
	}
	if sp.Bg != "" {
		v, err := ParseColor(sp.Bg)
		check("bg", err)
		s.Bg = v
	}

	if len(sp.Attrs) > 0 {
		v, err := ParseAttrs(sp.Attrs)
		check("attrs", err)
		s.Attrs = v
		s.AttrsSet = true
	}
	for _, f := range []struct {
		on   *bool
		attr terminal.Attr
	}{
		{sp.Bold, terminal.AttrBold},
		{sp.Dim, terminal.AttrDim},
		{sp.Italic, terminal.AttrItalic},
		{sp.Underline, terminal.AttrUnderline},
		{sp.Reverse, terminal.AttrReverse},
	} {
		if f.on == nil {
			continue
		}
		s.AttrsSet = true
		if *f.on {
			s.Attrs |= f.attr
		} else {
			s.Attrs &^= f.attr
		}
	}

	if sp.Wrap != nil {
		s.Wrap = *sp.Wrap
	}
	setInt(&s.ScrollX, sp.ScrollX)
	setInt(&s.ScrollY, sp.ScrollY)

	if len(errs) > 0 {
		return base.Clone(), errors.Join(errs...)
	}
	return s, nil
}

func parseOverflowPair(s string) (Overflow, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		m, err := ParseOverflow(fields[0])
		return Overflow{X: m, Y: m}, err
	case 2:
		x, err := ParseOverflow(fields[0])
		if err != nil {
			return Overflow{}, err
		}
		y, err := ParseOverflow(fields[1])
		return Overflow{X: x, Y: y}, err
	}
	return Overflow{}, fmt.Errorf("overflow %q needs 1 or 2 values", s)
}
