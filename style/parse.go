package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/termframe/terminal"
)

// ParseDisplay maps a display keyword
func ParseDisplay(s string) (Display, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d, name := range displayNames {
		if name == key {
			return Display(d), nil
		}
	}
	return DisplayBlock, fmt.Errorf("unknown display %q", s)
}

// ParseDirection maps "row" or "column"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row":
		return DirectionRow, nil
	case "column", "col":
		return DirectionColumn, nil
	}
	return DirectionRow, fmt.Errorf("unknown direction %q", s)
}

// ParseOverflow maps "visible", "hidden", or "scroll"
func ParseOverflow(s string) (OverflowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "visible":
		return OverflowVisible, nil
	case "hidden":
		return OverflowHidden, nil
	case "scroll":
		return OverflowScroll, nil
	}
	return OverflowVisible, fmt.Errorf("unknown overflow %q", s)
}

// ParseJustify maps a justify keyword
func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return JustifyStart, nil
	case "end":
		return JustifyEnd, nil
	case "center":
		return JustifyCenter, nil
	case "space-between", "between":
		return JustifySpaceBetween, nil
	case "space-around", "around":
		return JustifySpaceAround, nil
	}
	return JustifyStart, fmt.Errorf("unknown justify %q", s)
}

// ParseAlign maps an align keyword
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return AlignStretch, nil
	case "start":
		return AlignStart, nil
	case "end":
		return AlignEnd, nil
	case "center":
		return AlignCenter, nil
	}
	return AlignStretch, fmt.Errorf("unknown align %q", s)
}

// ParseTextAlign maps "left", "center", or "right"
func ParseTextAlign(s string) (TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return TextLeft, nil
	case "center":
		return TextCenter, nil
	case "right":
		return TextRight, nil
	}
	return TextLeft, fmt.Errorf("unknown text align %q", s)
}

// ParseBorderStyle maps a border keyword
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BorderNone, nil
	case "single":
		return BorderSingle, nil
	case "double":
		return BorderDouble, nil
	case "rounded":
		return BorderRounded, nil
	case "heavy":
		return BorderHeavy, nil
	}
	return BorderNone, fmt.Errorf("unknown border style %q", s)
}

// ParseSize accepts "auto", "12", or "50%"
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto(), nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Auto(), fmt.Errorf("invalid percent size %q: %w", s, err)
		}
		return Percent(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Auto(), fmt.Errorf("invalid size %q: %w", s, err)
	}
	return Cells(n), nil
}

// ParseTrack accepts "10" for a fixed track, "2fr" or "fr" for a fractional one
func ParseTrack(s string) (Track, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if w, ok := strings.CutSuffix(s, "fr"); ok {
		if w == "" {
			return Fr(1), nil
		}
		n, err := strconv.Atoi(w)
		if err != nil || n < 0 {
			return Track{}, fmt.Errorf("invalid fr track %q", s)
		}
		return Fr(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Track{}, fmt.Errorf("invalid track %q", s)
	}
	return FixedTrack(n), nil
}

// ParseTracks splits a whitespace separated track list such as "1fr 20 2fr"
func ParseTracks(s string) ([]Track, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	tracks := make([]Track, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTrack(f)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// ParseSpacing accepts 1, 2, or 4 integers in CSS shorthand order
func ParseSpacing(s string) (Spacing, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	vals := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Spacing{}, fmt.Errorf("invalid spacing %q: %w", s, err)
		}
		vals[i] = n
	}
	switch len(vals) {
	case 0:
		return Spacing{}, nil
	case 1:
		return Uniform(vals[0]), nil
	case 2:
		return Spacing{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, nil
	case 4:
		return Spacing{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return Spacing{}, fmt.Errorf("spacing %q needs 1, 2, or 4 values", s)
}

var attrNames = map[string]terminal.Attr{
	"bold":          terminal.AttrBold,
	"dim":           terminal.AttrDim,
	"italic":        terminal.AttrItalic,
	"underline":     terminal.AttrUnderline,
	"blink":         terminal.AttrBlink,
	"reverse":       terminal.AttrReverse,
	"strike":        terminal.AttrStrike,
	"strikethrough": terminal.AttrStrike,
	"none":          terminal.AttrNone,
}

// ParseAttr maps a single attribute name to its flag
func ParseAttr(s string) (terminal.Attr, error) {
	a, ok := attrNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return terminal.AttrNone, fmt.Errorf("unknown attribute %q", s)
	}
	return a, nil
}

// ParseAttrs combines a list of attribute names
func ParseAttrs(names []string) (terminal.Attr, error) {
	var attrs terminal.Attr
	for _, n := range names {
		a, err := ParseAttr(n)
		if err != nil {
			return terminal.AttrNone, err
		}
		attrs |= a
	}
	return attrs, nil
}
