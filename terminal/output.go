package terminal

import (
	"bytes"
)

// DiffState is the diff engine's position in its repaint cycle
type DiffState uint8

const (
	StateUninitialized DiffState = iota // no baseline, next diff is a full repaint
	StateBaseline                       // baseline just painted in full
	StateDiffing                        // baseline maintained by incremental updates
)

// String returns the state name for logs
func (s DiffState) String() string {
	switch s {
	case StateBaseline:
		return "baseline"
	case StateDiffing:
		return "diffing"
	default:
		return "uninitialized"
	}
}

// PaintOptions selects the framing sequences around a full paint
type PaintOptions struct {
	Clear      bool // SGR reset, clear screen, cursor home before the cells
	HideCursor bool // hide the cursor for the duration of the update
}

// Differ turns successive cell frames into minimal ANSI updates
// It owns the baseline frame plus the assumed SGR and cursor state of the terminal,
// so one Differ must only ever feed one output stream. Not safe for concurrent use
type Differ struct {
	front     []Cell
	width     int
	height    int
	state     DiffState
	colorMode ColorMode
	buf       bytes.Buffer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// NewDiffer creates a diff engine in the uninitialized state
func NewDiffer(colorMode ColorMode) *Differ {
	return &Differ{colorMode: colorMode}
}

// State returns the current repaint state
func (d *Differ) State() DiffState {
	return d.state
}

// Size returns the baseline dimensions
func (d *Differ) Size() (int, int) {
	return d.width, d.height
}

// ColorMode returns the color encoding used for SGR output
func (d *Differ) ColorMode() ColorMode {
	return d.colorMode
}

// Baseline returns the last emitted frame, nil before the first paint
func (d *Differ) Baseline() []Cell {
	if d.state == StateUninitialized {
		return nil
	}
	return d.front
}

// Invalidate drops the baseline so the next Diff performs a full repaint
func (d *Differ) Invalidate() {
	d.state = StateUninitialized
	d.lastValid = false
	d.cursorValid = false
}

// resize updates baseline dimensions
func (d *Differ) resize(width, height int) {
	size := width * height
	if cap(d.front) < size {
		d.front = make([]Cell, size)
	} else {
		d.front = d.front[:size]
	}
	d.width = width
	d.height = height
}

// Repaint emits the whole frame and stores it as the new baseline
func (d *Differ) Repaint(cells []Cell, width, height int, opts PaintOptions) []byte {
	width, height = max(width, 0), max(height, 0)
	if len(cells) < width*height {
		return nil
	}

	d.buf.Reset()
	w := &d.buf

	if opts.HideCursor {
		w.Write(csiCursorHide)
	}
	if opts.Clear {
		w.Write(csiSGR0)
		w.Write(csiClear)
		d.markReset()
		d.cursorX, d.cursorY, d.cursorValid = 0, 0, true
	} else {
		d.lastValid = false
		d.cursorValid = false
	}

	d.emitRows(w, cells, nil, width, height)

	w.Write(csiSGR0)
	d.markReset()
	if opts.HideCursor {
		w.Write(csiCursorShow)
	}

	d.resize(width, height)
	copy(d.front, cells[:width*height])
	d.state = StateBaseline

	return bytes.Clone(w.Bytes())
}

// Diff emits only the edits from the baseline to cells
// First call, Invalidate, or a dimension change fall back to a cleared Repaint
// Returns nil when nothing visible changed
func (d *Differ) Diff(cells []Cell, width, height int, hideCursor bool) []byte {
	if d.state == StateUninitialized || width != d.width || height != d.height {
		return d.Repaint(cells, width, height, PaintOptions{Clear: true, HideCursor: hideCursor})
	}
	if len(cells) < width*height {
		return nil
	}

	d.buf.Reset()
	w := &d.buf
	d.emitRows(w, cells, d.front, width, height)
	copy(d.front, cells[:width*height])
	d.state = StateDiffing

	if w.Len() == 0 {
		return nil
	}

	out := make([]byte, 0, w.Len()+len(csiSGR0)+len(csiCursorHide)+len(csiCursorShow))
	if hideCursor {
		out = append(out, csiCursorHide...)
	}
	out = append(out, w.Bytes()...)
	out = append(out, csiSGR0...)
	d.markReset()
	if hideCursor {
		out = append(out, csiCursorShow...)
	}
	return out
}

// Encode paints a frame in full without touching screen or cursor visibility
// Uses private state, so it never disturbs a live Differ baseline
func Encode(cells []Cell, width, height int, colorMode ColorMode) []byte {
	width, height = max(width, 0), max(height, 0)
	if len(cells) < width*height {
		return nil
	}
	e := NewDiffer(colorMode)
	w := &e.buf
	e.emitRows(w, cells, nil, width, height)
	w.Write(csiSGR0)
	return bytes.Clone(w.Bytes())
}

// markReset records the terminal as being in SGR 0
func (d *Differ) markReset() {
	d.lastFg = RGB{}
	d.lastBg = RGB{}
	d.lastAttr = AttrDefaultColors
	d.lastValid = true
}

// emitRows writes every cell that differs from front; nil front means every cell
func (d *Differ) emitRows(w *bytes.Buffer, cells, front []Cell, width, height int) {
	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			if front != nil && cells[idx] == front[idx] {
				x++
				continue
			}

			// Never start a run on the trailing half of a wide glyph
			if cells[idx].IsContinuation() && x > 0 && cells[idx-1].Width == 2 {
				x--
			}

			d.moveTo(w, x, y)

			// Write all contiguous dirty cells, emitting style only when changed
			for first := true; x < width; first = false {
				cidx := rowStart + x
				c := cells[cidx]

				if !first && front != nil && c == front[cidx] && !c.IsContinuation() {
					break
				}

				d.writeStyle(w, c.Fg, c.Bg, c.Attrs)
				x += d.writeGlyph(w, c, width-x)
			}
		}
	}
}

// moveTo positions the cursor for the next dirty run
func (d *Differ) moveTo(w *bytes.Buffer, x, y int) {
	if d.cursorValid && x == d.cursorX && y == d.cursorY {
		return
	}
	if d.cursorValid && y == d.cursorY && x > d.cursorX {
		writeCursorForward(w, x-d.cursorX)
	} else {
		writeCursorPos(w, x, y)
	}
	d.cursorX = x
	d.cursorY = y
	d.cursorValid = true
}

// writeGlyph writes one cell and returns how many columns it consumed
// room is the number of columns left on the row
func (d *Differ) writeGlyph(w *bytes.Buffer, c Cell, room int) int {
	advance := 1
	switch {
	case c.IsContinuation():
		// Orphaned continuation (its lead was overwritten): blank it
		w.WriteByte(' ')
	case c.Width == 2 && room >= 2:
		w.WriteString(c.Glyph)
		advance = 2
	case c.Width == 2, c.Glyph == "":
		w.WriteByte(' ')
	default:
		w.WriteString(c.Glyph)
	}

	d.cursorX += advance
	// Cursor parks in the pending-wrap column after the last cell; position becomes unknown
	if advance >= room {
		d.cursorValid = false
	}
	return advance
}

// writeStyle emits a single combined SGR sequence when style changes
func (d *Differ) writeStyle(w *bytes.Buffer, fg, bg RGB, attr Attr) {
	styleAttr := attr & AttrStyle
	attrChanged := !d.lastValid || styleAttr != d.lastAttr&AttrStyle
	fgChanged := !d.lastValid || colorChanged(fg, d.lastFg, attr, d.lastAttr, AttrFg256, AttrFgDefault)
	bgChanged := !d.lastValid || colorChanged(bg, d.lastBg, attr, d.lastAttr, AttrBg256, AttrBgDefault)

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	w.Write(csi)
	sep := false

	// If attributes changed, must reset first; reset also restores default colors
	if attrChanged {
		w.WriteByte('0')
		sep = true
		for _, s := range sgrCodes {
			if styleAttr&s.attr != 0 {
				w.WriteByte(';')
				w.WriteByte(s.code)
			}
		}
		fgChanged = attr&AttrFgDefault == 0
		bgChanged = attr&AttrBgDefault == 0
	}

	if fgChanged {
		if sep {
			w.WriteByte(';')
		}
		d.writeColorParams(w, fg, attr&AttrFgDefault != 0, attr&AttrFg256 != 0, '3')
		sep = true
	}
	if bgChanged {
		if sep {
			w.WriteByte(';')
		}
		d.writeColorParams(w, bg, attr&AttrBgDefault != 0, attr&AttrBg256 != 0, '4')
	}
	w.WriteByte('m')

	d.lastFg = fg
	d.lastBg = bg
	d.lastAttr = attr
	d.lastValid = true
}

// colorChanged compares one color channel including its mode flags
func colorChanged(c, last RGB, attr, lastAttr, flag256, flagDefault Attr) bool {
	mask := flag256 | flagDefault
	if attr&mask != lastAttr&mask {
		return true
	}
	if attr&flagDefault != 0 {
		return false
	}
	return c != last
}

// writeColorParams writes fg ('3') or bg ('4') color parameters (no CSI prefix, no 'm' suffix)
func (d *Differ) writeColorParams(w *bytes.Buffer, c RGB, isDefault, is256 bool, plane byte) {
	w.WriteByte(plane)
	switch {
	case isDefault:
		w.WriteByte('9')
	case is256:
		// 256-color: 38;5;N
		w.WriteString("8;5;")
		writeInt(w, int(c.R))
	case d.colorMode == ColorModeTrueColor:
		// True color: 38;2;R;G;B
		w.WriteString("8;2;")
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
	default:
		// Fallback 256: 38;5;N
		w.WriteString("8;5;")
		writeInt(w, int(RGBTo256(c)))
	}
}
