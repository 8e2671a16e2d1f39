package layout

import "github.com/lixenwraith/termframe/style"

// GridConfig describes a grid container's tracks
// Missing tracks up to ColumnCount/RowCount are filled with Fr(1); rows also grow as items need them
type GridConfig struct {
	Columns     []style.Track
	Rows        []style.Track
	ColumnGap   int
	RowGap      int
	ColumnCount int
	RowCount    int
}

// GridItem is one child to place; spans of 0 mean 1
type GridItem struct {
	ID         string
	ColumnSpan int
	RowSpan    int
}

// GridCell is the zero-based track position of a placed item
type GridCell struct {
	Column     int `json:"column"`
	Row        int `json:"row"`
	ColumnSpan int `json:"column_span"`
	RowSpan    int `json:"row_span"`
}

// GridPlacement binds an item to its cell and rect
type GridPlacement struct {
	ID   string   `json:"id"`
	Rect Rect     `json:"rect"`
	Cell GridCell `json:"cell"`
}

// GridConfigFromStyle extracts the container parameters from a computed style
func GridConfigFromStyle(st *style.ComputedStyles) GridConfig {
	return GridConfig{
		Columns:     st.Columns,
		Rows:        st.Rows,
		ColumnGap:   st.ColumnGap,
		RowGap:      st.RowGap,
		ColumnCount: st.ColumnCount,
		RowCount:    st.RowCount,
	}
}

func (c GridConfig) columnTracks() []style.Track {
	return padTracks(c.Columns, max(c.ColumnCount, 1))
}

func (c GridConfig) rowTracks(needed int) []style.Track {
	return padTracks(c.Rows, max(c.RowCount, needed))
}

func padTracks(tracks []style.Track, count int) []style.Track {
	out := make([]style.Track, 0, max(len(tracks), count))
	out = append(out, tracks...)
	for len(out) < count {
		out = append(out, style.Fr(1))
	}
	return out
}

// ComputeGrid sizes the tracks over container and places items in source order
// Each item takes the first free position scanning rows top to bottom, columns left to right
func ComputeGrid(cfg GridConfig, container Rect, items []GridItem) []GridPlacement {
	container = container.Normalized()
	cols := cfg.columnTracks()
	cells, usedRows := placeItems(items, len(cols))
	rows := cfg.rowTracks(usedRows)

	colSizes := ResolveTracks(cols, container.Width, cfg.ColumnGap)
	rowSizes := ResolveTracks(rows, container.Height, cfg.RowGap)
	colOffs := trackOffsets(colSizes, cfg.ColumnGap)
	rowOffs := trackOffsets(rowSizes, cfg.RowGap)

	out := make([]GridPlacement, len(items))
	for i, it := range items {
		c := cells[i]
		r := Rect{
			X:      container.X + colOffs[c.Column],
			Y:      container.Y + rowOffs[c.Row],
			Width:  spanSize(colSizes, c.Column, c.ColumnSpan, cfg.ColumnGap),
			Height: spanSize(rowSizes, c.Row, c.RowSpan, cfg.RowGap),
		}
		out[i] = GridPlacement{ID: it.ID, Rect: r.Intersect(container), Cell: c}
	}
	return out
}

// placeItems assigns grid cells and returns how many rows are occupied
func placeItems(items []GridItem, ncols int) ([]GridCell, int) {
	cells := make([]GridCell, len(items))
	var occupied [][]bool

	free := func(row, col, cs, rs int) bool {
		for r := row; r < row+rs; r++ {
			if r >= len(occupied) {
				return true
			}
			for c := col; c < col+cs; c++ {
				if occupied[r][c] {
					return false
				}
			}
		}
		return true
	}

	usedRows := 0
	for i, it := range items {
		cs := min(max(it.ColumnSpan, 1), ncols)
		rs := max(it.RowSpan, 1)

	search:
		for row := 0; ; row++ {
			for col := 0; col+cs <= ncols; col++ {
				if !free(row, col, cs, rs) {
					continue
				}
				for len(occupied) < row+rs {
					occupied = append(occupied, make([]bool, ncols))
				}
				for r := row; r < row+rs; r++ {
					for c := col; c < col+cs; c++ {
						occupied[r][c] = true
					}
				}
				cells[i] = GridCell{Column: col, Row: row, ColumnSpan: cs, RowSpan: rs}
				usedRows = max(usedRows, row+rs)
				break search
			}
		}
	}
	return cells, usedRows
}

// grid places children through ComputeGrid and insets each cell by the child's margin
func (e *Engine) grid(children []Element, styles []style.ComputedStyles, parent *style.ComputedStyles, content Rect) []Rect {
	rects := make([]Rect, len(children))
	items, index := gridItems(children, styles)

	for k, p := range ComputeGrid(GridConfigFromStyle(parent), content, items) {
		i := index[k]
		rects[i] = e.gridChildRect(&children[i], &styles[i], p.Rect)
	}
	for i := range styles {
		if styles[i].Display == style.DisplayNone {
			rects[i] = Rect{X: content.X, Y: content.Y}
		}
	}
	return rects
}

// gridChildRect fits a child into its cell; explicit sizes shrink it from the cell's top-left
func (e *Engine) gridChildRect(el *Element, st *style.ComputedStyles, cell Rect) Rect {
	r := cell.Inset(st.Margin)
	if w, ok := st.Width.Resolve(r.Width); ok {
		r.Width = min(w, r.Width)
	}
	if h, ok := st.Height.Resolve(r.Height); ok {
		r.Height = min(h, r.Height)
	}
	r.Width = min(st.ClampWidth(r.Width), cell.Width)
	r.Height = min(st.ClampHeight(r.Height), cell.Height)
	return r
}

func gridItems(children []Element, styles []style.ComputedStyles) ([]GridItem, []int) {
	items := make([]GridItem, 0, len(children))
	index := make([]int, 0, len(children))
	for i := range children {
		st := &styles[i]
		if st.Display == style.DisplayNone {
			continue
		}
		items = append(items, GridItem{
			ID:         children[i].ID,
			ColumnSpan: st.ColumnSpanOrOne(),
			RowSpan:    st.RowSpanOrOne(),
		})
		index = append(index, i)
	}
	return items, index
}

// gridContentSize measures the rows a grid needs at innerW
// Fixed row tracks keep their size; other rows take their tallest single-row item
func (e *Engine) gridContentSize(children []Element, styles []style.ComputedStyles, parent *style.ComputedStyles, innerW int) (int, int) {
	cfg := GridConfigFromStyle(parent)
	cols := cfg.columnTracks()
	items, index := gridItems(children, styles)
	cells, usedRows := placeItems(items, len(cols))
	rows := cfg.rowTracks(usedRows)

	colSizes := ResolveTracks(cols, innerW, cfg.ColumnGap)
	heights := make([]int, len(rows))
	for i, t := range rows {
		if !t.IsFr() {
			heights[i] = max(t.Value, 0)
		}
	}
	for k, c := range cells {
		if c.RowSpan != 1 || !rows[c.Row].IsFr() {
			continue
		}
		i := index[k]
		st := &styles[i]
		m := st.Margin.Clamped()
		w := max(spanSize(colSizes, c.Column, c.ColumnSpan, cfg.ColumnGap)-m.Horizontal(), 0)
		heights[c.Row] = max(heights[c.Row], e.heightFor(&children[i], st, w, 0)+m.Vertical())
	}

	h := 0
	for _, rh := range heights {
		h += rh
	}
	if len(rows) > 1 {
		h += max(cfg.RowGap, 0) * (len(rows) - 1)
	}

	w := 0
	for _, t := range cols {
		if t.IsFr() {
			return innerW, h
		}
		w += max(t.Value, 0)
	}
	if len(cols) > 1 {
		w += max(cfg.ColumnGap, 0) * (len(cols) - 1)
	}
	return w, h
}
