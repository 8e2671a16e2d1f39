// Package glyph measures text in terminal cells
// Text is handled as grapheme clusters; each cluster occupies one or two cells
package glyph

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one user-perceived character and its cell width
type Cluster struct {
	Text  string
	Width int // 1 or 2
}

// Measurer computes display widths under one East Asian width policy
type Measurer struct {
	cond *runewidth.Condition
}

// NewMeasurer creates a measurer; eastAsian treats ambiguous-width runes as wide
func NewMeasurer(eastAsian bool) *Measurer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Measurer{cond: cond}
}

// Default measures with ambiguous runes as narrow
var Default = NewMeasurer(false)

// ClusterWidth returns the cell width of a single grapheme cluster, 0 for non-printing
func (m *Measurer) ClusterWidth(c string) int {
	if c == "" {
		return 0
	}
	if c == "\t" {
		return 1
	}
	w := m.cond.StringWidth(c)
	if w <= 0 {
		// Lone combining marks and other zero-width clusters
		return 0
	}
	return min(w, 2)
}

// Clusters splits s into printable clusters; zero-width clusters are dropped and tabs become spaces
func (m *Measurer) Clusters(s string) []Cluster {
	if s == "" {
		return nil
	}
	out := make([]Cluster, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c := g.Str()
		w := m.ClusterWidth(c)
		if w == 0 {
			continue
		}
		if c == "\t" {
			c = " "
		}
		out = append(out, Cluster{Text: c, Width: w})
	}
	return out
}

// Width returns the display width of a single line
func (m *Measurer) Width(s string) int {
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		n += m.ClusterWidth(g.Str())
	}
	return n
}

// Truncate cuts s to at most width cells at a cluster boundary
// tail (such as "…") replaces the last cells when the line is cut and fits
func (m *Measurer) Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if m.Width(s) <= width {
		return s
	}
	tailW := m.Width(tail)
	if tailW > width {
		tail, tailW = "", 0
	}

	var b strings.Builder
	used := 0
	for _, c := range m.Clusters(s) {
		if used+c.Width > width-tailW {
			break
		}
		b.WriteString(c.Text)
		used += c.Width
	}
	b.WriteString(tail)
	return b.String()
}

// Lines splits on newlines without wrapping
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// Wrap breaks s into lines of at most width cells
// Breaks prefer the last space on the line and fall back to a hard break between clusters
// Explicit newlines always break
func (m *Measurer) Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range Lines(s) {
		lines = append(lines, m.wrapLine(para, width)...)
	}
	return lines
}

func (m *Measurer) wrapLine(s string, width int) []string {
	clusters := m.Clusters(s)
	if len(clusters) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i := 0; i < len(clusters); i++ {
		c := clusters[i]

		if lineW+c.Width > width && i > lineStart {
			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}
			lines = append(lines, joinClusters(clusters[lineStart:wrapAt]))

			// Skip the space at the break point
			if wrapAt < len(clusters) && clusters[wrapAt].Text == " " {
				wrapAt++
			}
			lineStart = wrapAt
			lastSpace = -1
			lineW = 0
			i = wrapAt - 1
			continue
		}

		if c.Text == " " {
			lastSpace = i
		}
		lineW += c.Width
	}

	if lineStart < len(clusters) {
		lines = append(lines, joinClusters(clusters[lineStart:]))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func joinClusters(cs []Cluster) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.Text)
	}
	return b.String()
}

// MaxWidth returns the widest line's width
func (m *Measurer) MaxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, m.Width(l))
	}
	return w
}
