package render

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a line-oriented diff of want against got, empty when they match
// Removed lines are prefixed "- ", added lines "+ ", unchanged lines "  "
func TextDiff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// ChangedCells counts cells that differ between two frames
// Frames of different size count every cell of b as changed
func ChangedCells(a, b *Frame) int {
	if a == nil || b == nil || a.Width != b.Width || a.Height != b.Height {
		if b == nil {
			return 0
		}
		return len(b.Cells)
	}
	n := 0
	for i := range b.Cells {
		if a.Cells[i] != b.Cells[i] {
			n++
		}
	}
	return n
}
