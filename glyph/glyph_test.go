package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClustersWidths(t *testing.T) {
	cs := Default.Clusters("a世é")
	assert.Equal(t, []Cluster{
		{Text: "a", Width: 1},
		{Text: "世", Width: 2},
		{Text: "é", Width: 1},
	}, cs)
}

func TestClustersDropControlAndExpandTab(t *testing.T) {
	cs := Default.Clusters("a\x1b\tb")
	assert.Equal(t, []Cluster{
		{Text: "a", Width: 1},
		{Text: " ", Width: 1},
		{Text: "b", Width: 1},
	}, cs)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Default.Width(""))
	assert.Equal(t, 5, Default.Width("HELLO"))
	assert.Equal(t, 4, Default.Width("日本"))
	assert.Equal(t, 2, Default.Width("👍"))
}

func TestEastAsianAmbiguous(t *testing.T) {
	// U+00B1 PLUS-MINUS SIGN is ambiguous width
	assert.Equal(t, 1, NewMeasurer(false).Width("±"))
	assert.Equal(t, 2, NewMeasurer(true).Width("±"))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"space break", "hello world", 5, []string{"hello", "world"}},
		{"prefer last space", "ab cd ef", 5, []string{"ab", "cd ef"}},
		{"hard break", "HELLOWORLD", 5, []string{"HELLO", "WORLD"}},
		{"wide never split", "世界x", 3, []string{"世", "界x"}},
		{"newline", "a\nb", 5, []string{"a", "b"}},
		{"empty", "", 4, []string{""}},
		{"trailing space dropped", "ab ", 2, []string{"ab"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Wrap(tt.in, tt.width))
		})
	}

	assert.Nil(t, Default.Wrap("abc", 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "HELLO", Default.Truncate("HELLOWORLD", 5, ""))
	assert.Equal(t, "HELL…", Default.Truncate("HELLOWORLD", 5, "…"))
	assert.Equal(t, "short", Default.Truncate("short", 5, "…"))
	assert.Equal(t, "a", Default.Truncate("a世", 2, ""), "wide cluster that does not fit is dropped")
	assert.Equal(t, "", Default.Truncate("abc", 0, ""))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 4, Default.MaxWidth([]string{"ab", "日本", "x"}))
}
