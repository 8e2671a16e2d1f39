package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/termframe/style"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []int
		want    []int
	}{
		{"even", 40, []int{1, 1, 2}, []int{10, 10, 20}},
		{"remainder to last", 41, []int{1, 1, 2}, []int{10, 10, 21}},
		{"remainder thirds", 10, []int{1, 1, 1}, []int{3, 3, 4}},
		{"two left over", 11, []int{1, 1, 1}, []int{3, 4, 4}},
		{"skips zero weight", 11, []int{1, 0, 1}, []int{5, 0, 6}},
		{"last weighted absorbs", 7, []int{1, 1, 0}, []int{3, 4, 0}},
		{"no weights", 10, []int{0, 0}, []int{0, 0}},
		{"nothing to share", 0, []int{1, 2}, []int{0, 0}},
		{"negative total", -5, []int{1}, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.total, tt.weights)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistributeConservesTotal(t *testing.T) {
	for total := 0; total < 60; total++ {
		got := Distribute(total, []int{3, 1, 4, 1, 5})
		sum := 0
		for _, v := range got {
			sum += v
		}
		assert.Equal(t, total, sum, "total %d", total)
	}
}

func TestResolveTracks(t *testing.T) {
	assert.Equal(t, []int{20, 20},
		ResolveTracks([]style.Track{style.Fr(1), style.Fr(1)}, 41, 1))
	assert.Equal(t, []int{20, 21},
		ResolveTracks([]style.Track{style.Fr(1), style.Fr(1)}, 42, 1))
	assert.Equal(t, []int{10, 8, 18},
		ResolveTracks([]style.Track{style.FixedTrack(10), style.Fr(1), style.Fr(2)}, 40, 2))
}

func TestResolveTracksFixedOverflowCollapsesFr(t *testing.T) {
	got := ResolveTracks([]style.Track{style.FixedTrack(30), style.Fr(1), style.FixedTrack(20)}, 40, 0)
	assert.Equal(t, []int{30, 0, 20}, got)

	got = ResolveTracks([]style.Track{style.Fr(2), style.Fr(1)}, 1, 5)
	assert.Equal(t, []int{0, 0}, got)
}

func TestSplit(t *testing.T) {
	cols := SplitH(Rect{X: 2, Y: 1, Width: 10, Height: 3}, 1, 1, 1)
	assert.Equal(t, []Rect{
		{X: 2, Y: 1, Width: 3, Height: 3},
		{X: 5, Y: 1, Width: 3, Height: 3},
		{X: 8, Y: 1, Width: 4, Height: 3},
	}, cols)

	rows := SplitV(Rect{Width: 4, Height: 9}, 1, 2)
	assert.Equal(t, Rect{Y: 3, Width: 4, Height: 6}, rows[1])

	left, right := SplitHFixed(Rect{Width: 10, Height: 2}, 14)
	assert.Equal(t, 10, left.Width)
	assert.Equal(t, 0, right.Width)

	assert.Equal(t, Rect{X: 4, Y: 2, Width: 2, Height: 1}, CenterRect(Rect{Width: 10, Height: 5}, 2, 1))
}
