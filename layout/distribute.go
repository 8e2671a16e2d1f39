package layout

import "github.com/lixenwraith/termframe/style"

// Distribute splits total cells by weight using integer arithmetic
// Each share is floored; leftover cells go one at a time to weighted entries
// starting from the last and moving backwards. Zero or negative weights get nothing
func Distribute(total int, weights []int) []int {
	out := make([]int, len(weights))
	if total <= 0 {
		return out
	}

	sum := 0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum == 0 {
		return out
	}

	assigned := 0
	for i, w := range weights {
		if w > 0 {
			out[i] = total * w / sum
			assigned += out[i]
		}
	}

	rem := total - assigned
	for rem > 0 {
		for i := len(weights) - 1; i >= 0 && rem > 0; i-- {
			if weights[i] > 0 {
				out[i]++
				rem--
			}
		}
	}
	return out
}

// ResolveTracks sizes grid tracks along one axis
// Fixed tracks take their size first; the rest, minus (n-1)*gap, is shared by Fr weight.
// When fixed tracks and gaps exceed avail, Fr tracks collapse to zero
func ResolveTracks(tracks []style.Track, avail, gap int) []int {
	n := len(tracks)
	sizes := make([]int, n)
	if n == 0 {
		return sizes
	}
	gap = max(gap, 0)

	fixed := 0
	weights := make([]int, n)
	for i, t := range tracks {
		if t.IsFr() {
			weights[i] = t.Value
			continue
		}
		sizes[i] = max(t.Value, 0)
		fixed += sizes[i]
	}

	remain := max(avail-fixed-gap*(n-1), 0)
	shares := Distribute(remain, weights)
	for i, t := range tracks {
		if t.IsFr() {
			sizes[i] = shares[i]
		}
	}
	return sizes
}

// trackOffsets returns the start offset of each track
func trackOffsets(sizes []int, gap int) []int {
	offs := make([]int, len(sizes))
	pos := 0
	for i, s := range sizes {
		offs[i] = pos
		pos += s + max(gap, 0)
	}
	return offs
}

// spanSize returns the extent of count tracks starting at first, including inner gaps
func spanSize(sizes []int, first, count, gap int) int {
	total := 0
	end := min(first+count, len(sizes))
	for i := first; i < end; i++ {
		total += sizes[i]
	}
	if end-first > 1 {
		total += (end - first - 1) * max(gap, 0)
	}
	return total
}
