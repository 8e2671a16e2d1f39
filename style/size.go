package style

import "strconv"

// SizeKind tells how a Size resolves against available space
type SizeKind uint8

const (
	SizeAuto SizeKind = iota
	SizeCells
	SizePercent
)

// Size is an explicit length or Auto for content sizing
type Size struct {
	Kind  SizeKind
	Value int
}

// Auto sizes from content
func Auto() Size { return Size{} }

// Cells is a fixed cell count
func Cells(n int) Size { return Size{Kind: SizeCells, Value: n} }

// Percent is a share of the available space, floored
func Percent(p int) Size { return Size{Kind: SizePercent, Value: p} }

// IsAuto reports whether the size depends on content
func (s Size) IsAuto() bool {
	return s.Kind == SizeAuto
}

// Resolve converts the size to cells; ok is false for Auto
func (s Size) Resolve(avail int) (int, bool) {
	switch s.Kind {
	case SizeCells:
		return max(s.Value, 0), true
	case SizePercent:
		if avail <= 0 {
			return 0, true
		}
		return max(avail*s.Value/100, 0), true
	default:
		return 0, false
	}
}

func (s Size) String() string {
	switch s.Kind {
	case SizeCells:
		return strconv.Itoa(s.Value)
	case SizePercent:
		return strconv.Itoa(s.Value) + "%"
	default:
		return "auto"
	}
}

// TrackKind distinguishes fixed from fractional grid tracks
type TrackKind uint8

const (
	TrackCells TrackKind = iota
	TrackFr
)

// Track is one grid column or row size
type Track struct {
	Kind  TrackKind
	Value int
}

// FixedTrack is a track of exactly n cells
func FixedTrack(n int) Track { return Track{Kind: TrackCells, Value: n} }

// Fr is a track sharing leftover space with weight w
func Fr(w int) Track { return Track{Kind: TrackFr, Value: w} }

// IsFr reports whether the track is fractional
func (t Track) IsFr() bool {
	return t.Kind == TrackFr
}

func (t Track) String() string {
	if t.Kind == TrackFr {
		return strconv.Itoa(t.Value) + "fr"
	}
	return strconv.Itoa(t.Value)
}
