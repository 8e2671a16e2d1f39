package terminal

import (
	"strings"
	"unicode/utf8"
)

// Key identifies a decoded key press
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // printable character in KeyEvent.Rune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
	KeyCtrlR
)

// KeyEvent is one decoded key press
type KeyEvent struct {
	Key  Key
	Rune rune
	Alt  bool
}

// ParseKeys decodes one raw read from a tty in raw mode
// A trailing ESC with nothing after it is a standalone Escape press; unknown sequences are dropped
func ParseKeys(data []byte) []KeyEvent {
	var out []KeyEvent
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b >= 0x20 && b < 0x7f:
			out = append(out, KeyEvent{Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			n, ev := parseEscape(data[i:])
			if ev.Key != KeyNone {
				out = append(out, ev)
			}
			i += n

		case b == 0x7f:
			out = append(out, KeyEvent{Key: KeyBackspace})
			i++

		case b < 0x20:
			if ev := parseControl(b); ev.Key != KeyNone {
				out = append(out, ev)
			}
			i++

		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				out = append(out, KeyEvent{Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return out
}

// parseEscape decodes a sequence starting at ESC and returns bytes consumed
func parseEscape(data []byte) (int, KeyEvent) {
	if len(data) < 2 {
		return 1, KeyEvent{Key: KeyEscape}
	}
	switch c := data[1]; {
	case c == 0x1b:
		return 2, KeyEvent{Key: KeyEscape, Alt: true}
	case c == '[':
		return parseCSI(data)
	case c == 'O':
		if len(data) < 3 {
			return 2, KeyEvent{}
		}
		return 3, KeyEvent{Key: ss3Keys[data[2]]}
	case c >= 0x20 && c < 0x7f:
		return 2, KeyEvent{Key: KeyRune, Rune: rune(c), Alt: true}
	case c < 0x20:
		ev := parseControl(c)
		ev.Alt = true
		return 2, ev
	}
	return 1, KeyEvent{Key: KeyEscape}
}

var ss3Keys = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft, 'H': KeyHome, 'F': KeyEnd,
}

var csiTilde = map[string]Key{
	"1": KeyHome, "7": KeyHome, "4": KeyEnd, "8": KeyEnd,
	"3": KeyDelete, "5": KeyPageUp, "6": KeyPageDown,
}

// parseCSI consumes ESC [ params final; modifiers are ignored
func parseCSI(data []byte) (int, KeyEvent) {
	end := 2
	for end < len(data) && end < 16 {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			params := string(data[2 : end-1])
			if b == '~' {
				params, _, _ = strings.Cut(params, ";")
				return end, KeyEvent{Key: csiTilde[params]}
			}
			return end, KeyEvent{Key: ss3Keys[b]}
		}
	}
	// Unterminated: drop what was read
	return end, KeyEvent{}
}

func parseControl(b byte) KeyEvent {
	switch b {
	case 0x03:
		return KeyEvent{Key: KeyCtrlC}
	case 0x04:
		return KeyEvent{Key: KeyCtrlD}
	case 0x08:
		return KeyEvent{Key: KeyBackspace}
	case 0x09:
		return KeyEvent{Key: KeyTab}
	case 0x0a, 0x0d:
		return KeyEvent{Key: KeyEnter}
	case 0x0c:
		return KeyEvent{Key: KeyCtrlL}
	case 0x12:
		return KeyEvent{Key: KeyCtrlR}
	case 0x1b:
		return KeyEvent{Key: KeyEscape}
	}
	return KeyEvent{}
}
