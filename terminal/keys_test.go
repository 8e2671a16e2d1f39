package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []KeyEvent
	}{
		{"runes", "qr", []KeyEvent{{Key: KeyRune, Rune: 'q'}, {Key: KeyRune, Rune: 'r'}}},
		{"utf8", "é", []KeyEvent{{Key: KeyRune, Rune: 'é'}}},
		{"lone escape", "\x1b", []KeyEvent{{Key: KeyEscape}}},
		{"ctrl-c", "\x03", []KeyEvent{{Key: KeyCtrlC}}},
		{"enter", "\r", []KeyEvent{{Key: KeyEnter}}},
		{"backspace", "\x7f", []KeyEvent{{Key: KeyBackspace}}},
		{"arrow csi", "\x1b[A\x1b[D", []KeyEvent{{Key: KeyUp}, {Key: KeyLeft}}},
		{"arrow ss3", "\x1bOB", []KeyEvent{{Key: KeyDown}}},
		{"modified arrow", "\x1b[1;5C", []KeyEvent{{Key: KeyRight}}},
		{"page keys", "\x1b[5~\x1b[6;2~", []KeyEvent{{Key: KeyPageUp}, {Key: KeyPageDown}}},
		{"alt rune", "\x1bx", []KeyEvent{{Key: KeyRune, Rune: 'x', Alt: true}}},
		{"unknown csi dropped", "\x1b[99zq", []KeyEvent{{Key: KeyRune, Rune: 'q'}}},
		{"unterminated csi", "\x1b[12", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeys([]byte(tt.in)))
		})
	}
}
