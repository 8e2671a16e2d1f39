package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Attr represents text attributes (bitmask)
type Attr uint16

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrStrike    Attr = 1 << 6
	AttrFg256     Attr = 1 << 7  // Fg.R is 256-color palette index
	AttrBg256     Attr = 1 << 8  // Bg.R is 256-color palette index
	AttrFgDefault Attr = 1 << 9  // Fg ignored, terminal default foreground
	AttrBgDefault Attr = 1 << 10 // Bg ignored, terminal default background
)

// AttrStyle masks only the style bits (excludes color mode flags)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrStrike

// AttrDefaultColors selects terminal default foreground and background
const AttrDefaultColors Attr = AttrFgDefault | AttrBgDefault

// Cell represents a single terminal cell
// Width is the display width of Glyph (1 or 2); 0 marks the continuation
// half of a preceding wide glyph, which is never written on its own
type Cell struct {
	Glyph string
	Width uint8
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// BlankCell is a space in terminal default colors
var BlankCell = Cell{Glyph: " ", Width: 1, Attrs: AttrDefaultColors}

// IsContinuation reports whether the cell is the trailing half of a wide glyph
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// ErrNotTerminal is returned by Init when stdin or stdout is not a tty
var ErrNotTerminal = errors.New("not a terminal")

// ErrSinkClosed is returned by writes after Fini/Close
var ErrSinkClosed = errors.New("terminal sink closed")

// Sink accepts finished frame buffers; the diff engine is its only producer
type Sink interface {
	Write(p []byte) error
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// Terminal is a raw-mode tty sink driven by a Backend
type Terminal struct {
	backend  Backend
	resizeCh chan ResizeEvent

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on the platform backend (stdin/stdout)
func New() *Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a Terminal on an explicit backend
func NewWithBackend(b Backend) *Terminal {
	return &Terminal{
		backend:  b,
		resizeCh: make(chan ResizeEvent, 1),
	}
}

// Init enters raw mode, alternate screen buffer, disables auto-wrap
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.backend.SetResizeHandler(func(w, h int) {
		// Non-blocking send; drain and replace to ensure latest size is pending
		select {
		case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
			}
		}
	})

	// Prevents terminal scroll/wrap on bottom-right corner write
	seq := append(append([]byte{}, csiAltScreenEnter...), csiAutoWrapOff...)
	if err := t.backend.Write(seq); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	var seq []byte
	seq = append(seq, csiCursorShow...)
	seq = append(seq, csiAltScreenExit...)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	seq = append(seq, csiAutoWrapOn...)
	seq = append(seq, csiSGR0...)
	t.backend.Write(seq)

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// ResizeChan returns the resize event channel
func (t *Terminal) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// Write hands one finished frame buffer to the backend in a single call
func (t *Terminal) Write(p []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrSinkClosed
	}
	if len(p) == 0 {
		return nil
	}
	if err := t.backend.Write(p); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// Read blocks for raw input bytes until stopCh closes
func (t *Terminal) Read(stopCh <-chan struct{}) ([]byte, error) {
	return t.backend.Read(stopCh)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via termios - escape sequences alone don't restore it
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
