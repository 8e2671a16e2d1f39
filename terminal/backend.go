package terminal

// Backend is the platform tty beneath Terminal. Terminal owns locking and the
// closed state; a Backend only moves bytes and reports geometry.
type Backend interface {
	// Init switches the input side to raw mode
	Init() error
	// Fini restores the mode saved by Init and stops resize watching
	Fini()

	Size() (width, height int)

	// Write emits one frame buffer
	Write(p []byte) error

	// Read returns the next chunk of raw input, or nil, nil once stopCh closes or input ends
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler starts delivering window size changes; repeated calls are ignored
	SetResizeHandler(handler func(width, height int))
}
