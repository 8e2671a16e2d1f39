//go:build !unix

package terminal

import (
	"os"
)

// stdoutBackend writes to stdout without raw mode or resize detection
type stdoutBackend struct{}

func newBackend() Backend {
	return stdoutBackend{}
}

func (stdoutBackend) Init() error {
	return ErrNotTerminal
}

func (stdoutBackend) Fini() {}

func (stdoutBackend) Size() (int, int) {
	return 80, 24
}

func (stdoutBackend) Write(p []byte) error {
	_, err := os.Stdout.Write(p)
	return err
}

func (stdoutBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	<-stopCh
	return nil, nil
}

func (stdoutBackend) SetResizeHandler(func(width, height int)) {}

func resetTerminalMode() {}
