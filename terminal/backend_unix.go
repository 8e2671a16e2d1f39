//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	readPollMillis = 50
	readChunk      = 512
)

type unixBackend struct {
	in, out *os.File
	saved   *term.State
	buf     []byte

	winchStop chan struct{}
	winchDone chan struct{}
}

func newBackend() Backend {
	return &unixBackend{in: os.Stdin, out: os.Stdout, buf: make([]byte, readChunk)}
}

func (b *unixBackend) inFd() int  { return int(b.in.Fd()) }
func (b *unixBackend) outFd() int { return int(b.out.Fd()) }

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd()) || !term.IsTerminal(b.outFd()) {
		return ErrNotTerminal
	}
	st, err := term.MakeRaw(b.inFd())
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.saved = st
	return nil
}

func (b *unixBackend) Fini() {
	if b.winchStop != nil {
		close(b.winchStop)
		<-b.winchDone
		b.winchStop, b.winchDone = nil, nil
	}
	if b.saved != nil {
		_ = term.Restore(b.inFd(), b.saved)
		b.saved = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd(), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) Write(p []byte) error {
	for len(p) > 0 {
		n, err := b.out.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Read polls so a closed stopCh is noticed within readPollMillis
func (b *unixBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd()), Events: unix.POLLIN}}
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		ready, err := unix.Poll(fds, readPollMillis)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("poll input: %w", err)
		}
		if ready == 0 {
			continue
		}

		n, err := unix.Read(b.inFd(), b.buf)
		switch {
		case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
			continue
		case err != nil:
			return nil, fmt.Errorf("read input: %w", err)
		case n == 0:
			return nil, nil
		}
		out := make([]byte, n)
		copy(out, b.buf[:n])
		return out, nil
	}
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	if b.winchStop != nil {
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	b.winchStop, b.winchDone = stop, done

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		defer close(done)
		defer signal.Stop(sig)
		for {
			select {
			case <-stop:
				return
			case <-sig:
				handler(b.Size())
			}
		}
	}()
}

// resetTerminalMode forces canonical echo mode back on the controlling tty
// when the saved state from Init is unavailable
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	tio, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	tio.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Iflag |= unix.ICRNL
	_ = unix.IoctlSetTermios(fd, ioctlSetTermios, tio)
}
