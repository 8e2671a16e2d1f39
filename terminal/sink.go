package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// WriterSink adapts any io.Writer; each frame is a single Write call
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write forwards the frame and reports short writes
func (s *WriterSink) Write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := s.w.Write(p)
	if err != nil {
		return fmt.Errorf("sink write: %w", err)
	}
	if n != len(p) {
		return fmt.Errorf("sink write: %w", io.ErrShortWrite)
	}
	return nil
}

// CaptureSink records frames in memory for headless runs and tests
type CaptureSink struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
	err    error
}

// NewCaptureSink creates an empty capture
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Write stores a copy of the frame
func (s *CaptureSink) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, bytes.Clone(p))
	return nil
}

// FailWith makes subsequent writes return err
func (s *CaptureSink) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Close rejects further writes
func (s *CaptureSink) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Frames returns a snapshot of every captured frame in order
func (s *CaptureSink) Frames() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.frames))
	copy(out, s.frames)
	return out
}

// Last returns the most recent frame, nil if none
func (s *CaptureSink) Last() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Bytes returns all frames concatenated
func (s *CaptureSink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Join(s.frames, nil)
}

// Text returns all captured output with escape sequences stripped
func (s *CaptureSink) Text() string {
	return ansi.Strip(string(s.Bytes()))
}
