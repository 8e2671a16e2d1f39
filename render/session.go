package render

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/terminal"
)

// ErrSessionClosed is returned by Submit and Resize once Run has exited
var ErrSessionClosed = errors.New("render session closed")

// SessionStats counts session activity
type SessionStats struct {
	Frames  uint64 // renders whose output reached the sink
	Dropped uint64 // layouts replaced before they were rendered
	Resizes uint64
}

// Session serializes all rendering for one Renderer onto a single goroutine
// Producers submit layouts from any goroutine; only the most recent pending layout is rendered
type Session struct {
	r    *Renderer
	sink terminal.Sink
	log  zerolog.Logger

	pending chan *layout.Layout
	resize  chan terminal.ResizeEvent

	mu      sync.Mutex
	running bool
	closed  bool

	frames  atomic.Uint64
	dropped atomic.Uint64
	resizes atomic.Uint64
}

// NewSession wraps r; the session becomes the renderer's only caller
func NewSession(r *Renderer, sink terminal.Sink) *Session {
	return &Session{
		r:       r,
		sink:    sink,
		log:     r.log.With().Str("component", "session").Logger(),
		pending: make(chan *layout.Layout, 1),
		resize:  make(chan terminal.ResizeEvent, 1),
	}
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Submit queues l for rendering, replacing any layout still pending
// Never blocks
func (s *Session) Submit(l *layout.Layout) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	for {
		select {
		case s.pending <- l:
			return nil
		default:
		}
		// Drain old, send new
		select {
		case <-s.pending:
			s.dropped.Add(1)
		default:
		}
	}
}

// Resize queues a dimension change applied before the next render
// Pending resizes coalesce to the latest
func (s *Session) Resize(width, height int) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	ev := terminal.ResizeEvent{Width: width, Height: height}
	for {
		select {
		case s.resize <- ev:
			return nil
		default:
		}
		select {
		case <-s.resize:
		default:
		}
	}
}

// Stats returns a snapshot of the session counters
func (s *Session) Stats() SessionStats {
	return SessionStats{
		Frames:  s.frames.Load(),
		Dropped: s.dropped.Load(),
		Resizes: s.resizes.Load(),
	}
}

// Run renders submitted layouts until ctx is cancelled or the sink fails
// Returns nil on cancellation and the wrapped sink error otherwise; the session is closed afterwards
func (s *Session) Run(ctx context.Context) (err error) {
	s.mu.Lock()
	if s.running || s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error().Interface("panic", rec).Bytes("stack", debug.Stack()).Msg("render session crashed")
			err = fmt.Errorf("render session panic: %v", rec)
		}
		s.mu.Lock()
		s.running = false
		s.closed = true
		s.mu.Unlock()
	}()

	for {
		// Resize takes priority so no frame is diffed against stale dimensions
		select {
		case ev := <-s.resize:
			s.applyResize(ev)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.resize:
			s.applyResize(ev)
		case l := <-s.pending:
			if err := s.render(l); err != nil {
				return err
			}
		}
	}
}

func (s *Session) applyResize(ev terminal.ResizeEvent) {
	s.r.OnResize(ev.Width, ev.Height)
	s.resizes.Add(1)
}

func (s *Session) render(l *layout.Layout) error {
	out := s.r.RenderDiff(l)
	if err := s.r.Flush(s.sink, out); err != nil {
		return fmt.Errorf("render session: %w", err)
	}
	if len(out) > 0 {
		s.frames.Add(1)
	}
	return nil
}
