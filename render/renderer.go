package render

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/termframe/glyph"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/terminal"
)

// Options configures a Renderer
type Options struct {
	ColorMode   terminal.ColorMode
	Interactive bool            // hide the cursor around RenderDiff updates
	Table       *style.Table    // default tag styles; nil uses the built-in table
	Measurer    *glyph.Measurer // nil uses glyph.Default
	Logger      *zerolog.Logger // nil disables logging
}

// Renderer coordinates the pipeline for one output surface: layout, paint, diff
// It owns the diff baseline, so it is single-owner and not safe for concurrent use
type Renderer struct {
	width       int
	height      int
	interactive bool
	colorMode   terminal.ColorMode

	engine     *layout.Engine
	compositor *Compositor
	differ     *terminal.Differ
	log        zerolog.Logger
}

// New creates a renderer for a width×height surface
func New(width, height int, opts Options) *Renderer {
	table := opts.Table
	if table == nil {
		table = style.DefaultTable()
	}
	m := opts.Measurer
	if m == nil {
		m = glyph.Default
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Renderer{
		width:       max(width, 0),
		height:      max(height, 0),
		interactive: opts.Interactive,
		colorMode:   opts.ColorMode,
		engine:      layout.NewEngine(table, m),
		compositor:  NewCompositor(table, m),
		differ:      terminal.NewDiffer(opts.ColorMode),
		log:         log,
	}
}

// Size returns the surface dimensions
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// State returns the diff engine state
func (r *Renderer) State() terminal.DiffState {
	return r.differ.State()
}

// Engine returns the layout engine sharing this renderer's style table
func (r *Renderer) Engine() *layout.Engine {
	return r.engine
}

// Layout computes the layout of el over the whole surface
func (r *Renderer) Layout(el *layout.Element) *layout.Layout {
	return r.engine.ComputeLayout(el, layout.Rect{Width: r.width, Height: r.height})
}

// Compose paints l into a fresh frame without producing output
func (r *Renderer) Compose(l *layout.Layout) *Frame {
	return r.compositor.Paint(l, r.width, r.height)
}

// Render emits a full interactive paint: clear, cursor hidden for the update, every cell
// The painted frame becomes the diff baseline
func (r *Renderer) Render(l *layout.Layout) []byte {
	f := r.Compose(l)
	out := r.differ.Repaint(f.Cells, f.Width, f.Height, terminal.PaintOptions{Clear: true, HideCursor: true})
	r.log.Debug().Int("width", f.Width).Int("height", f.Height).Int("bytes", len(out)).Msg("full repaint")
	return out
}

// RenderOffscreen paints every cell without clear or cursor visibility sequences
// The diff baseline is left untouched
func (r *Renderer) RenderOffscreen(l *layout.Layout) []byte {
	f := r.Compose(l)
	return terminal.Encode(f.Cells, f.Width, f.Height, r.colorMode)
}

// RenderDiff emits the edits from the previous frame; a full repaint when there is no baseline
// Returns an empty buffer when nothing changed
func (r *Renderer) RenderDiff(l *layout.Layout) []byte {
	f := r.Compose(l)
	before := r.differ.State()
	out := r.differ.Diff(f.Cells, f.Width, f.Height, r.interactive)
	if before == terminal.StateUninitialized {
		r.log.Debug().Int("width", f.Width).Int("height", f.Height).Int("bytes", len(out)).Msg("baseline repaint")
	} else {
		r.log.Trace().Int("bytes", len(out)).Msg("diff")
	}
	return out
}

// OnResize adopts new surface dimensions and forces the next RenderDiff to repaint in full
func (r *Renderer) OnResize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.differ.Invalidate()
	r.log.Debug().Int("width", r.width).Int("height", r.height).Msg("resize, baseline invalidated")
}

// Flush hands one finished buffer to the sink; empty buffers are skipped.
// A failed write leaves the screen unknown, so the baseline is invalidated and
// the next RenderDiff repaints in full.
func (r *Renderer) Flush(sink terminal.Sink, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := sink.Write(buf); err != nil {
		r.differ.Invalidate()
		r.log.Error().Err(err).Int("bytes", len(buf)).Msg("sink write failed, baseline invalidated")
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
