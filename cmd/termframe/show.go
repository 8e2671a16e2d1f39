package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/render"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/terminal"
)

func newShowCmd(a *app) *cobra.Command {
	var reload time.Duration

	cmd := &cobra.Command{
		Use:   "show <scene>",
		Short: "Display a scene in the terminal until q or Esc",
		Long: `Show takes over the terminal, draws the scene with a status line, and redraws
with minimal updates on resize. With --reload the scene file is polled and
redrawn when it changes. Keys: r reloads, Ctrl-L redraws, q or Esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("show: stdout: %w", terminal.ErrNotTerminal)
			}
			return a.show(cmd.Context(), args[0], reload)
		},
	}

	cmd.Flags().DurationVar(&reload, "reload", 0, "poll the scene file for changes at this interval")
	return cmd
}

// viewer owns the scene being shown and builds full-surface layouts for it
// Only the command goroutine touches it; the session receives finished layouts
type viewer struct {
	engine  *layout.Engine
	path    string
	el      *layout.Element
	modTime time.Time
	width   int
	height  int
}

// layout places the scene above a one-line status bar
func (v *viewer) layout(stats render.SessionStats) *layout.Layout {
	full := layout.Rect{Width: v.width, Height: v.height}
	body, status := layout.SplitVFixed(full, max(v.height-1, 0))

	root := &layout.Layout{Rect: full, Styles: style.New()}
	root.Children = append(root.Children, v.engine.ComputeLayout(v.el, body))
	if status.Height > 0 {
		line := fmt.Sprintf(" %s  %dx%d  frames %d  dropped %d  r reload  q quit",
			filepath.Base(v.path), v.width, v.height, stats.Frames, stats.Dropped)
		root.Children = append(root.Children, v.engine.ComputeLayout(&layout.Element{Tag: "footer", Content: line}, status))
	}
	return root
}

// refresh reloads the scene when forced or when the file changed since the last load
func (v *viewer) refresh(a *app, force bool) (bool, error) {
	info, err := os.Stat(v.path)
	if err != nil {
		return false, err
	}
	if !force && !info.ModTime().After(v.modTime) {
		return false, nil
	}
	el, err := loadElement(a, v.path)
	if err != nil {
		return false, err
	}
	v.el = el
	v.modTime = info.ModTime()
	return true, nil
}

// keyAction is what the show loop does in response to input
type keyAction uint8

const (
	actionNone keyAction = iota
	actionQuit
	actionReload
	actionRedraw
)

// actionFor maps one raw read to the strongest action it contains
func actionFor(b []byte) keyAction {
	act := actionNone
	for _, ev := range terminal.ParseKeys(b) {
		switch {
		case ev.Key == terminal.KeyEscape && !ev.Alt, ev.Key == terminal.KeyCtrlC, ev.Key == terminal.KeyCtrlD,
			ev.Key == terminal.KeyRune && ev.Rune == 'q' && !ev.Alt:
			return actionQuit
		case ev.Key == terminal.KeyCtrlR, ev.Key == terminal.KeyRune && ev.Rune == 'r':
			act = max(act, actionReload)
		case ev.Key == terminal.KeyCtrlL:
			act = max(act, actionRedraw)
		}
	}
	return act
}

func (a *app) show(ctx context.Context, path string, reload time.Duration) (err error) {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			err = fmt.Errorf("show crashed: %v\n%s", r, debug.Stack())
		}
	}()

	w, h := term.Size()
	r := a.renderer(w, h, true)
	sess := render.NewSession(r, term)
	v := &viewer{engine: r.Engine(), path: path, width: w, height: h}
	if _, err := v.refresh(a, true); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	stop := make(chan struct{})
	defer close(stop)
	keys := make(chan []byte, 16)
	go func() {
		defer close(keys)
		for {
			b, err := term.Read(stop)
			if err != nil || b == nil {
				return
			}
			select {
			case keys <- b:
			case <-stop:
				return
			}
		}
	}()

	var tick <-chan time.Time
	if reload > 0 {
		t := time.NewTicker(reload)
		defer t.Stop()
		tick = t.C
	}

	submit := func() error {
		return sess.Submit(v.layout(sess.Stats()))
	}
	if err := submit(); err != nil {
		return err
	}

	for {
		select {
		case err := <-done:
			return err

		case ev := <-term.ResizeChan():
			v.width, v.height = ev.Width, ev.Height
			if err := sess.Resize(ev.Width, ev.Height); err != nil {
				return <-done
			}
			a.log.Debug().Int("width", ev.Width).Int("height", ev.Height).Msg("terminal resized")
			if err := submit(); err != nil {
				return <-done
			}

		case b, ok := <-keys:
			if !ok {
				cancel()
				return <-done
			}
			switch actionFor(b) {
			case actionQuit:
				cancel()
				return <-done
			case actionReload:
				if _, err := v.refresh(a, true); err != nil {
					a.log.Warn().Err(err).Str("scene", path).Msg("reload failed, keeping previous scene")
				}
			case actionRedraw:
				// Same size resize drops the diff baseline
				if err := sess.Resize(v.width, v.height); err != nil {
					return <-done
				}
			case actionNone:
				continue
			}
			if err := submit(); err != nil {
				return <-done
			}

		case <-tick:
			changed, err := v.refresh(a, false)
			if err != nil {
				a.log.Warn().Err(err).Str("scene", path).Msg("reload failed, keeping previous scene")
				continue
			}
			if changed {
				a.log.Info().Str("scene", path).Msg("scene reloaded")
				if err := submit(); err != nil {
					return <-done
				}
			}
		}
	}
}
