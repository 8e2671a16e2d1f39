package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termframe/config"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/logging"
	"github.com/lixenwraith/termframe/render"
	"github.com/lixenwraith/termframe/scene"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/terminal"
)

// app holds state shared by subcommands once the root pre-run has loaded config
type app struct {
	configPath string
	logLevel   string
	colorMode  string
	width      int
	height     int
	eastAsian  bool

	cfg    *config.Config
	table  *style.Table
	log    zerolog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "termframe",
		Short: "Lay out and render element trees to terminal output",
		Long: `termframe computes box, flex, and grid layouts for element trees described in
YAML or TOML scene files and renders them as ANSI output, either as a full
offscreen paint or as minimal diffs against a live terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closer != nil {
				a.closer.Close()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default searches $XDG_CONFIG_HOME/termframe)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.colorMode, "color", "", "color mode: auto, truecolor, 256")
	flags.IntVar(&a.width, "width", 0, "surface width, overrides the scene and config")
	flags.IntVar(&a.height, "height", 0, "surface height, overrides the scene and config")
	flags.BoolVar(&a.eastAsian, "east-asian", false, "treat ambiguous-width characters as wide")

	root.AddCommand(
		newRenderCmd(a),
		newLayoutCmd(a),
		newDiffCmd(a),
		newShowCmd(a),
	)
	return root
}

// setup loads config, applies flag overrides, and starts logging
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("color") {
		cfg.ColorMode = a.colorMode
	}
	if flags.Changed("east-asian") {
		cfg.EastAsianWidth = a.eastAsian
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	a.closer = closer
	a.log = logging.Component("cli")

	table, err := cfg.StyleTable()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.table = table

	log.Debug().Str("command", cmd.Name()).Str("config", cfg.Source).Msg("command started")
	return nil
}

// surface picks the output size: explicit flags, then the scene, then config
func (a *app) surface(cmd *cobra.Command, s *scene.Scene) (int, int) {
	w, h := s.Size(a.cfg.Width, a.cfg.Height)
	if cmd.Flags().Changed("width") {
		w = a.width
	}
	if cmd.Flags().Changed("height") {
		h = a.height
	}
	return w, h
}

// renderer builds a renderer sharing the app's table, measurer, and color mode
func (a *app) renderer(w, h int, interactive bool) *render.Renderer {
	logger := logging.Component("render")
	return render.New(w, h, render.Options{
		ColorMode:   a.cfg.ColorModeValue(),
		Interactive: interactive,
		Table:       a.table,
		Measurer:    a.cfg.Measurer(),
		Logger:      &logger,
	})
}

// loadScene decodes path and prepares a renderer sized for it
func (a *app) loadScene(cmd *cobra.Command, path string, interactive bool) (*render.Renderer, *scene.Scene, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	w, h := a.surface(cmd, s)
	if w < 0 || h < 0 {
		return nil, nil, fmt.Errorf("surface size %dx%d is negative", w, h)
	}
	return a.renderer(w, h, interactive), s, nil
}

// isTerminal reports whether w is a tty
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// sinkFor wraps the command output as a frame sink
func sinkFor(cmd *cobra.Command) terminal.Sink {
	return terminal.NewWriterSink(cmd.OutOrStdout())
}

// loadElement decodes path and builds its element tree
func loadElement(a *app, path string) (*layout.Element, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	el, err := s.Element(a.table)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return el, nil
}
