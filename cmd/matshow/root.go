// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gogpu/matshow"
	"github.com/gogpu/matshow/integration/gogpuview"
	"github.com/gogpu/matshow/internal/config"
	"github.com/gogpu/matshow/internal/watch"
)

// cli holds the state shared by all commands of one invocation.
type cli struct {
	configPath string
	verbose    bool
	flags      config.Config // flag values, applied only when set
	cfg        *config.Config
	logger     *zap.Logger

	// newDisplay opens the window display; replaced in tests.
	newDisplay func() matshow.Display
	// buildLogger creates the process logger; replaced in tests.
	buildLogger func(zapcore.Level) (*zap.Logger, error)
}

func newCLI() *cli {
	return &cli{
		newDisplay:  func() matshow.Display { return gogpuview.NewWindow() },
		buildLogger: productionLogger,
	}
}

func productionLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// execute runs cmd and flushes the logger whether or not the command failed.
func (c *cli) execute(ctx context.Context, cmd *cobra.Command) error {
	defer c.syncLogger()
	return cmd.ExecuteContext(ctx)
}

func (c *cli) syncLogger() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

// command builds the root command and its subcommands around c.
func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "matshow [path]",
		Short: "Display a numeric matrix as a grayscale image",
		Long: `matshow reads a text file with one matrix row per line, values separated
by whitespace, and shows it as a grayscale image: 0 is black, 1 is white,
values outside [vmin, vmax] are clamped. The window stays open until closed.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runShow,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "matshow.yaml", "configuration file")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&c.flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.Float64Var(&c.flags.VMin, "vmin", 0, "value drawn as black")
	pf.Float64Var(&c.flags.VMax, "vmax", 1, "value drawn as white")

	f := root.Flags()
	f.StringVarP(&c.flags.Output, "output", "o", "", "write the image to a .png, .bmp or .tiff file instead of opening a window")
	f.BoolVarP(&c.flags.Watch, "watch", "w", false, "reload the matrix when the file changes")
	f.StringVar(&c.flags.Debounce, "debounce", "", "delay before reloading after a change")
	f.IntVar(&c.flags.CellSize, "cell-size", 0, "pixels per matrix cell (0 = automatic)")
	f.StringVar(&c.flags.Title, "title", "", "window title")
	f.StringVar(&c.flags.Colormap, "colormap", "", "colormap (gray)")
	f.StringVar(&c.flags.Interpolation, "interpolation", "", "interpolation (none)")

	root.AddCommand(
		newSymmetryCmd(c),
		newInfoCmd(c),
		newGenCmd(c),
	)
	return root
}

// setup loads the configuration, applies flags and positional path, and
// initializes logging.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	load := config.Load
	if cmd.Flags().Changed("config") {
		load = config.LoadRequired
	}
	cfg, err := load(c.configPath)
	if err != nil {
		return err
	}
	c.applyFlags(cmd, cfg)
	if len(args) > 0 {
		cfg.Path = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.Level()
	if c.verbose {
		level = zapcore.DebugLevel
	}
	logger, err := c.buildLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	matshow.SetLogger(logger)
	return nil
}

func (c *cli) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Lookup(name) != nil && fs.Changed(name) {
			apply()
		}
	}
	set("log-level", func() { cfg.LogLevel = c.flags.LogLevel })
	set("vmin", func() { cfg.VMin = c.flags.VMin })
	set("vmax", func() { cfg.VMax = c.flags.VMax })
	set("output", func() { cfg.Output = c.flags.Output })
	set("watch", func() { cfg.Watch = c.flags.Watch })
	set("debounce", func() { cfg.Debounce = c.flags.Debounce })
	set("cell-size", func() { cfg.CellSize = c.flags.CellSize })
	set("title", func() { cfg.Title = c.flags.Title })
	set("colormap", func() { cfg.Colormap = c.flags.Colormap })
	set("interpolation", func() { cfg.Interpolation = c.flags.Interpolation })
}

// display returns the headless file display when an output is configured,
// otherwise a window.
func (c *cli) display() matshow.Display {
	if c.cfg.Output != "" {
		return matshow.FileDisplay{Path: c.cfg.Output}
	}
	return c.newDisplay()
}

func (c *cli) runShow(cmd *cobra.Command, _ []string) error {
	m, err := matshow.Load(c.cfg.Path)
	if err != nil {
		return err
	}
	r := matshow.NewRenderer(c.display(), c.cfg.Options()...)
	if !c.cfg.Watch {
		return r.Render(m)
	}

	debounce, err := c.cfg.DebounceDuration()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	updates, err := watch.Watch(ctx, c.cfg.Path, debounce)
	if err != nil {
		return err
	}
	return r.RenderUpdates(ctx, m, updates)
}
