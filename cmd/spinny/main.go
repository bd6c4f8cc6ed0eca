package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Jurkyy/spinny-cube/internal/config"
	"github.com/Jurkyy/spinny-cube/internal/engine"
	"github.com/Jurkyy/spinny-cube/internal/logging"
	"github.com/Jurkyy/spinny-cube/internal/shape"
	"github.com/Jurkyy/spinny-cube/internal/tui"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

var (
	configFile string
	preset     string
	theme      string
	logLevel   string
	width      int
	height     int
	density    float64
	frameDelay time.Duration
	// bench only
	benchFrames int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "spinny",
		Short:        "spinning ascii shapes in your terminal",
		SilenceUsage: true,
		RunE:         runAnimation,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "showcase", "use preset configuration")
	flags.StringVar(&theme, "theme", viz.ThemePlain.Name, "color theme")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.IntVar(&width, "width", config.DefaultScreenWidth, "screen width in columns")
	flags.IntVar(&height, "height", config.DefaultScreenHeight, "screen height in rows")
	flags.Float64Var(&density, "density", config.DefaultDensity, "sample spacing on each surface")
	flags.DurationVar(&frameDelay, "delay", config.DefaultFrameDelay, "pause between frames")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "full screen view with live stats",
		RunE:  runTUI,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "render frames without pacing and report timings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 500, "number of frames")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
			}
		},
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list shape kinds usable in a config file",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range shape.Kinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", k)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	rootCmd.AddCommand(tuiCmd, benchCmd, presetsCmd, shapesCmd, configCmd)
	return rootCmd
}

// loadConfig applies the preset, then the config file, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		fileCfg, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Screen.Width = width
	}
	if flags.Changed("height") {
		cfg.Screen.Height = height
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("delay") {
		cfg.FrameDelay = frameDelay
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, *zap.SugaredLogger, error) {
	log, err := logging.New(logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("bad log level %q: %w", logLevel, err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log.Debugw("config loaded", "preset", preset, "file", configFile, "shapes", len(cfg.Shapes))
	return cfg, log, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	restore, err := tui.EnableANSI(os.Stdout)
	if err != nil {
		log.Warnw("continuing without console mode", "error", err)
	}
	defer restore()

	if ok, cols, rows := tui.Fits(os.Stdout, cfg.Screen.Width, cfg.Screen.Height); !ok {
		log.Warnw("terminal smaller than frame, output will scroll",
			"cols", cols, "rows", rows, "width", cfg.Screen.Width, "height", cfg.Screen.Height)
	}

	d, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return d.Run(ctx, tui.NewLiveRenderer(os.Stdout, viz.GetTheme(cfg.Theme)))
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	d, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		return err
	}
	return tui.Run(d, viz.GetTheme(cfg.Theme))
}

func runBench(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		preset = args[0]
	}
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", benchFrames)
	}
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	d, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s (%d shapes, %d frames)...\n", preset, len(cfg.Shapes), benchFrames)

	samples := make([]float64, benchFrames)
	var points, plotted int
	start := time.Now()
	for i := range samples {
		t0 := time.Now()
		info := d.Step()
		elapsed := time.Since(t0)
		d.RecordFrame(elapsed)

		samples[i] = float64(elapsed) / float64(time.Millisecond)
		points += info.Points
		plotted += info.Plotted
	}
	total := time.Since(start)
	stats := d.Stats()

	graph := asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frame time (ms)"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames:\t%d\n", stats.Frames)
	fmt.Fprintf(w, "total:\t%v\n", total)
	fmt.Fprintf(w, "avg frame:\t%v\n", stats.Average())
	fmt.Fprintf(w, "fps:\t%.1f\n", float64(stats.Frames)/total.Seconds())
	fmt.Fprintf(w, "points/frame:\t%d\n", points/benchFrames)
	fmt.Fprintf(w, "plotted/frame:\t%d\n", plotted/benchFrames)
	return w.Flush()
}
