package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/config"
	"orrery/internal/telemetry"
)

var (
	cfgFile  string
	v        = viper.New()
	snapOut  string
	snapTick uint64
)

var rootCmd = &cobra.Command{
	Use:           "orrery",
	Short:         "Interactive 3D solar system",
	Long:          "Orrery renders the sun, eight planets and a starfield in a desktop window.\nDrag to orbit, scroll to zoom, click a planet for details.",
	Version:       buildinfo.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		metrics := startMetrics(ctx, cfg)

		return hal.RunWindow(func(h hal.HAL) func() error {
			return app.NewWithConfig(h, appConfig(cfg, metrics))
		}, hal.WindowConfig{
			Title:  "Orrery",
			Width:  cfg.Width,
			Height: cfg.Height,
			Scale:  cfg.Scale,
			TPS:    cfg.TPS,
		})
	},
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation without a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		metrics := startMetrics(ctx, cfg)
		if metrics == nil {
			metrics = telemetry.New()
		}
		acfg := appConfig(cfg, metrics)
		acfg.LogFPS = true

		err = hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.NewWithConfig(h, acfg)
		}, hal.HeadlessConfig{
			Hz:     cfg.Hz,
			Ticks:  cfg.Ticks,
			Width:  cfg.Width,
			Height: cfg.Height,
			OnExit: func(h hal.HAL) error {
				h.Logger().WriteLineString("orrery: frame time " + metrics.Summary().String())
				return nil
			},
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Step the simulation headless and write the final frame as PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		if snapTick == 0 {
			return fmt.Errorf("snapshot: --frames must be positive")
		}

		return hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
			return app.NewWithConfig(h, appConfig(cfg, nil))
		}, hal.HeadlessConfig{
			Hz:          cfg.Hz,
			Ticks:       snapTick,
			Width:       cfg.Width,
			Height:      cfg.Height,
			Unthrottled: true,
			OnExit: func(h hal.HAL) error {
				return writeSnapshot(snapOut, h.Display().Framebuffer())
			},
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./orrery.yaml or $HOME/.orrery/orrery.yaml)")
	pf.Int("width", 0, "framebuffer width")
	pf.Int("height", 0, "framebuffer height")
	pf.Int("scale", 0, "initial window scale")
	pf.Int("tps", 0, "window ticks per second")
	pf.String("theme", "", "initial theme (dark|light)")
	pf.String("render-mode", "", "mesh rasterization (flat|smooth|wireframe)")
	pf.Int("stars", 0, "starfield size")
	pf.Uint64("seed", 0, "starfield seed")
	pf.Int("hz", 0, "headless tick rate")
	pf.Uint64("ticks", 0, "stop headless runs after N ticks (0 = until interrupted)")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	for _, key := range []string{"width", "height", "scale", "tps", "theme", "stars", "seed", "hz", "ticks"} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}
	_ = v.BindPFlag("render_mode", pf.Lookup("render-mode"))
	_ = v.BindPFlag("metrics_addr", pf.Lookup("metrics-addr"))

	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "orrery.png", "PNG output path")
	snapshotCmd.Flags().Uint64Var(&snapTick, "frames", 120, "frames to step before capturing")

	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := config.Init(v, cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func appConfig(cfg config.Config, m *telemetry.Metrics) app.Config {
	return app.Config{
		Theme:      cfg.ThemeValue(),
		RenderMode: cfg.RenderModeValue(),
		Stars:      cfg.Stars,
		Seed:       cfg.Seed,
		Metrics:    m,
	}
}

// startMetrics serves /metrics in the background when an address is configured.
func startMetrics(ctx context.Context, cfg config.Config) *telemetry.Metrics {
	if cfg.MetricsAddr == "" {
		return nil
	}
	m := telemetry.New()
	go func() {
		if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()
	return m
}

func writeSnapshot(path string, fb hal.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := hal.WritePNG(f, fb); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
