package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciiwave/internal/config"
	"github.com/san-kum/asciiwave/internal/metrics"
	"github.com/san-kum/asciiwave/internal/render"
	"github.com/san-kum/asciiwave/internal/sim"
	"github.com/san-kum/asciiwave/internal/viz"
)

var (
	configFile string
	preset     string
	mode       string
	frameRate  int
	frames     int
	theme      string
	useTUI     bool
	showStats  bool
)

// main runs two bouncing waves as ASCII art. With no flags it plays the
// reference scene: 1000 frames at 100 fps in 2d mode.
func main() {
	rootCmd := &cobra.Command{
		Use:           "asciiwave",
		Short:         "two bouncing waves rendered as ascii terrain",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWaves,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().StringVar(&mode, "mode", "", "render mode (2d, line)")
	rootCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	rootCmd.Flags().IntVar(&frames, "frames", 0, "number of frames")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme for --tui")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "styled live view")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print run metrics on exit")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump-config [preset]",
		Short: "print a config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if len(args) == 1 {
				if cfg = config.GetPreset(args[0]); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
				}
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	rootCmd.AddCommand(presetsCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWaves(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if useTUI {
		err := viz.Run(ctx, cfg.Scene(), cfg.SimConfig(), cfg.GetPalette(), viz.GetTheme(cfg.Theme))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	r, err := render.New(cfg.Mode, os.Stdout, cfg.GetPalette())
	if err != nil {
		return err
	}
	s := sim.New(cfg.Scene(), r)
	s.AddMetric(metrics.NewPeak())
	s.AddMetric(metrics.NewEnergy())
	s.AddMetric(metrics.NewStability(1.0))
	s.AddMetric(metrics.NewCrossings())

	result, err := s.Run(ctx, cfg.SimConfig())
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}

	if showStats {
		fmt.Fprintf(os.Stderr, "frames: %d\n", result.Frames)
		for _, name := range []string{"peak", "energy", "stability", "crossings"} {
			fmt.Fprintf(os.Stderr, "%-10s %.4f\n", name, result.Metrics[name])
		}
	}
	return nil
}
