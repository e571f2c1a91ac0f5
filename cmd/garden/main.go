package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"pixel-garden/internal/app"
	"pixel-garden/internal/config"
	"pixel-garden/internal/garden"
	"pixel-garden/internal/term"
	"pixel-garden/internal/tui"

	"github.com/spf13/cobra"
)

var (
	configFile string
	tuningName string
	tuningFile string
	seed       int64
	fps        int
	overrides  []string
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "garden",
		Short:        "generative cellular pixel garden",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "run config file (yaml)")
	flags.StringVar(&tuningName, "tuning", config.DefaultTuning, fmt.Sprintf("preset tuning %v", garden.PresetNames()))
	flags.StringVar(&tuningFile, "tuning-file", "", "tuning file (yaml), overrides --tuning")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	flags.StringArrayVar(&overrides, "set", nil, "tuning override in key=value form (repeatable)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "window",
			Short: "open the garden in a resizable window (requires the ebiten build tag)",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return app.Run(cfg)
			},
		},
		&cobra.Command{
			Use:   "term",
			Short: "draw the garden directly on the terminal",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				return term.Run(ctx, cfg)
			},
		},
		&cobra.Command{
			Use:   "tui",
			Short: "run the garden as an interactive terminal UI",
			RunE:  rootCmd.RunE,
		},
		newSnapshotCmd(),
		newStatsCmd(),
		newSweepCmd(),
		newTuningsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadConfig reads --config when given and lets explicitly set flags win
// over the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("tuning") || cfg.Tuning == "" {
		cfg.Tuning = tuningName
	}
	if flags.Changed("tuning-file") {
		cfg.TuningFile = tuningFile
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	parsed, err := garden.ParseOverrides(overrides)
	if err != nil {
		return nil, err
	}
	for k, v := range parsed {
		cfg.Set(k, v)
	}
	return cfg, nil
}
