package main

import (
	"fmt"
	"text/tabwriter"

	"pixel-garden/internal/config"
	"pixel-garden/internal/garden"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTuningsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tunings",
		Short: "list the preset tunings",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "name\tcell\tinterval\tseeding\tbirth\tspawn")
			for _, name := range garden.PresetNames() {
				t, _ := garden.Preset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d-%d\t%s\n", name, t.CellSize, t.UpdateInterval, t.Seeding, t.BirthMin, t.BirthMax, t.Spawn)
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show [name]",
			Short: "print a tuning as YAML, with --set overrides applied",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					cfg.Tuning = args[0]
				}
				t, err := cfg.Resolve()
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(t)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "save <name> <path>",
			Short: "write a tuning to a YAML file for editing",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				cfg.Tuning = args[0]
				cfg.TuningFile = ""
				t, err := cfg.Resolve()
				if err != nil {
					return err
				}
				return garden.SaveTuning(args[1], t)
			},
		},
	)
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage run config files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "write a config file with the current flags applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := cfg.Resolve(); err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	})
	return cmd
}
