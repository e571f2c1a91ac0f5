package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"pixel-garden/internal/garden"
	"pixel-garden/internal/sweep"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		steps      int
		cols, rows int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and plot population over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			t, err := cfg.Resolve()
			if err != nil {
				return err
			}
			s := cfg.Seed
			if s == 0 {
				s = time.Now().UnixNano()
			}
			if cols <= 0 {
				cols = ceilDiv(cfg.Width, t.CellSize)
			}
			if rows <= 0 {
				rows = ceilDiv(cfg.Height, t.CellSize)
			}
			res := sweep.Simulate(commandContext(cmd), sweep.Scenario{Tuning: t, Seed: s, Cols: cols, Rows: rows, Steps: steps})
			if res.Err != nil {
				return res.Err
			}

			out := cmd.OutOrStdout()
			data := make([]float64, len(res.History))
			for i, n := range res.History {
				data[i] = float64(n)
			}
			fmt.Fprintln(out, asciigraph.Plot(data,
				asciigraph.Height(12),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("population, %s %dx%d seed %d", t.Name, cols, rows, s))))
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "steps\t%d\n", steps)
			fmt.Fprintf(w, "peak\t%d\n", res.Peak)
			fmt.Fprintf(w, "trough\t%d\n", res.Trough)
			fmt.Fprintf(w, "final\t%d\n", res.Final)
			fmt.Fprintf(w, "extinct steps\t%d\n", res.Extinctions)
			for _, k := range garden.Kinds() {
				if n := res.Census[k]; n > 0 {
					fmt.Fprintf(w, "%s\t%d\n", k, n)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 500, "transitions to simulate")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (default from config width)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (default from config height)")
	return cmd
}

func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// commandContext returns the command context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
