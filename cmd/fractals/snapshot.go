package main

import (
	"log"

	"github.com/spf13/cobra"

	"chosenoffset.com/fractals/internal/app"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		ticks int
		out   string
		all   bool
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a pattern offscreen and save it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if all {
				paths, err := app.SnapshotAll(ctx, cfg, ticks, dir)
				if err != nil {
					return err
				}
				log.Printf("Saved %d snapshots to %s", len(paths), dir)
				return nil
			}

			log.Printf("Rendering %s after %d ticks...", cfg.Pattern, ticks)
			canvas, err := app.Snapshot(ctx, cfg, cfg.Pattern, ticks)
			if err != nil {
				return err
			}
			if err := canvas.SavePNG(out); err != nil {
				return err
			}
			log.Printf("Snapshot saved to %q", out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "t", 300, "updates to run before drawing")
	cmd.Flags().StringVarP(&out, "out", "o", "fractal.png", "output PNG file")
	cmd.Flags().BoolVar(&all, "all", false, "render every pattern")
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory for --all")
	return cmd
}
