package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/render/raster"
)

// Snapshot renders the pattern of the given kind after ticks updates into an
// offscreen canvas the size of the configured window.
func Snapshot(ctx context.Context, cfg *config.Config, kind config.Kind, ticks int) (*raster.Canvas, error) {
	c := *cfg
	c.Pattern = kind

	m, err := NewManager(&c, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := m.Update(); err != nil {
			return nil, err
		}
	}

	canvas := raster.NewCanvas(c.Window.Width, c.Window.Height)
	m.Draw(canvas)
	return canvas, nil
}

// SnapshotAll writes one PNG per pattern kind into dir, rendering them in
// parallel. It returns the written paths in AllKinds order.
func SnapshotAll(ctx context.Context, cfg *config.Config, ticks int, dir string) ([]string, error) {
	kinds := config.AllKinds()
	paths := make([]string, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			canvas, err := Snapshot(ctx, cfg, kind, ticks)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			path := filepath.Join(dir, kind.String()+".png")
			if err := canvas.SavePNG(path); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			log.Printf("Saved %s", path)
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
