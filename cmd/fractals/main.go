package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"chosenoffset.com/fractals/internal/app"
	"chosenoffset.com/fractals/internal/config"
	ebitenrender "chosenoffset.com/fractals/internal/render/ebiten"
)

// options are the flags shared by every command.
type options struct {
	configPath string
	pattern    config.Kind
	tps        int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fractals",
		Short: "Draw spirals, Koch snowflakes, Sierpinski triangles and swaying trees",
		Long: `Opens a window showing one fractal pattern. Press 1-6 to switch between
spiral, koch-static, koch-animated, sierpinski, tree-static and tree-animated.
Press Escape to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (.json, .yaml or .toml)")
	flags.VarP(&opts.pattern, "pattern", "p", "pattern to show first")
	flags.IntVar(&opts.tps, "tps", 0, "updates per second")

	root.AddCommand(newSnapshotCmd(opts))
	return root
}

// load reads the config file and applies the flags the user set.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = o.pattern
	}
	if cmd.Flags().Changed("tps") {
		cfg.Window.TPS = o.tps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func windowTitle(cfg *config.Config, kind config.Kind) string {
	return fmt.Sprintf("%s - %s", cfg.Window.Title, kind.Title())
}

func runWindow(cfg *config.Config) error {
	engine := ebitenrender.NewEngine()
	input := ebitenrender.NewInputManager()

	manager, err := app.NewManager(cfg, input)
	if err != nil {
		return err
	}
	manager.SetOnSelect(func(kind config.Kind) {
		engine.SetWindowTitle(windowTitle(cfg, kind))
		log.Printf("Showing %s", kind)
	})

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(windowTitle(cfg, cfg.Pattern))
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Printf("Starting viewer with %s at %d TPS...", cfg.Pattern, cfg.Window.TPS)
	if err := engine.RunGame(manager); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Printf("Viewer closed after %d frames", manager.FrameCount)
	return nil
}
