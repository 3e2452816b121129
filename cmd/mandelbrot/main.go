package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/mandelbrot"
	"github.com/bft-labs/mandelbrot/internal/cliconfig"
	pkglog "github.com/bft-labs/mandelbrot/pkg/log"
	"github.com/bft-labs/mandelbrot/plugins/watcher"
)

const helpDescription = `
Render the Mandelbrot set over a rectangular window of the complex plane
and write it to a PNG file.

The four positional arguments are the output file, the image size as
WIDTHxHEIGHT, and the window's upper-left and lower-right corners as RE,IM.
Any of them may instead come from a TOML scene file (--config) or from
MANDELBROT_* environment variables; positional arguments win over both.

With --watch the process stays alive and re-renders whenever the scene
file changes.
`

var exampleUsage = strings.TrimSpace(`
  mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20
  mandelbrot --config scene.toml --watch
  mandelbrot --workers 16 mandel.png 4000x3000 -2.5,1.5 1.5,-1.5
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "mandelbrot [FILE PIXELS UPPERLEFT LOWERRIGHT]",
		Short:   "Render the Mandelbrot set to a PNG image",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    argCount,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Determine config path (default ~/.mandelbrot/config.toml)
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Load scene file first, then env, then positional arguments
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			applyArgs(&cfg, args)

			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Watch && (cfgFile == "" || !cliconfig.FileExists(cfgFile)) {
				return fmt.Errorf("--watch requires a scene file (--config)")
			}

			log.Info().
				Str("out", cfg.Out).
				Str("pixels", cfg.Size).
				Str("upper_left", cfg.UpperLeft).
				Str("lower_right", cfg.LowerRight).
				Int("workers", cfg.Workers).
				Int("iterations", cfg.Iterations).
				Msg("configuration")

			logger := pkglog.NewZerologAdapterWithLogger(log)
			pipeline := mandelbrot.New(
				mandelbrot.WithWorkers(cfg.Workers),
				mandelbrot.WithLogger(logger),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			job := mandelbrot.Job{Grid: cfg.Grid, Window: cfg.Window, Limit: cfg.Iterations}
			if err := pipeline.RenderFile(ctx, job, cfg.Out); err != nil {
				return err
			}

			if !cfg.Watch {
				return nil
			}

			// Watch mode: reload the scene file and re-render on every change.
			rerender := func(ctx context.Context) error {
				next := cliconfig.DefaultConfig()
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("reload config: %w", err)
				}
				cliconfig.ApplyFileConfig(&next, fc, changed)
				if err := cliconfig.ApplyEnvConfig(&next, changed); err != nil {
					return err
				}
				applyArgs(&next, args)
				if err := next.Validate(); err != nil {
					return err
				}
				job := mandelbrot.Job{Grid: next.Grid, Window: next.Window, Limit: next.Iterations}
				return pipeline.RenderFile(ctx, job, next.Out)
			}

			w := watcher.New(cfgFile, rerender, watcher.WithLogger(logger))
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info().Msg("received signal, stopping...")
			return nil
		},
	}

	// Corner arguments start with '-' (e.g. -1.20,0.35); stop flag parsing at
	// the first positional so they are not mistaken for flags.
	root.Flags().SetInterspersed(false)

	root.Flags().StringVar(&cfgPath, "config", "", "path to scene file (default: $HOME/.mandelbrot/config.toml)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel render bands")
	root.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "escape-time iteration limit (1-255)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the scene file changes")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("mandelbrot")
		os.Exit(1)
	}
}

// argCount accepts zero arguments (scene fully specified by file/env) or all
// four; anything in between is a usage error.
func argCount(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 4 {
		return fmt.Errorf("expected FILE PIXELS UPPERLEFT LOWERRIGHT (or no arguments with --config), got %d arguments", len(args))
	}
	return nil
}

// applyArgs overlays the four positional arguments onto the config.
// Arguments always win: they are the most explicit source.
func applyArgs(cfg *cliconfig.Config, args []string) {
	if len(args) != 4 {
		return
	}
	cfg.Out = args[0]
	cfg.Size = args[1]
	cfg.UpperLeft = args[2]
	cfg.LowerRight = args[3]
}
