package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jkingslake/gridsweep"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
	"github.com/jkingslake/gridsweep/internal/hclgrid"
)

// App encapsulates the CLI's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *hclgrid.Loader
}

// NewApp constructs the application with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr),
		config: cfg,
		loader: hclgrid.NewLoader(),
	}
}

// Run loads the sweep file, executes the sweep, and writes the dataset.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	sw, err := a.loader.LoadFile(ctx, a.config.SweepPath)
	if err != nil {
		return err
	}

	workers := sw.Workers
	if a.config.Workers != 0 {
		workers = a.config.Workers
	}

	opts := []gridsweep.Option{
		gridsweep.WithProgress(a.progress(sw.Set.Size())),
	}
	if workers != 0 {
		opts = append(opts, gridsweep.WithWorkers(workers))
	}
	if a.config.Graph {
		opts = append(opts, gridsweep.WithGraph())
	}

	a.logger.Info("sweep starting",
		"sweep", sw.Name,
		"command", sw.Command,
		"combinations", sw.Set.Size(),
		"workers", workers,
	)

	out, err := gridsweep.Sweep(ctx, commandFunc(sw.Command, sw.Args), sw.Set, opts...)
	if err != nil {
		return fmt.Errorf("app: sweep %q: %w", sw.Name, err)
	}
	a.logger.Info("sweep complete", "sweep", sw.Name, "vars", out.VarNames())

	return a.write(out)
}

// progress logs completion at info level every time another tenth of the
// sweep finishes, and always for the final combination.
func (a *App) progress(total int) gridsweep.Progress {
	step := total / 10
	if step == 0 {
		step = 1
	}
	return func(completed, total int) {
		if completed%step == 0 || completed == total {
			a.logger.Info("progress", "completed", completed, "total", total)
		}
	}
}

// write encodes the dataset as indented JSON to the configured destination.
func (a *App) write(out json.Marshaler) error {
	w := a.outW
	if a.config.OutputPath != "" {
		f, err := os.Create(a.config.OutputPath)
		if err != nil {
			return fmt.Errorf("app: creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("app: writing output: %w", err)
	}
	return nil
}
