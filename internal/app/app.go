// Package app implements the application layer for generate_text.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.trai.ch/texcache/internal/adapters/cas"   //nolint:depguard // Store is built per run from config
	"go.trai.ch/texcache/internal/adapters/latex" //nolint:depguard // Renderer is built per run from config
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.Scanner
	runner       ports.ToolRunner
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.Scanner,
	runner ports.ToolRunner,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		runner:       runner,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer used for listings.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions configuration for the Run and List methods.
type RunOptions struct {
	// ConfigPath is the YAML configuration file.
	ConfigPath string
	// ConfigExplicit is set when the user named the config file; it must then exist.
	ConfigExplicit bool
	// CacheDir overrides the configured cache directory when not empty.
	CacheDir string
}

// Run renders every annotation found in files that is not cached yet.
// The first failure aborts the run.
func (a *App) Run(ctx context.Context, files []string, opts RunOptions) error {
	// 1. Load the configuration
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	// 2. Prepare the cache before scanning
	store := cas.NewStore(cfg.CacheDir)
	if err := store.Init(); err != nil {
		return err
	}
	renderer := latex.NewRenderer(a.runner, a.logger, cfg)

	// 3. Render annotations in input order
	var total, rendered, cached int
	for ann, err := range a.scanner.Scan(files) {
		if err != nil {
			return err
		}
		total++

		digest := ann.Digest()
		a.logger.Info(digest.String() + " " + ann.Text)

		ok, err := store.Has(digest)
		if err != nil {
			return err
		}
		if ok {
			cached++
			continue
		}

		if err := renderer.Render(ctx, ann.Text, store.Entry(digest)); err != nil {
			return zerr.With(
				zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", ann.Path),
				"line", strconv.Itoa(ann.Line),
			)
		}
		rendered++
	}

	// 4. Summary
	a.logger.Info(fmt.Sprintf("%d annotations, %d rendered, %d cached", total, rendered, cached))
	return nil
}

// List prints the materialized cache entries, one per line.
func (a *App) List(_ context.Context, opts RunOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	entries, err := cas.NewStore(cfg.CacheDir).List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(a.out, "%s  %s\n", e.Digest, e.ImagePath()); err != nil {
			return zerr.Wrap(err, "failed to write listing")
		}
	}
	return nil
}

func (a *App) loadConfig(opts RunOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path, opts.ConfigExplicit)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
