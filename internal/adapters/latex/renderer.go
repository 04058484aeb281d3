package latex

import (
	"context"
	"os"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Renderer turns annotation text into a cached image.
type Renderer struct {
	runner    ports.ToolRunner
	logger    ports.Logger
	toolchain domain.Toolchain
	document  domain.DocumentOptions
}

// NewRenderer creates a Renderer using the given tools.
func NewRenderer(runner ports.ToolRunner, logger ports.Logger, cfg *domain.Config) *Renderer {
	return &Renderer{
		runner:    runner,
		logger:    logger,
		toolchain: cfg.Toolchain,
		document:  cfg.Document,
	}
}

// Render writes the LaTeX source for text, compiles it and rasterizes the
// result, all inside entry.Dir. Each step runs only if the previous one
// succeeded. Intermediate files are left in place.
func (r *Renderer) Render(ctx context.Context, text string, entry domain.CacheEntry) error {
	r.logger.Info("Writing tex file " + entry.SourcePath())
	//nolint:gosec // path is derived from the cache root and a hex digest
	if err := os.WriteFile(entry.SourcePath(), []byte(Document(text, r.document)), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceWriteFailed.Error()), "digest", entry.Digest.String())
	}

	compile := CompileCommand(r.toolchain, entry)
	r.logger.Info("Running " + compile[0] + " on " + entry.Source)
	if err := r.runner.Run(ctx, entry.Dir, compile); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "digest", entry.Digest.String())
	}

	rasterize := RasterizeCommand(r.toolchain, entry)
	r.logger.Info("Running " + rasterize[0] + " on " + entry.Document)
	if err := r.runner.Run(ctx, entry.Dir, rasterize); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRasterizeFailed.Error()), "digest", entry.Digest.String())
	}

	return nil
}
