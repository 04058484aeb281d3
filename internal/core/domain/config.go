package domain

import "go.trai.ch/zerr"

const (
	// DefaultDensity is the rasterizer resolution in DPI.
	DefaultDensity = 96

	// DefaultDocumentClass is the LaTeX document class.
	DefaultDocumentClass = "article"

	// DefaultFontSize is the document class font size option.
	DefaultFontSize = "12pt"
)

// Config holds the settings of one generate_text invocation.
type Config struct {
	// CacheDir is the cache root. Relative paths resolve against the working directory.
	CacheDir  string
	Toolchain Toolchain
	Document  DocumentOptions
}

// Toolchain describes the external programs that turn a LaTeX source into an image.
type Toolchain struct {
	// Compiler is the command prefix; the source file name is appended.
	Compiler []string
	// Rasterizer is the command prefix; density, input and output arguments are appended.
	Rasterizer []string
	// Density is the rasterizer resolution in DPI.
	Density int
}

// DocumentOptions controls the LaTeX preamble.
type DocumentOptions struct {
	Class    string
	FontSize string
	Packages []string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		CacheDir: DefaultCacheDir,
		Toolchain: Toolchain{
			Compiler:   []string{"pdflatex"},
			Rasterizer: []string{"convert"},
			Density:    DefaultDensity,
		},
		Document: DocumentOptions{
			Class:    DefaultDocumentClass,
			FontSize: DefaultFontSize,
			Packages: []string{"amsmath", "amsthm", "amssymb"},
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.CacheDir == "" {
		return ErrInvalidCacheDir
	}
	if len(c.Toolchain.Compiler) == 0 || c.Toolchain.Compiler[0] == "" {
		return zerr.With(ErrEmptyCommand, "tool", "compiler")
	}
	if len(c.Toolchain.Rasterizer) == 0 || c.Toolchain.Rasterizer[0] == "" {
		return zerr.With(ErrEmptyCommand, "tool", "rasterizer")
	}
	if c.Toolchain.Density <= 0 {
		return zerr.With(ErrInvalidDensity, "density", c.Toolchain.Density)
	}
	return nil
}
