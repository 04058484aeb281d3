package domain

import "go.trai.ch/zerr"

var (
	// ErrInputOpenFailed is returned when an input file cannot be opened.
	ErrInputOpenFailed = zerr.New("failed to open input file")

	// ErrInputReadFailed is returned when reading an input file fails part way through.
	ErrInputReadFailed = zerr.New("failed to read input file")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheStatFailed is returned when the existence of a cached image cannot be determined.
	ErrCacheStatFailed = zerr.New("failed to stat cached image")

	// ErrCacheListFailed is returned when the cache directory cannot be listed.
	ErrCacheListFailed = zerr.New("failed to list cache directory")

	// ErrSourceWriteFailed is returned when the LaTeX source file cannot be written.
	ErrSourceWriteFailed = zerr.New("failed to write LaTeX source")

	// ErrCompileFailed is returned when the LaTeX compiler exits unsuccessfully.
	ErrCompileFailed = zerr.New("LaTeX compilation failed")

	// ErrRasterizeFailed is returned when the rasterizer exits unsuccessfully.
	ErrRasterizeFailed = zerr.New("rasterization failed")

	// ErrRenderFailed is returned when an annotation could not be rendered.
	ErrRenderFailed = zerr.New("failed to render annotation")

	// ErrEmptyCommand is returned when a tool is configured without a command.
	ErrEmptyCommand = zerr.New("empty tool command")

	// ErrToolFailed is returned when an external tool exits with a non-zero status.
	ErrToolFailed = zerr.New("command failed")

	// ErrListWithFiles is returned when --list is combined with input files.
	ErrListWithFiles = zerr.New("--list does not accept filenames")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDensity is returned when the configured rasterizer density is not positive.
	ErrInvalidDensity = zerr.New("rasterizer density must be positive")

	// ErrInvalidCacheDir is returned when the configured cache directory is empty.
	ErrInvalidCacheDir = zerr.New("cache directory must not be empty")
)
