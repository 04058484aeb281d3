package domain

const (
	// DefaultCacheDir is the cache directory, relative to the working directory.
	// The drawing library that consumes the images looks them up under this name.
	DefaultCacheDir = "text"

	// DefaultConfigFile is the name of the optional configuration file.
	DefaultConfigFile = "texcache.yaml"

	// SourceExt is the extension of the generated LaTeX source.
	SourceExt = ".tex"

	// DocumentExt is the extension of the compiled document.
	DocumentExt = ".pdf"

	// ImageExt is the extension of the final raster image.
	ImageExt = ".png"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
