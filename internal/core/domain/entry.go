package domain

import "path/filepath"

// CacheEntry names the files derived from one digest.
// File names are relative to Dir.
type CacheEntry struct {
	Digest   Digest
	Dir      string
	Source   string
	Document string
	Image    string
}

// NewCacheEntry returns the entry for digest d inside dir.
func NewCacheEntry(dir string, d Digest) CacheEntry {
	name := d.String()
	return CacheEntry{
		Digest:   d,
		Dir:      dir,
		Source:   name + SourceExt,
		Document: name + DocumentExt,
		Image:    name + ImageExt,
	}
}

// SourcePath returns the path of the LaTeX source.
func (e CacheEntry) SourcePath() string {
	return filepath.Join(e.Dir, e.Source)
}

// DocumentPath returns the path of the compiled document.
func (e CacheEntry) DocumentPath() string {
	return filepath.Join(e.Dir, e.Document)
}

// ImagePath returns the path of the final image.
func (e CacheEntry) ImagePath() string {
	return filepath.Join(e.Dir, e.Image)
}
