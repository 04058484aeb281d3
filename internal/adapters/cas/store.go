// Package cas implements the content-addressed image cache.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store maps digests to files under a single cache directory.
// Entries are never evicted; an entry counts as present once its image exists.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root. Nothing is created on disk until Init.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the cache directory.
func (s *Store) Root() string {
	return s.root
}

// Init creates the cache directory if it does not exist.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", s.root)
	}
	return nil
}

// Entry returns the file names for digest d.
func (s *Store) Entry(d domain.Digest) domain.CacheEntry {
	return domain.NewCacheEntry(s.root, d)
}

// Has reports whether the image for digest d already exists.
// Intermediate files are not considered.
func (s *Store) Has(d domain.Digest) (bool, error) {
	path := s.Entry(d).ImagePath()
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrCacheStatFailed.Error()), "path", path)
	}
}

// List returns the entries whose image exists, ordered by digest.
// A missing cache directory yields no entries.
func (s *Store) List() ([]domain.CacheEntry, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheListFailed.Error()), "path", s.root)
	}

	var entries []domain.CacheEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(de.Name(), domain.ImageExt)
		if !ok {
			continue
		}
		d := domain.Digest(name)
		if !d.Valid() {
			continue
		}
		entries = append(entries, s.Entry(d))
	}

	slices.SortFunc(entries, func(a, b domain.CacheEntry) int {
		return strings.Compare(a.Digest.String(), b.Digest.String())
	})
	return entries, nil
}
