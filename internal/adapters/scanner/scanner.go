// Package scanner finds TEX: annotations in source files.
package scanner

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// annotationRE matches a double-quoted literal that starts with TEX:.
// The literal ends at the first quote not preceded by a backslash escape.
var annotationRE = regexp.MustCompile(`"TEX:((?:[^"\\]|\\.)*)"`)

// ExtractAnnotation returns the raw content of the first TEX: literal on line.
func ExtractAnnotation(line string) (string, bool) {
	m := annotationRE.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Scanner implements ports.Scanner over files on disk.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lazily yields the annotations found in paths, one per matching line.
// The first file that cannot be read yields an error and ends the sequence.
func (s *Scanner) Scan(paths []string) iter.Seq2[domain.Annotation, error] {
	return func(yield func(domain.Annotation, error) bool) {
		for _, path := range paths {
			if !s.scanFile(path, yield) {
				return
			}
		}
	}
}

// scanFile reports whether scanning should continue with the next file.
func (s *Scanner) scanFile(path string, yield func(domain.Annotation, error) bool) bool {
	f, err := os.Open(path) //nolint:gosec // input files are named by the user
	if err != nil {
		yield(domain.Annotation{}, zerr.With(zerr.Wrap(err, domain.ErrInputOpenFailed.Error()), "path", path))
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	r := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			yield(domain.Annotation{}, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", path))
			return false
		}

		if raw, ok := ExtractAnnotation(strings.TrimRight(line, "\r\n")); ok {
			if !yield(domain.NewAnnotation(path, lineNo, raw), nil) {
				return false
			}
		}

		if err != nil {
			return true
		}
	}
}
