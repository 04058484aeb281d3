package ports

import (
	"iter"

	"go.trai.ch/texcache/internal/core/domain"
)

// Scanner finds annotations in input files.
type Scanner interface {
	// Scan yields the annotations of each file in order.
	// A file that cannot be read yields one error and ends the sequence.
	Scan(paths []string) iter.Seq2[domain.Annotation, error]
}
