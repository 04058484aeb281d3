package domain

// Annotation is a TEX: string literal found in an input file.
type Annotation struct {
	// Path is the file the annotation was read from.
	Path string
	// Line is the 1-based line number.
	Line int
	// Raw is the literal content after the TEX: prefix, escapes not yet decoded.
	Raw string
	// Text is Raw with escapes decoded. This is what gets typeset and hashed.
	Text string
}

// NewAnnotation builds an annotation from a raw literal span.
func NewAnnotation(path string, line int, raw string) Annotation {
	return Annotation{
		Path: path,
		Line: line,
		Raw:  raw,
		Text: Unescape(raw),
	}
}

// Digest returns the cache key of the annotation's text.
func (a Annotation) Digest() Digest {
	return NewDigest(a.Text)
}
