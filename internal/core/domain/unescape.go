package domain

import (
	"strings"
	"unicode/utf8"
)

// escapes maps the character following a backslash to its decoded value.
var escapes = map[byte]byte{
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
}

// Unescape decodes backslash escapes in a string literal body.
//
// An escape with an unknown character is dropped entirely, multibyte
// characters included. A lone trailing backslash ends decoding.
// Unescape never fails and keeps valid UTF-8 valid.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			break
		}
		i++
		if decoded, ok := escapes[s[i]]; ok {
			b.WriteByte(decoded)
			continue
		}
		// Drop the whole unknown character, not just its first byte.
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size - 1
	}

	return b.String()
}
