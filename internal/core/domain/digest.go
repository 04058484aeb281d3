package domain

import (
	"crypto/sha1" //nolint:gosec // SHA-1 names cache files; image consumers compute the same key.
	"encoding/hex"
)

// DigestLen is the length of a hex encoded digest.
const DigestLen = sha1.Size * 2

// Digest identifies a cache entry. It is the lowercase hex SHA-1 of the decoded text.
type Digest string

// NewDigest computes the digest of the given text.
func NewDigest(text string) Digest {
	sum := sha1.Sum([]byte(text)) //nolint:gosec // see import
	return Digest(hex.EncodeToString(sum[:]))
}

// String returns the hex form of the digest.
func (d Digest) String() string {
	return string(d)
}

// Valid reports whether d looks like a digest produced by NewDigest.
func (d Digest) Valid() bool {
	if len(d) != DigestLen {
		return false
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
