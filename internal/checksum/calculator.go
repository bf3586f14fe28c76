package checksum

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLength is the number of hex characters kept from a title's SHA-1.
const FingerprintLength = 12

// Calculator computes checksums of generated seed scripts.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Fingerprint returns the leading FingerprintLength hex characters of the
// SHA-1 of s. Lesson identities embed it so that editing a title yields a
// new identity.
func Fingerprint(s string) string {
	hash := sha1.Sum([]byte(s))
	return hex.EncodeToString(hash[:])[:FingerprintLength]
}
