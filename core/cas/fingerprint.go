package cas

import (
	"encoding/hex"
	"regexp"

	"github.com/zeebo/blake3"
)

// fingerprintPattern matches a lowercase BLAKE3-256 hex string.
var fingerprintPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Fingerprint returns the BLAKE3-256 digest of data as lowercase hex.
// Two runs of the same pass over the same input give the same
// fingerprint, which is what the run ledger compares.
func Fingerprint(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// IsFingerprint reports whether s has the form of a fingerprint.
func IsFingerprint(s string) bool {
	return fingerprintPattern.MatchString(s)
}
