// Package credential derives and checks PIN verifiers.
package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// VerifierLen is the length of every verifier returned by Hash.
const VerifierLen = sha256.Size * 2

// Hash returns the hex encoded SHA-256 digest of pin.
func Hash(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether pin hashes to verifier.
func Verify(pin, verifier string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(pin)), []byte(verifier)) == 1
}
