// pkg/crypto/password.go

package crypto

import (
	"crypto/rand"
	"encoding/hex"

	cerr "github.com/cockroachdb/errors"
)

// GeneratePassword creates a random hex password of the given length.
func GeneratePassword(length int) (string, error) {
	if length < 8 {
		return "", cerr.Newf("password length %d is too short (minimum 8)", length)
	}
	// Hex encoding doubles the length, so we need (length+1)/2 bytes.
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", cerr.Wrap(err, "failed to read random bytes")
	}
	return hex.EncodeToString(bytes)[:length], nil
}
