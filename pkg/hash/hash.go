package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Make returns a salted one-way digest of plain. There is no inversion
// path; Check is the only read.
func Make(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(digest), nil
}

// Check reports whether plain produced digest. Comparison time does not
// depend on the secret content (bcrypt property).
func Check(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
