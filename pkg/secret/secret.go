package secret

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	special = "!@#$%&*"

	// MinPINLength is the shortest PIN that can still cover all four
	// character classes with headroom.
	MinPINLength = 8

	accessKeyBytes = 16
)

var alphabet = lower + upper + digits + special

// GeneratePIN returns a cryptographically secure PIN of exactly length
// characters containing at least one lowercase letter, one uppercase
// letter, one digit and one special character. The PIN is shown once to
// the creator and must never be stored in plaintext.
func GeneratePIN(length int) (string, error) {
	if length < MinPINLength {
		return "", fmt.Errorf("40006:PIN length must be at least %d characters", MinPINLength)
	}

	// One guaranteed char per class, the rest from the full alphabet,
	// then shuffle so class positions are not predictable.
	buf := make([]byte, 0, length)
	for _, class := range []string{lower, upper, digits, special} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for len(buf) < length {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	if err := shuffle(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// NewAccessKey returns an unguessable URL-safe opaque token. Composition
// rules do not apply here, only entropy.
func NewAccessKey() (string, error) {
	b := make([]byte, accessKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func pick(chars string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return chars[n.Int64()], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("read random: %w", err)
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
