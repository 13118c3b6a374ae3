package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePINClassCoverage(t *testing.T) {
	for i := 0; i < 1000; i++ {
		pin, err := GeneratePIN(8)
		require.NoError(t, err)
		require.Len(t, pin, 8)

		assert.True(t, strings.ContainsAny(pin, lower), "missing lowercase: %s", pin)
		assert.True(t, strings.ContainsAny(pin, upper), "missing uppercase: %s", pin)
		assert.True(t, strings.ContainsAny(pin, digits), "missing digit: %s", pin)
		assert.True(t, strings.ContainsAny(pin, special), "missing special: %s", pin)
	}
}

func TestGeneratePINLongerLength(t *testing.T) {
	pin, err := GeneratePIN(16)
	require.NoError(t, err)
	assert.Len(t, pin, 16)
}

func TestGeneratePINTooShort(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		_, err := GeneratePIN(n)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "40006:")
	}
}

func TestNewAccessKey(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key, err := NewAccessKey()
		require.NoError(t, err)
		// 16 bytes, RawURLEncoding
		assert.Len(t, key, 22)
		assert.NotContains(t, key, "=")
		assert.False(t, seen[key], "duplicate access key")
		seen[key] = true
	}
}
