//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pourup/internal/domain/booking"
)

func TestCodeGenerator(t *testing.T) {
	gen := booking.NewCodeGenerator()

	t.Run("format", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code := gen.Generate()
			assert.Len(t, code, 11)
			assert.True(t, strings.HasPrefix(code, "BK-"))
			assert.True(t, booking.IsValidCode(code), code)
		}
	})

	t.Run("collisions are rare within a batch", func(t *testing.T) {
		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			seen[gen.Generate()] = struct{}{}
		}
		// 8 hex chars give ~4.3e9 values; a 10k batch losing more than a
		// handful to collisions would indicate broken entropy.
		assert.Greater(t, len(seen), 9990)
	})
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"BK-00000000", "BK-ABCDEF12", "BK-DEADBEEF"}
	for _, code := range valid {
		assert.True(t, booking.IsValidCode(code), code)
	}

	invalid := []string{
		"",
		"BK-",
		"BK-1234567",
		"BK-123456789",
		"bk-12345678",
		"BK-GHIJKLMN",
		"XX-12345678",
		"BK-abcdef12",
	}
	for _, code := range invalid {
		assert.False(t, booking.IsValidCode(code), code)
	}
}
