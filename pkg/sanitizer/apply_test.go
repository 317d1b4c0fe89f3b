package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/payinput/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Run("runs transforms in order", func(t *testing.T) {
		result := sanitizer.Apply(" 90210-1234 ", sanitizer.Trim, sanitizer.KeepDigits)
		assert.Equal(t, "902101234", result)
	})

	t.Run("no transforms returns value", func(t *testing.T) {
		assert.Equal(t, "k1a 0b1", sanitizer.Apply("k1a 0b1"))
	})

	t.Run("works with other types", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		inc := func(n int) int { return n + 1 }
		assert.Equal(t, 7, sanitizer.Apply(3, double, inc))
	})
}

func TestCompose(t *testing.T) {
	normalize := sanitizer.Compose(sanitizer.RemoveWhitespace, sanitizer.ToUpper)

	assert.Equal(t, "SW1A1AA", normalize(" sw1a 1aa "))
	assert.Equal(t, "K1A0B1", normalize("k1a\t0b1"))
	assert.Equal(t, "", normalize(""))
}
