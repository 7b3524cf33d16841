package args_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownermz/freqtrade/internal/args"
)

func TestPositiveInt(t *testing.T) {
	t.Parallel()

	t.Run("accepts positive integers", func(t *testing.T) {
		t.Parallel()

		n, err := args.PositiveInt("5")
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	for _, raw := range []string{"0", "-3", "abc", "", "1.5"} {
		raw := raw
		t.Run("rejects "+raw, func(t *testing.T) {
			t.Parallel()

			_, err := args.PositiveInt(raw)
			require.Error(t, err)

			var validationErr *args.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, raw, validationErr.Value)
			assert.Contains(t, err.Error(), "should be a positive integer value")
		})
	}
}
