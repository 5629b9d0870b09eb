package assert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssert(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { Assert(true, "ignored") })

	require.PanicsWithValue(t, "want 4 bytes, got 7", func() {
		Assert(false, "want %d bytes, got %d", 4, 7)
	})
}

func TestNoError(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { NoError(nil) })

	boom := errors.New("boom")
	require.PanicsWithValue(t, boom, func() { NoError(boom) })
}
