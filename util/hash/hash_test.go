package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", h)

	require.True(t, Check(h, "hunter22"))
	require.False(t, Check(h, "hunter23"))
	require.False(t, Check("not-a-hash", "hunter22"))
}
