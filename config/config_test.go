package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	limits := Default()
	require.Equal(t, 64*1024, limits.MaxBufferSize)
	require.Equal(t, 100, limits.MaxHeadersNumber)
	require.Equal(t, 8*1024, limits.MaxHeaderLineSize)
	require.Equal(t, 10*1024*1024, limits.MaxBodySize)
}

func TestUnlimited(t *testing.T) {
	limits := Unlimited()
	require.Equal(t, math.MaxInt, limits.MaxBufferSize)
	require.Equal(t, math.MaxInt, limits.MaxHeadersNumber)
	require.Equal(t, math.MaxInt, limits.MaxHeaderLineSize)
	require.Equal(t, math.MaxInt, limits.MaxBodySize)
}
