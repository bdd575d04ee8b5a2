package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateBits(t *testing.T) {
	// 4 * log2(1296) = 4 * 10.33985...
	require.InDelta(t, 41.3594, EstimateBits(4, 1296), 0.001)
	require.InDelta(t, 91.0, EstimateBits(7, 8192), 1e-9)
	require.InDelta(t, 1.0, EstimateBits(1, 2), 1e-9)
	require.InDelta(t, 80.0, EstimateBits(80, 2), 1e-9)
}

func TestEstimateBitsDegenerateInputs(t *testing.T) {
	require.Zero(t, EstimateBits(0, 8192))
	require.Zero(t, EstimateBits(7, 0))
	// A single-word list carries zero entropy per word.
	require.Zero(t, EstimateBits(7, 1))
}
