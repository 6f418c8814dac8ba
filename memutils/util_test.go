package memutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 448, AlignUp(400, 64))
	require.Equal(t, 400, AlignUp(400, 16))
	require.Equal(t, 0, AlignUp(0, 4096))
}

func TestAlignUpMultiple(t *testing.T) {
	require.Equal(t, 144, AlignUpMultiple(130, 48))
	require.Equal(t, 96, AlignUpMultiple(96, 48))
	require.Equal(t, 100, AlignUpMultiple(100, 0))
	require.Equal(t, 112, AlignUpMultiple(100, 16))
	require.Equal(t, 100, AlignUpMultiple(100, 1))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, 384, AlignDown(400, 64))
	require.Equal(t, 448, AlignDown(448, 64))
	require.Equal(t, 0, AlignDown(63, 64))
}

var lcmCases = map[string]struct {
	A, B     int
	Expected int
}{
	"Both Powers Of Two":  {64, 128, 128},
	"Non Power Of Two":    {64, 48, 192},
	"Left Zero":           {0, 128, 128},
	"Right Zero":          {64, 0, 64},
	"Both Zero":           {0, 0, 0},
	"Coprime":             {7, 13, 91},
	"Equal":               {128, 128, 128},
	"CPU And HW Strides":  {128, 16, 128},
}

func TestLCM(t *testing.T) {
	for name, testCase := range lcmCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Expected, LCM(testCase.A, testCase.B))
		})
	}
}

func TestGCD(t *testing.T) {
	require.Equal(t, 16, GCD(48, 16))
	require.Equal(t, 1, GCD(7, 13))
	require.Equal(t, 64, GCD(64, 128))
}

func TestMax(t *testing.T) {
	require.Equal(t, 16, Max(1, 16, 4))
	require.Equal(t, 1, Max(1))
	require.Equal(t, 64, Max(0, 64, 16, 64))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(1024, "alignment"))
	require.ErrorIs(t, CheckPow2(48, "alignment"), PowerOfTwoError)
}

func TestDebugCheckPow2(t *testing.T) {
	// No-op without the debug_mem_utils tag; panics on failure with it.
	require.NotPanics(t, func() {
		DebugCheckPow2(uint(4096), "alignment")
	})
}
