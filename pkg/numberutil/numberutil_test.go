package numberutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Average(t *testing.T) {
	require.Zero(t, Average([]int{}))
	require.Equal(t, float64(12), Average([]int{8, 16}))
	require.Equal(t, 0.5, Average([]float64{0, 1}))
}

func Test_TopN(t *testing.T) {
	values := []int{3, 10, 7, 10, 1}

	top := TopN(values, 3, func(v int) float64 { return float64(v) })
	require.Equal(t, []int{10, 10, 7}, top)

	// Asking for more than available returns everything.
	top = TopN(values, 10, func(v int) float64 { return float64(v) })
	require.Len(t, top, 5)

	// The input is left untouched.
	require.Equal(t, []int{3, 10, 7, 10, 1}, values)
}
