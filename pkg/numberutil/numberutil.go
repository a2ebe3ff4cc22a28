package numberutil

import "golang.org/x/exp/slices"

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func Average[T number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}

	return sum / float64(len(values))
}

// TopN returns the n largest elements according to score, highest first.
// The input slice is not modified.
func TopN[T any](values []T, n int, score func(T) float64) []T {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b T) bool {
		return score(a) > score(b)
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n]
}
