package walker

import "math"

// ProductSize returns the number of tuples in the Cartesian product of
// dimensions with the given lengths. ok is false on int overflow.
func ProductSize(lens []int) (n int, ok bool) {
	n = 1
	for _, l := range lens {
		if l == 0 {
			return 0, true
		}
		if n > math.MaxInt/l {
			return 0, false
		}
		n *= l
	}
	return n, true
}

// Product returns the Cartesian product of dims in odometer order: the last
// dimension varies fastest. An empty dims yields one empty tuple. When limit
// is positive and the product is larger, ErrTooManyCombinations is returned
// before anything is allocated.
func Product[T any](dims [][]T, limit int) ([][]T, error) {
	lens := make([]int, len(dims))
	for i, d := range dims {
		lens[i] = len(d)
	}
	total, ok := ProductSize(lens)
	if !ok || (limit > 0 && total > limit) {
		return nil, ErrTooManyCombinations
	}
	if total == 0 {
		return nil, nil
	}

	out := make([][]T, 0, total)
	idx := make([]int, len(dims))
	for {
		tuple := make([]T, len(dims))
		for i, d := range dims {
			tuple[i] = d[idx[i]]
		}
		out = append(out, tuple)

		// Advance the odometer from the last wheel.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < lens[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out, nil
		}
	}
}
