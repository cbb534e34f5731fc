package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns floor((a + b/2)/b), round-half-up for non-negative a.
// Returns 0 when b is zero.
func RoundDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// FloorDiv returns floor(a/b) for non-negative a and positive b; 0 when b is zero.
func FloorDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}
