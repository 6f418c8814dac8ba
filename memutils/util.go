package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	~int | ~uint
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

func AlignDown(value int, alignment uint) int {
	return value & int(^(alignment - 1))
}

// AlignUpMultiple rounds value up to the nearest multiple of base. Unlike
// AlignUp, base does not need to be a power of two. A base of 0 leaves the
// value unchanged.
func AlignUpMultiple[T constraints.Integer](value, base T) T {
	if base == 0 {
		return value
	}
	return (value + base - 1) / base * base
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. When either argument is
// zero the other argument is returned, so a missing alignment constraint
// never zeroes out the combined one.
func LCM[T constraints.Integer](a, b T) T {
	if a != 0 && b != 0 {
		return a / GCD(a, b) * b
	}
	return Max(a, b)
}

// Max returns the largest of the provided values.
func Max[T constraints.Ordered](first T, rest ...T) T {
	best := first
	for _, v := range rest {
		if v > best {
			best = v
		}
	}
	return best
}
