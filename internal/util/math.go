package util

import "golang.org/x/exp/constraints"

// Clamp constrains value to [min, max].
func Clamp[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RangeOrElse returns value if it lies within [min, max], elseValue otherwise.
func RangeOrElse[T constraints.Ordered](value, min, max, elseValue T) T {
	if value < min || value > max {
		return elseValue
	}
	return value
}

