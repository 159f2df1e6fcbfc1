// Package utils holds small generic predicates shared by the catalog and its tests.
package utils

type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// IsInRange reports whether lo <= value <= hi.
func IsInRange[T ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}
