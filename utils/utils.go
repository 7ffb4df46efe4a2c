// Package utils implements generic helpers shared by the other packages.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Max returns the maximum of a and b.
func Max[V constraints.Ordered](a, b V) V {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice, or the zero value if it is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	for i := range slice {
		if i == 0 || slice[i] > max {
			max = slice[i]
		}
	}
	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return
}

// GetDistincts returns the distinct elements of v in order of first occurrence.
func GetDistincts[V comparable](v []V) (vd []V) {
	m := make(map[V]bool, len(v))
	vd = make([]V, 0, len(v))
	for _, vi := range v {
		if !m[vi] {
			m[vi] = true
			vd = append(vd, vi)
		}
	}
	return
}

// ReverseSliceInPlace reverses the order of the elements of s.
func ReverseSliceInPlace[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ReverseSlice returns a new slice with the elements of s in reverse order.
func ReverseSlice[V any](s []V) (r []V) {
	r = make([]V, len(s))
	copy(r, s)
	ReverseSliceInPlace(r)
	return
}
