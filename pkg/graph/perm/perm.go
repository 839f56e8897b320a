package perm

import (
	"iter"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Note that factorials grow extremely fast: 13! = 6,227,020,800 exceeds 32-bit int.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Next rearranges p into the lexicographically next permutation and reports
// whether one existed. When p is already the last permutation (descending),
// Next leaves it unchanged and returns false.
func Next(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// Lexicographic returns an iterator over all n! permutations of [0, n) in
// lexicographic order, starting with the identity.
//
// The yielded slice is reused between steps. For n <= 0 the iterator yields
// one empty permutation.
func Lexicographic(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := Seq(n)
		for {
			if !yield(p) {
				return
			}
			if !Next(p) {
				return
			}
		}
	}
}

// Of returns an iterator over every ordering of items, in lexicographic order
// of their positions in items. Duplicated values are treated as distinct.
//
// The yielded slice is reused between steps; items itself is never modified.
func Of[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		out := make([]T, len(items))
		for idx := range Lexicographic(len(items)) {
			for i, k := range idx {
				out[i] = items[k]
			}
			if !yield(out) {
				return
			}
		}
	}
}

// Generate returns permutations of [0, 1, ..., n-1] in lexicographic order.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// For n >= 13, the number of permutations exceeds billions. Always use a limit
// when n is large, or iterate [Lexicographic] instead.
func Generate(n, limit int) [][]int {
	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
		if limit > 0 {
			capacity = min(capacity, limit)
		}
	}
	result := make([][]int, 0, capacity)
	for p := range Lexicographic(n) {
		result = append(result, slices.Clone(p))
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}
