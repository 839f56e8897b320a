// Package perm provides lazy permutation generation for exhaustive search.
//
// # Overview
//
// Hamiltonian path search visits every ordering of the node set. The number
// of orderings grows factorially ([Factorial]), so this package never
// materializes them unless asked to: [Lexicographic] and [Of] return Go
// iterators that produce one permutation at a time from a single reused
// buffer.
//
// # Order
//
// Permutations are produced in lexicographic order of positions in the input.
// For [Of] this means the order the items were listed, not their values:
//
//	for p := range perm.Of([]string{"b", "a"}) {
//	    fmt.Println(p) // [b a], then [a b]
//	}
//
// # Buffer Reuse
//
// The slice yielded by [Lexicographic] and [Of] is overwritten by the next
// step. Callers that keep a permutation must copy it (slices.Clone).
// [Generate] returns independent slices and is convenient for small n.
package perm
