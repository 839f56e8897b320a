// Package generate builds the random inputs of a search: node labels, the
// labeled graph, and the edge sample.
//
// All randomness comes from an explicit *rand.Rand, never from the global
// source. Consumption order is fixed (every label in ID order, then the edge
// sample), so a given seed always reproduces the same graph and edges:
//
//	rng := generate.NewRand(42)
//	g, _ := generate.Graph(rng, 5, generate.DefaultOptions())
//	edges := generate.Edges(rng, g)
package generate
