// Package graph provides the node and edge model that adleman searches.
//
// # Overview
//
// A [Graph] maps the node identifiers 0..N-1 to decorative labels. It is
// built once (see package generate) and never mutated afterwards. Edges live
// beside the graph in an [EdgeSet] rather than inside it, because the edge
// sample is drawn after the graph exists and is displayed in sampling order.
//
// # Edge Direction
//
// Edges are sampled as unordered pairs and stored with From < To, yet
// membership is always tested as an exact ordered tuple:
//
//	edges := graph.EdgeSet{{From: 0, To: 1}}
//	edges.Contains(0, 1) // true
//	edges.Contains(1, 0) // false
//
// A pair therefore only authorizes traversal from its lower to its higher id
// unless the reverse tuple is also present. Use [EdgeSet.Symmetric] to build a
// set where both directions are traversable.
//
// # Concurrency
//
// [Graph] is immutable after [New] and safe for concurrent reads. [EdgeSet]
// is a plain slice with the usual slice semantics.
package graph
