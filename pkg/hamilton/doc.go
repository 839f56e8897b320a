// Package hamilton enumerates Hamiltonian paths by exhaustive search.
//
// # Algorithm
//
// Every ordering of the node list is generated lazily in lexicographic order
// of input positions ([perm.Of]). An ordering is a Hamiltonian path when each
// consecutive pair (p[i], p[i+1]) is found in the edge set as an exact ordered
// tuple ([graph.EdgeSet.Contains]). There is no pruning: the search visits all
// N! orderings and costs O(N! · N · |E|) time, which is only practical for
// small N. Hamiltonian path detection is NP-complete, and this package makes
// no attempt to do better.
//
// # Entry Points
//
//   - [All]: lazy iterator over valid paths
//   - [Enumerate]: collects All into a slice
//   - [Search]: like Enumerate, but stops when a context is canceled
//   - [IsPath], [Count]: validation helpers
//
// Results depend only on the node list and edge set, never on a random
// source, so repeated calls return identical paths in identical order.
package hamilton
