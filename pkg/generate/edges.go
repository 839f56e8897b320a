package generate

import (
	"math/rand/v2"

	"github.com/matzehuels/adleman/pkg/graph"
)

// Pairs returns every unordered pair of distinct IDs in [0, n) as an edge
// with From < To, in lexicographic order: (0,1), (0,2), ..., (n-2,n-1).
func Pairs(n int) graph.EdgeSet {
	if n < 2 {
		return graph.EdgeSet{}
	}
	pairs := make(graph.EdgeSet, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, graph.Edge{From: i, To: j})
		}
	}
	return pairs
}

// SampleSize returns how many edges [Edges] draws for n nodes:
// min(C(n,2), 2n), and 0 when n < 2.
func SampleSize(n int) int {
	if n < 2 {
		return 0
	}
	return min(n*(n-1)/2, 2*n)
}

// Edges draws SampleSize(g.Len()) pairs uniformly without replacement from
// Pairs(g.Len()). The result keeps the order in which pairs were drawn.
func Edges(rng *rand.Rand, g *graph.Graph) graph.EdgeSet {
	pool := Pairs(g.Len())
	k := SampleSize(g.Len())

	// Partial Fisher-Yates: after step i, pool[:i+1] is the sample so far.
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
