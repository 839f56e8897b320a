// Package pkg provides the libraries behind adleman.
//
// # Overview
//
// Adleman imitates the classic DNA-computing experiment on Hamiltonian
// paths: it generates a small graph whose nodes carry random DNA labels,
// samples edges between them, and searches every ordering of the nodes for
// paths that visit each node exactly once. The pkg directory is organized
// as follows:
//
//  1. [graph] - Graph model, edge sets and the [graph/perm] permutation source
//  2. [generate] - Random labels, graphs and edge samples
//  3. [hamilton] - Exhaustive Hamiltonian path search
//  4. [render] - Text report and Graphviz node-link output
//  5. [io] - JSON export and import of complete runs
//  6. [pipeline] - Orchestration (generate → sample → search)
//
// Supporting packages: [errors] (coded errors), [observability] (stage
// hooks) and [buildinfo] (version information).
//
// # Quick Start
//
//	result, err := pipeline.NewRunner(nil).Execute(ctx, pipeline.Options{
//	    Nodes:       5,
//	    LabelLength: 6,
//	    Seed:        42,
//	})
//	if err != nil {
//	    return err
//	}
//	text.Write(os.Stdout, result.Run.Graph, result.Run.Edges, result.Run.Paths)
package pkg
