// Package io provides JSON import and export for search runs.
//
// # Overview
//
// A [Run] bundles everything one invocation produced: the generated graph,
// the sampled edges, the Hamiltonian paths found, the seed that reproduces
// them, and a unique run ID. Exporting a run lets other tools consume the
// result, and importing it lets the CLI re-render a diagram without repeating
// the search.
//
// # JSON Format
//
//	{
//	  "run_id": "3f1c9a0e-...",
//	  "seed": 42,
//	  "nodes": [
//	    {"id": 0, "label": "ACGTTA"},
//	    {"id": 1, "label": "GATTCA"}
//	  ],
//	  "edges": [
//	    {"from": 0, "to": 1}
//	  ],
//	  "paths": [
//	    [0, 1]
//	  ]
//	}
//
// Node IDs must be listed densely as 0..N-1 in order. Edges must reference
// existing nodes and every path must be a full permutation that only uses
// listed edges; [ReadJSON] rejects input that breaks these rules.
package io
