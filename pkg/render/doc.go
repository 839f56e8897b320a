// Package render groups the output formats for a search run.
//
//   - [text]: the plain-text report printed by the CLI
//   - [nodelink]: Graphviz node-link diagrams (DOT, SVG, PNG)
//
// JSON export lives in package io.
package render
