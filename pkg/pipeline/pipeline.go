// Package pipeline runs a complete search: generate → sample → enumerate.
//
// By centralizing the stage order here, the CLI and tests share exactly one
// sequence of random draws, so a seed reproduces the same run everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Build the labeled graph (package generate)
//  2. Sample: Draw the edge set from all node pairs
//  3. Search: Enumerate Hamiltonian paths (package hamilton)
//
// Rendering the result ([Render]) is a separate step.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Seed = 42
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := pipeline.Render(ctx, result.Run, pipeline.FormatText, nodelink.Options{})
package pipeline

import (
	"time"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/generate"
	"github.com/matzehuels/adleman/pkg/io"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultNodes is the number of nodes generated when none is configured.
	DefaultNodes = 5

	// WarnNodes is the node count above which the runner warns that the
	// factorial search may take very long.
	WarnNodes = 10
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ReportFormats are the formats the report command accepts.
var ReportFormats = []string{FormatText, FormatJSON}

// RenderFormats are the formats the render command accepts.
var RenderFormats = []string{FormatDOT, FormatSVG, FormatPNG, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a search run.
//
// A zero Nodes or LabelLength is taken literally; start from [DefaultOptions]
// to get the standard run.
type Options struct {
	Nodes       int    `json:"nodes" toml:"nodes"`
	LabelLength int    `json:"label_length" toml:"label_length"`
	Alphabet    string `json:"alphabet,omitempty" toml:"alphabet"`

	// Seed selects the random stream. Zero means "derive one from the clock";
	// the seed actually used is reported in the result.
	Seed uint64 `json:"seed,omitempty" toml:"seed"`
}

// DefaultOptions returns the options of the standard run: 5 nodes with
// 6-symbol DNA labels and a clock-derived seed.
func DefaultOptions() Options {
	return Options{
		Nodes:       DefaultNodes,
		LabelLength: generate.DefaultLabelLength,
		Alphabet:    generate.DNA,
	}
}

// ValidateAndSetDefaults checks the options and fills the alphabet if empty.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Alphabet == "" {
		o.Alphabet = generate.DNA
	}
	if err := errors.ValidateCount("node count", o.Nodes); err != nil {
		return err
	}
	if err := errors.ValidateCount("label length", o.LabelLength); err != nil {
		return err
	}
	return errors.ValidateAlphabet(o.Alphabet)
}

func (o Options) labelOptions() generate.Options {
	return generate.Options{LabelLength: o.LabelLength, Alphabet: o.Alphabet}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Run holds the graph, edges, paths, seed and run ID.
	Run io.Run

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	PathCount    int
	GenerateTime time.Duration
	SampleTime   time.Duration
	SearchTime   time.Duration
}
