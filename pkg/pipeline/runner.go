package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/generate"
	"github.com/matzehuels/adleman/pkg/graph/perm"
	"github.com/matzehuels/adleman/pkg/hamilton"
	advio "github.com/matzehuels/adleman/pkg/io"
	"github.com/matzehuels/adleman/pkg/observability"
)

// Runner executes search runs and logs each stage.
//
// The Runner holds no per-run state, so one Runner may serve many runs.
type Runner struct {
	Logger *log.Logger

	// now is the clock used to derive seeds; tests replace it.
	now func() time.Time
}

// NewRunner creates a runner. If logger is nil, log output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger, now: time.Now}
}

// Execute runs the complete generate → sample → search pipeline.
//
// The random source is consumed in a fixed order (every node label, then the
// edge sample), so equal options with a non-zero seed give equal results.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = r.clockSeed()
		r.Logger.Debug("derived seed from clock", "seed", seed)
	}
	if opts.Nodes > WarnNodes {
		r.Logger.Warn("exhaustive search over a large graph",
			"nodes", opts.Nodes,
			"permutations", perm.Factorial(min(opts.Nodes, 20)))
	}

	hooks := observability.Pipeline()
	rng := generate.NewRand(seed)
	result := &Result{Run: advio.Run{ID: advio.NewRunID(), Seed: seed}}

	// Stage 1: Generate
	start := time.Now()
	g, err := generate.Graph(rng, opts.Nodes, opts.labelOptions())
	result.Stats.GenerateTime = time.Since(start)
	hooks.OnGenerateComplete(ctx, opts.Nodes, seed, result.Stats.GenerateTime, err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Run.Graph = g
	result.Stats.NodeCount = g.Len()

	r.Logger.Info("generated graph",
		"nodes", g.Len(),
		"seed", seed,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Sample
	start = time.Now()
	edges := generate.Edges(rng, g)
	result.Stats.SampleTime = time.Since(start)
	hooks.OnSampleComplete(ctx, len(edges), result.Stats.SampleTime)
	result.Run.Edges = edges
	result.Stats.EdgeCount = len(edges)

	r.Logger.Info("sampled edges",
		"edges", len(edges),
		"duration", result.Stats.SampleTime)

	// Stage 3: Search
	hooks.OnSearchStart(ctx, g.Len(), len(edges))
	start = time.Now()
	paths, err := hamilton.Search(ctx, g.IDs(), edges)
	result.Stats.SearchTime = time.Since(start)
	hooks.OnSearchComplete(ctx, len(paths), result.Stats.SearchTime, err)
	if err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeCanceled, err, "search interrupted")
		}
		return nil, fmt.Errorf("search: %w", err)
	}
	result.Run.Paths = paths
	result.Stats.PathCount = len(paths)

	r.Logger.Info("enumerated hamiltonian paths",
		"paths", len(paths),
		"duration", result.Stats.SearchTime)

	return result, nil
}

// clockSeed derives a non-zero seed from the runner's clock.
func (r *Runner) clockSeed() uint64 {
	seed := uint64(r.now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}
