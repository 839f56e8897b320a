package pipeline

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/generate"
	"github.com/matzehuels/adleman/pkg/hamilton"
	"github.com/matzehuels/adleman/pkg/observability"
	"github.com/matzehuels/adleman/pkg/render/nodelink"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Nodes != 5 || opts.LabelLength != 6 || opts.Alphabet != "ACGT" || opts.Seed != 0 {
		t.Errorf("DefaultOptions() = %+v", opts)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"zero everything", Options{}, false},
		{"negative nodes", Options{Nodes: -1}, true},
		{"negative label length", Options{Nodes: 3, LabelLength: -1}, true},
		{"bad alphabet", Options{Nodes: 3, Alphabet: "AA"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}

	opts := Options{}
	_ = opts.ValidateAndSetDefaults()
	if opts.Alphabet != generate.DNA {
		t.Errorf("Alphabet = %q, want %q", opts.Alphabet, generate.DNA)
	}
}

func TestExecute(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	res, err := NewRunner(nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	run := res.Run
	if run.Seed != 42 {
		t.Errorf("Seed = %d, want 42", run.Seed)
	}
	if run.ID == "" {
		t.Error("run ID should be set")
	}
	if run.Graph.Len() != 5 || res.Stats.NodeCount != 5 {
		t.Errorf("nodes = %d, want 5", run.Graph.Len())
	}
	if len(run.Edges) != 10 || res.Stats.EdgeCount != 10 {
		t.Errorf("edges = %d, want 10", len(run.Edges))
	}
	if err := run.Graph.Validate(run.Edges); err != nil {
		t.Errorf("invalid edges: %v", err)
	}
	if res.Stats.PathCount != len(run.Paths) {
		t.Errorf("PathCount = %d, len(Paths) = %d", res.Stats.PathCount, len(run.Paths))
	}
	want := hamilton.Enumerate(run.Graph.IDs(), run.Edges)
	if !slices.EqualFunc(run.Paths, want, slices.Equal[[]int]) {
		t.Errorf("Paths = %v, want %v", run.Paths, want)
	}
}

func TestExecuteReproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7
	r := NewRunner(nil)

	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(a.Run.Graph.Nodes(), b.Run.Graph.Nodes()) {
		t.Error("equal seeds produced different graphs")
	}
	if !slices.Equal(a.Run.Edges, b.Run.Edges) {
		t.Error("equal seeds produced different edges")
	}
	if a.Run.ID == b.Run.ID {
		t.Error("each run should get its own ID")
	}
}

func TestExecuteClockSeed(t *testing.T) {
	r := NewRunner(nil)
	r.now = func() time.Time { return time.Unix(0, 12345) }

	res, err := r.Execute(context.Background(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Run.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", res.Run.Seed)
	}

	r.now = func() time.Time { return time.Unix(0, 0) }
	if seed := r.clockSeed(); seed == 0 {
		t.Error("clockSeed() must never return zero")
	}
}

func TestExecuteSmallGraphs(t *testing.T) {
	for _, n := range []int{0, 1} {
		opts := Options{Nodes: n, LabelLength: 6, Seed: 1}
		res, err := NewRunner(nil).Execute(context.Background(), opts)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(res.Run.Edges) != 0 {
			t.Errorf("n=%d: edges = %v, want none", n, res.Run.Edges)
		}
		if len(res.Run.Paths) != 1 || len(res.Run.Paths[0]) != n {
			t.Errorf("n=%d: paths = %v, want one trivial path", n, res.Run.Paths)
		}
	}
}

func TestExecuteInvalid(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{Nodes: -3})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, Options{Nodes: 5, LabelLength: 6, Seed: 1})
	if !errors.Is(err, errors.ErrCodeCanceled) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeCanceled)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnGenerateComplete(context.Context, int, uint64, time.Duration, error) {
	h.events = append(h.events, "generate")
}

func (h *recordingHooks) OnSampleComplete(context.Context, int, time.Duration) {
	h.events = append(h.events, "sample")
}

func (h *recordingHooks) OnSearchStart(context.Context, int, int) {
	h.events = append(h.events, "search-start")
}

func (h *recordingHooks) OnSearchComplete(context.Context, int, time.Duration, error) {
	h.events = append(h.events, "search-complete")
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	opts := DefaultOptions()
	opts.Seed = 3
	if _, err := NewRunner(nil).Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	want := []string{"generate", "sample", "search-start", "search-complete"}
	if !slices.Equal(hooks.events, want) {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	res, err := NewRunner(nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	out, err := Render(ctx, res.Run, FormatText, nodelink.Options{})
	if err != nil {
		t.Fatalf("Render(text) error: %v", err)
	}
	for _, heading := range []string{"Grafo generado:", "Conexiones:", "Caminos Hamiltonianos encontrados:"} {
		if !bytes.Contains(out, []byte(heading)) {
			t.Errorf("text output missing %q", heading)
		}
	}

	out, err = Render(ctx, res.Run, FormatJSON, nodelink.Options{})
	if err != nil {
		t.Fatalf("Render(json) error: %v", err)
	}
	if !strings.Contains(string(out), res.Run.ID) {
		t.Error("json output missing run ID")
	}

	out, err = Render(ctx, res.Run, FormatDOT, nodelink.Options{})
	if err != nil {
		t.Fatalf("Render(dot) error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("digraph G {")) {
		t.Errorf("dot output = %q", out)
	}

	if _, err := Render(ctx, res.Run, "pdf", nodelink.Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(pdf) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}
