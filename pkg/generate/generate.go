package generate

import (
	"math/rand/v2"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/graph"
)

const (
	// DNA is the default label alphabet: the four nucleotide bases.
	DNA = "ACGT"

	// DefaultLabelLength is the number of symbols in a generated label.
	DefaultLabelLength = 6
)

// Options configures label generation. Fields are used as given; start from
// [DefaultOptions] for 6-symbol DNA labels.
type Options struct {
	LabelLength int    // symbols per label, may be zero
	Alphabet    string // symbols to draw from, must be non-empty
}

// DefaultOptions returns 6-symbol labels over the DNA alphabet.
func DefaultOptions() Options {
	return Options{LabelLength: DefaultLabelLength, Alphabet: DNA}
}

// NewRand returns a PCG-backed source for seed. Equal seeds yield equal streams.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Label returns length symbols drawn independently and uniformly from alphabet.
// A length of zero yields the empty string.
func Label(rng *rand.Rand, length int, alphabet string) (string, error) {
	if err := errors.ValidateCount("label length", length); err != nil {
		return "", err
	}
	if err := errors.ValidateAlphabet(alphabet); err != nil {
		return "", err
	}
	symbols := []rune(alphabet)
	out := make([]rune, length)
	for i := range out {
		out[i] = symbols[rng.IntN(len(symbols))]
	}
	return string(out), nil
}

// Graph builds a graph of n nodes with IDs 0..n-1, labelling them in ID order.
// Labels are not deduplicated.
func Graph(rng *rand.Rand, n int, opts Options) (*graph.Graph, error) {
	if err := errors.ValidateCount("node count", n); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount("label length", opts.LabelLength); err != nil {
		return nil, err
	}
	if err := errors.ValidateAlphabet(opts.Alphabet); err != nil {
		return nil, err
	}

	labels := make([]string, n)
	for i := range labels {
		l, err := Label(rng, opts.LabelLength, opts.Alphabet)
		if err != nil {
			return nil, err
		}
		labels[i] = l
	}
	return graph.New(labels), nil
}
