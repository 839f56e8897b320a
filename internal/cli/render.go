package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/io"
	"github.com/matzehuels/adleman/pkg/pipeline"
	"github.com/matzehuels/adleman/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path; empty writes to stdout
	format    string // dot, svg (default), png or json
	input     string // previously exported JSON run; skips generation
	detailed  bool   // show node labels in the diagram
	highlight bool   // mark the first Hamiltonian path
}

// renderCommand creates the render command for exporting a run as a
// node-link diagram or JSON document.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the generated graph as DOT, SVG, PNG or JSON",
		Long: `Render runs the search (or loads a run exported with --format json) and
writes the graph as a node-link diagram. With --highlight the first
Hamiltonian path is drawn in color.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, pipeline.RenderFormats...); err != nil {
				return err
			}
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png, json")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "render a run exported as JSON instead of generating one")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node labels in the diagram")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "highlight the first Hamiltonian path")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	status := cmd.ErrOrStderr()

	run, err := c.loadRun(ctx, cmd, opts.input)
	if err != nil {
		return err
	}

	nlOpts := nodelink.Options{Detailed: opts.detailed}
	if opts.highlight {
		if len(run.Paths) == 0 {
			printWarning(status, "no Hamiltonian path to highlight")
		} else {
			nlOpts.Highlight = run.Paths[0]
		}
	}

	prog := newProgress(logger)
	data, err := pipeline.Render(ctx, *run, opts.format, nlOpts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	prog.done("Rendered " + opts.format)
	printSuccess(status, "Wrote %s", opts.format)
	printFile(status, opts.output)
	printStats(status, run.Graph.Len(), len(run.Edges), len(run.Paths))
	return nil
}

// loadRun reads the run from input if set, and otherwise executes the pipeline.
func (c *CLI) loadRun(ctx context.Context, cmd *cobra.Command, input string) (*io.Run, error) {
	if input != "" {
		run, err := io.ImportJSON(input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load run %s", input)
		}
		printInfo(cmd.ErrOrStderr(), "Loaded run %s", StyleValue.Render(run.ID))
		return run, nil
	}

	opts, err := c.opts.options(cmd)
	if err != nil {
		return nil, err
	}
	result, err := pipeline.NewRunner(loggerFromContext(ctx)).Execute(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &result.Run, nil
}
