package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/pipeline"
	"github.com/matzehuels/adleman/pkg/render/nodelink"
)

// runReport generates a graph, searches it and writes the report to stdout.
func (c *CLI) runReport(cmd *cobra.Command, format string) error {
	if err := errors.ValidateFormat(format, pipeline.ReportFormats...); err != nil {
		return err
	}
	opts, err := c.opts.options(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := pipeline.NewRunner(loggerFromContext(ctx)).Execute(ctx, opts)
	if err != nil {
		return err
	}

	out, err := pipeline.Render(ctx, result.Run, format, nodelink.Options{})
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
