package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/io"
	"github.com/matzehuels/adleman/pkg/render/nodelink"
	"github.com/matzehuels/adleman/pkg/render/text"
)

// Render produces the output of run in the requested format.
// The nodelink options apply to the dot, svg and png formats only.
func Render(ctx context.Context, run io.Run, format string, opts nodelink.Options) ([]byte, error) {
	switch format {
	case FormatText:
		var buf bytes.Buffer
		if err := text.Write(&buf, run.Graph, run.Edges, run.Paths); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render text")
		}
		return buf.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(run, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(run.Graph, run.Edges, opts)), nil
	case FormatSVG:
		data, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(run.Graph, run.Edges, opts))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return data, nil
	case FormatPNG:
		data, err := nodelink.RenderPNG(ctx, nodelink.ToDOT(run.Graph, run.Edges, opts))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
		}
		return data, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}
