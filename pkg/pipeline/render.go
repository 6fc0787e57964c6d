package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/layout"
	"github.com/matzehuels/boxlayout/pkg/observability"
	"github.com/matzehuels/boxlayout/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. tree may be
// nil for every format except dot and tree, which draw the box hierarchy.
func Render(ctx context.Context, l layout.Layout, tree box.Unit, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, l, tree, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, l layout.Layout, tree box.Unit, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(tree, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONTree(tree), sink.WithJSONIndent())
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatDOT:
			data = []byte(sink.ToDOT(tree, l, sink.DOTOptions{Detailed: opts.Detailed}))
		case FormatTree:
			data, err = sink.RenderTreeSVG(ctx, sink.ToDOT(tree, l, sink.DOTOptions{Detailed: opts.Detailed}))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, sink.WithSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sink.WithSVGOptions(svgOpts...))
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, formatError(format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds wireframe rendering options.
func buildSVGOptions(tree box.Unit, opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if !box.IsNone(tree) {
		svgOpts = append(svgOpts, sink.WithTree(tree))
	}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	return svgOpts
}
