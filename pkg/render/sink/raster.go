package sink

import (
	"context"

	"github.com/matzehuels/boxlayout/pkg/layout"
	"github.com/matzehuels/boxlayout/pkg/render"
)

// RasterOption configures PNG and PDF output, both of which are the SVG
// wireframe converted by rsvg-convert.
type RasterOption func(*raster)

type raster struct {
	svg   []SVGOption
	scale float64
}

// WithSVGOptions styles the wireframe before conversion.
func WithSVGOptions(opts ...SVGOption) RasterOption {
	return func(r *raster) { r.svg = opts }
}

// WithScale sets the PNG zoom factor. It defaults to 2 and has no effect on
// PDF output.
func WithScale(s float64) RasterOption {
	return func(r *raster) { r.scale = s }
}

func newRaster(opts []RasterOption) raster {
	r := raster{scale: 2}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func RenderPNG(ctx context.Context, l layout.Layout, opts ...RasterOption) ([]byte, error) {
	r := newRaster(opts)
	return render.ToPNG(ctx, RenderSVG(l, r.svg...), r.scale)
}

func RenderPDF(ctx context.Context, l layout.Layout, opts ...RasterOption) ([]byte, error) {
	r := newRaster(opts)
	return render.ToPDF(ctx, RenderSVG(l, r.svg...))
}
