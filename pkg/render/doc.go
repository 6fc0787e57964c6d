// Package render turns computed layouts into files.
//
// # Overview
//
// Rendering is downstream of layout: every sink takes a [layout.Layout] (and
// optionally the [box.Unit] tree it was computed from, for kinds, text and
// colors) and produces bytes. The [sink] subpackage holds the formats:
//
//   - json: the layout as a list of items with local and absolute rectangles
//   - svg: a wireframe of every box in viewport coordinates
//   - dot / tree: the box hierarchy as Graphviz source, or rendered to SVG
//   - png / pdf: the svg wireframe converted with rsvg-convert
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg := sink.RenderSVG(l, sink.WithTree(tree))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/boxlayout/pkg/render/sink
// [layout.Layout]: github.com/matzehuels/boxlayout/pkg/layout.Layout
// [box.Unit]: github.com/matzehuels/boxlayout/pkg/box.Unit
package render
