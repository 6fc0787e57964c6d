package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

// DOTOptions configures box tree diagrams.
type DOTOptions struct {
	// Detailed adds the local and absolute rectangles to each label.
	// When false, only the kind and identity are shown.
	Detailed bool
}

const dotHeader = `digraph G {
  rankdir=TB;
  bgcolor="transparent";
  node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, fontname="monospace", margin="0.2,0.1"];
  ranksep=0.4;
  nodesep=0.3;

`

// prunedAttrs mark boxes that have no layout item.
var prunedAttrs = []string{`style="rounded,filled,dashed"`, "fillcolor=lightgrey", "fontcolor=black"}

// ToDOT draws the box tree as a Graphviz digraph, parent to child. Nodes are
// named n0, n1, ... in pre-order, so empty or repeated identities still give
// a valid graph. Boxes absent from l are drawn dashed.
func ToDOT(tree box.Unit, l layout.Layout, opts DOTOptions) string {
	var nodes, edges strings.Builder
	next := 0
	var visit func(u box.Unit, parent int)
	visit = func(u box.Unit, parent int) {
		if box.IsNone(u) {
			return
		}
		id := next
		next++
		it, ok := l.Item(u.Identity())
		attrs := []string{"label=" + strconv.Quote(dotLabel(u, it, ok && opts.Detailed))}
		if !ok {
			attrs = append(attrs, prunedAttrs...)
		}
		fmt.Fprintf(&nodes, "  n%d [%s];\n", id, strings.Join(attrs, ", "))
		if parent >= 0 {
			fmt.Fprintf(&edges, "  n%d -> n%d;\n", parent, id)
		}
		for _, c := range u.Children() {
			visit(c, id)
		}
	}
	visit(tree, -1)
	return dotHeader + nodes.String() + "\n" + edges.String() + "}\n"
}

func shortRect(r geom.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", r.Left, r.Top, r.Width(), r.Height())
}

// dotLabel is "<kind> <id>", followed by both rectangles when detailed.
func dotLabel(u box.Unit, it layout.Item, detailed bool) string {
	label := u.Kind().String() + " " + u.Identity()
	if detailed {
		label += "\nlocal: " + shortRect(it.LocalSpace) + "\nui: " + shortRect(it.UISpace)
	}
	return label
}

// RenderTreeSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
//
// [render.ToPDF]: github.com/matzehuels/boxlayout/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/boxlayout/pkg/render.ToPNG
func RenderTreeSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
