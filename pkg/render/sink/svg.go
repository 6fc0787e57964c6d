package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

const wireframeCSS = `
    .box { fill: none; stroke: #4b5563; stroke-width: 1; vector-effect: non-scaling-stroke; }
    .box.flex { stroke: #2563eb; }
    .box.grid { stroke: #059669; }
    .box.size { stroke: #d97706; stroke-dasharray: 4 2; }
    .box.image { stroke: #7c3aed; }
    .box.text { stroke: #db2777; }
    .label { font-family: monospace; font-size: 10px; fill: #6b7280; }
    .text { font-family: sans-serif; dominant-baseline: middle; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	tree   box.Unit
	labels bool
}

// WithTree attaches the tree the layout was computed from, enabling kind
// styling, image tints and text content.
func WithTree(tree box.Unit) SVGOption { return func(r *svgRenderer) { r.tree = tree } }

// WithLabels draws each box's identity in its top-left corner.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws every laid out box as a rectangle in viewport coordinates.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	vp := l.UISpace
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.Left, vp.Top, vp.Width(), vp.Height(), vp.Width(), vp.Height())
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", wireframeCSS)
	fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white"/>`+"\n",
		vp.Left, vp.Top, vp.Width(), vp.Height())

	for _, e := range entries(l, r.tree) {
		renderEntry(&buf, e, r.labels)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderEntry(buf *bytes.Buffer, e entry, labels bool) {
	rc := e.item.UISpace
	class := "box"
	fill := ""
	if e.unit != nil {
		class += " " + e.unit.Kind().String()
		if img, ok := e.unit.(*box.ImageBox); ok && !img.Tint.IsZero() {
			fill = fmt.Sprintf(` style="fill:%s;fill-opacity:%.2f"`, img.Tint.Hex(), img.Tint.A)
		}
	}

	fmt.Fprintf(buf, `  <rect id="box-%s" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`+"\n",
		escape(e.id), class, rc.Left, rc.Top, rc.Width(), rc.Height(), fill)

	if t, ok := e.unit.(*box.TextBox); ok && t.Text != "" {
		renderText(buf, t, rc)
	}
	if labels {
		fmt.Fprintf(buf, `  <text class="label" x="%.2f" y="%.2f">%s</text>`+"\n",
			rc.Left+2, rc.Top+10, escape(e.id))
	}
}

func renderText(buf *bytes.Buffer, t *box.TextBox, rc geom.Rect) {
	x, anchor := rc.Left, "start"
	switch t.Alignment {
	case box.TextAlignCenter:
		x, anchor = geom.Lerp(rc.Left, rc.Right, 0.5), "middle"
	case box.TextAlignRight:
		x, anchor = rc.Right, "end"
	}

	var style []string
	if t.Font.Name != "" {
		style = append(style, "font-family:"+t.Font.Name)
	}
	if t.Font.Size > 0 {
		style = append(style, fmt.Sprintf("font-size:%gpx", t.Font.Size))
	}
	if t.Font.Bold {
		style = append(style, "font-weight:bold")
	}
	if t.Font.Italic {
		style = append(style, "font-style:italic")
	}
	if !t.Color.IsZero() {
		style = append(style, "fill:"+t.Color.Hex())
	}
	attr := ""
	if len(style) > 0 {
		attr = fmt.Sprintf(` style="%s"`, escape(strings.Join(style, ";")))
	}

	fmt.Fprintf(buf, `  <text class="text" x="%.2f" y="%.2f" text-anchor="%s"%s>%s</text>`+"\n",
		x, geom.Lerp(rc.Top, rc.Bottom, 0.5), anchor, attr, escape(t.Text))
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
