package sink

import (
	"encoding/json"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	tree   box.Unit
	indent bool
}

// WithJSONTree attaches the tree the layout was computed from. Items then
// carry their kind, depth and parent, and are listed in tree pre-order.
func WithJSONTree(tree box.Unit) JSONOption { return func(r *jsonRenderer) { r.tree = tree } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Viewport geom.Rect  `json:"viewport"`
	Count    int        `json:"count"`
	Items    []jsonItem `json:"items"`
}

type jsonItem struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind,omitempty"`
	Parent string    `json:"parent,omitempty"`
	Depth  int       `json:"depth,omitempty"`
	Local  geom.Rect `json:"local"`
	UI     geom.Rect `json:"ui"`
}

// RenderJSON serializes the layout as a flat item list.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	parents := parentIDs(r.tree)
	out := jsonOutput{Viewport: l.UISpace, Count: l.Len(), Items: []jsonItem{}}
	for _, e := range entries(l, r.tree) {
		it := jsonItem{ID: e.id, Local: e.item.LocalSpace, UI: e.item.UISpace, Depth: e.depth}
		if e.unit != nil {
			it.Kind = e.unit.Kind().String()
			it.Parent = parents[e.id]
		}
		out.Items = append(out.Items, it)
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// parentIDs maps each identity to its parent's identity.
func parentIDs(tree box.Unit) map[string]string {
	parents := make(map[string]string)
	box.Walk(tree, func(u box.Unit, _ int) bool {
		for _, c := range u.Children() {
			if !box.IsNone(c) {
				parents[c.Identity()] = u.Identity()
			}
		}
		return true
	})
	return parents
}
