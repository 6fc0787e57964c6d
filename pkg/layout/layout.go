package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

// Node is a computed box: its identity, its rectangle relative to its
// parent's origin, and its computed children in order.
type Node struct {
	ID         string    `json:"id"`
	LocalSpace geom.Rect `json:"local_space"`
	Children   []Node    `json:"children,omitempty"`
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n Node) Count() int {
	c := 1
	for _, child := range n.Children {
		c += child.Count()
	}
	return c
}

// Item is the final geometry of one node.
type Item struct {
	// LocalSpace is relative to the parent's origin.
	LocalSpace geom.Rect `json:"local_space" bson:"local_space"`
	// UISpace is in the viewport's coordinate space.
	UISpace geom.Rect `json:"ui_space" bson:"ui_space"`
}

// Layout is the result of laying out a tree in a viewport.
type Layout struct {
	UISpace geom.Rect       `json:"ui_space" bson:"ui_space"`
	Items   map[string]Item `json:"items" bson:"items"`
}

// Compute lays out tree inside uiSpace.
//
// Every identity reachable through computable nodes appears exactly once in
// the result. Identities below a node that is not computable do not appear.
func Compute(uiSpace geom.Rect, tree box.Unit) Layout {
	root, ok := LayoutNode(uiSpace.Size(), tree)
	if !ok {
		return Layout{UISpace: uiSpace, Items: map[string]Item{}}
	}
	items := make(map[string]Item, root.Count())
	unpack(uiSpace, root, items)
	return Layout{UISpace: uiSpace, Items: items}
}

// unpack flattens node post-order, composing absolute rectangles by
// translating each local rectangle by the parent's absolute origin.
func unpack(parent geom.Rect, node Node, items map[string]Item) {
	ui := node.LocalSpace.Translate(parent.Origin())
	for _, child := range node.Children {
		unpack(ui, child, items)
	}
	items[node.ID] = Item{LocalSpace: node.LocalSpace, UISpace: ui}
}

// Item returns the geometry for id.
func (l Layout) Item(id string) (Item, bool) {
	it, ok := l.Items[id]
	return it, ok
}

// Len returns the number of laid out nodes.
func (l Layout) Len() int { return len(l.Items) }

// IDs returns all laid out identities, sorted.
func (l Layout) IDs() []string {
	ids := make([]string, 0, len(l.Items))
	for id := range l.Items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// HitTest returns the identities whose absolute rectangle contains p,
// smallest area first. Ties are broken by identity.
func (l Layout) HitTest(p geom.Vec2) []string {
	var hits []string
	for id, it := range l.Items {
		if it.UISpace.Contains(p) {
			hits = append(hits, id)
		}
	}
	slices.SortFunc(hits, func(a, b string) int {
		if c := cmp.Compare(l.Items[a].UISpace.Area(), l.Items[b].UISpace.Area()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return hits
}

// Engine computes layouts. Renderers and application loops depend on this
// interface so alternative engines can be swapped in.
type Engine interface {
	Layout(uiSpace geom.Rect, tree box.Unit) (Layout, error)
}

// DefaultEngine is the [Engine] backed by [Compute]. It never fails.
type DefaultEngine struct{}

// Layout implements [Engine].
func (DefaultEngine) Layout(uiSpace geom.Rect, tree box.Unit) (Layout, error) {
	return Compute(uiSpace, tree), nil
}

var _ Engine = DefaultEngine{}
