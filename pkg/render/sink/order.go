package sink

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

// entry is one laid out box in render order.
type entry struct {
	id    string
	unit  box.Unit // nil when rendering without a tree
	depth int
	item  layout.Item
}

// entries lists the items of l in draw order: tree pre-order when tree is
// set, so parents come before children, otherwise sorted by identity.
// With duplicate identities only the last occurrence in pre-order is kept,
// matching the geometry stored in the layout.
func entries(l layout.Layout, tree box.Unit) []entry {
	if box.IsNone(tree) {
		out := make([]entry, 0, len(l.Items))
		for _, id := range l.IDs() {
			out = append(out, entry{id: id, item: l.Items[id]})
		}
		return out
	}

	var out []entry
	last := make(map[string]int)
	box.Walk(tree, func(u box.Unit, depth int) bool {
		it, ok := l.Item(u.Identity())
		if !ok {
			return false
		}
		if i, dup := last[u.Identity()]; dup {
			out[i].unit = nil
		}
		last[u.Identity()] = len(out)
		out = append(out, entry{id: u.Identity(), unit: u, depth: depth, item: it})
		return true
	})

	kept := out[:0]
	for i, e := range out {
		if e.unit != nil && last[e.id] == i {
			kept = append(kept, e)
		}
	}
	return kept
}
