package layout

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

// LayoutNode lays out u with the given available size.
//
// It returns false when u is empty or not computable. The returned node's
// LocalSpace is relative to the origin of the space it was given; the caller
// translates it into place.
func LayoutNode(available geom.Vec2, u box.Unit) (Node, bool) {
	switch b := u.(type) {
	case *box.ContentBox:
		return layoutContentBox(available, b), true
	case *box.FlexBox:
		return layoutFlexBox(available, b), true
	case *box.GridBox:
		return layoutGridBox(available, b)
	case *box.SizeBox:
		return layoutSizeBox(available, b), true
	case *box.ImageBox:
		return layoutLeaf(available, b.ID, b.Width, b.Height), true
	case *box.TextBox:
		return layoutLeaf(available, b.ID, b.Width, b.Height), true
	default:
		return Node{}, false
	}
}
