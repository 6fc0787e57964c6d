package layout

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

func layoutSizeBox(available geom.Vec2, b *box.SizeBox) Node {
	inner := geom.Vec2{
		X: max(available.X-b.Margin.Horizontal(), 0),
		Y: max(available.Y-b.Margin.Vertical(), 0),
	}

	var (
		content  geom.Vec2
		children []Node
	)
	if child, ok := LayoutNode(inner, b.Slot); ok {
		child.LocalSpace = child.LocalSpace.Translate(b.Margin.Origin())
		content = child.LocalSpace.Size()
		children = []Node{child}
	}

	return Node{
		ID: b.ID,
		LocalSpace: geom.RectFromSize(geom.Vec2{
			X: resolveAxis(b.Width, content.X, available.X),
			Y: resolveAxis(b.Height, content.Y, available.Y),
		}),
		Children: children,
	}
}

// resolveAxis picks the extent of one size box axis.
func resolveAxis(v box.SizeValue, content, available float64) float64 {
	switch v.Mode {
	case box.SizeContent:
		return content
	case box.SizeExact:
		return v.Value
	default:
		return available
	}
}

// layoutLeaf sizes an image or text box. Content sizing is treated as fill.
func layoutLeaf(available geom.Vec2, id string, width, height box.SizeValue) Node {
	return Node{
		ID: id,
		LocalSpace: geom.RectFromSize(geom.Vec2{
			X: leafAxis(width, available.X),
			Y: leafAxis(height, available.Y),
		}),
	}
}

func leafAxis(v box.SizeValue, available float64) float64 {
	if v.IsExact() {
		return v.Value
	}
	return available
}
