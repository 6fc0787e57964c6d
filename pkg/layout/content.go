package layout

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

func layoutContentBox(available geom.Vec2, b *box.ContentBox) Node {
	children := make([]Node, 0, len(b.Items))
	for _, item := range b.Items {
		l := item.Layout
		left := geom.Lerp(0, available.X, l.Anchors.Left) + l.Margin.Left + l.Offset.X
		right := geom.Lerp(0, available.X, l.Anchors.Right) - l.Margin.Right + l.Offset.X
		top := geom.Lerp(0, available.Y, l.Anchors.Top) + l.Margin.Top + l.Offset.Y
		bottom := geom.Lerp(0, available.Y, l.Anchors.Bottom) - l.Margin.Bottom + l.Offset.Y
		size := geom.Vec2{
			X: max(right-left, 0),
			Y: max(bottom-top, 0),
		}

		child, ok := LayoutNode(size, item.Slot)
		if !ok {
			continue
		}
		ox := geom.Lerp(0, child.LocalSpace.Width()-size.X, l.Align.X)
		oy := geom.Lerp(0, child.LocalSpace.Height()-size.Y, l.Align.Y)
		child.LocalSpace = child.LocalSpace.Translate(geom.Vec2{X: left - ox, Y: top - oy})
		children = append(children, child)
	}
	return Node{
		ID:         b.ID,
		LocalSpace: geom.RectFromSize(available),
		Children:   children,
	}
}
