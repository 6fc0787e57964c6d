package layout

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

func layoutGridBox(available geom.Vec2, b *box.GridBox) (Node, bool) {
	if b.Cols == 0 || b.Rows == 0 {
		return Node{}, false
	}

	cellWidth := available.X / float64(b.Cols)
	cellHeight := available.Y / float64(b.Rows)
	children := make([]Node, 0, len(b.Items))
	for _, item := range b.Items {
		left := float64(item.Span.Left) * cellWidth
		right := float64(item.Span.Right) * cellWidth
		top := float64(item.Span.Top) * cellHeight
		bottom := float64(item.Span.Bottom) * cellHeight
		size := geom.Vec2{
			X: max(right-left-item.Margin.Horizontal(), 0),
			Y: max(bottom-top-item.Margin.Vertical(), 0),
		}

		child, ok := LayoutNode(size, item.Slot)
		if !ok {
			continue
		}
		ox := geom.Lerp(0, size.X-child.LocalSpace.Width(), item.HorizontalAlign)
		oy := geom.Lerp(0, size.Y-child.LocalSpace.Height(), item.VerticalAlign)
		child.LocalSpace = child.LocalSpace.Translate(geom.Vec2{
			X: left + item.Margin.Left + ox,
			Y: top + item.Margin.Top + oy,
		})
		children = append(children, child)
	}
	return Node{
		ID:         b.ID,
		LocalSpace: geom.RectFromSize(available),
		Children:   children,
	}, true
}
