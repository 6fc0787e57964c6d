package layout

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

// axes projects x/y quantities onto the main and cross axis of a flex box.
type axes struct {
	horizontal bool
	ascending  bool
}

func axesOf(d box.Direction) axes {
	return axes{horizontal: d.IsHorizontal(), ascending: d.IsOrderAscending()}
}

func (a axes) main(v geom.Vec2) float64 {
	if a.horizontal {
		return v.X
	}
	return v.Y
}

func (a axes) cross(v geom.Vec2) float64 {
	if a.horizontal {
		return v.Y
	}
	return v.X
}

func (a axes) vec(main, cross float64) geom.Vec2 {
	if a.horizontal {
		return geom.Vec2{X: main, Y: cross}
	}
	return geom.Vec2{X: cross, Y: main}
}

func (a axes) mainMargin(m geom.Rect) float64 {
	if a.horizontal {
		return m.Horizontal()
	}
	return m.Vertical()
}

func (a axes) crossMargin(m geom.Rect) float64 {
	if a.horizontal {
		return m.Vertical()
	}
	return m.Horizontal()
}

func (a axes) natural(u box.Unit) (main, cross float64) {
	if a.horizontal {
		return NaturalWidth(u), NaturalHeight(u)
	}
	return NaturalHeight(u), NaturalWidth(u)
}

// place moves a laid out flex child to main offset pos and cross offset
// crossStart, aligning it inside a cross extent of lineCross.
func (a axes) place(child *Node, it *box.FlexItem, available geom.Vec2, pos, crossStart, lineCross float64) {
	r := child.LocalSpace
	if a.horizontal {
		if a.ascending {
			r = r.Translate(geom.Vec2{X: pos + it.Margin.Left})
		} else {
			r.Left, r.Right = available.X-r.Right-pos-it.Margin.Right, available.X-r.Left-pos-it.Margin.Right
		}
		d := geom.Lerp(0, lineCross-r.Height(), it.Align)
		r = r.Translate(geom.Vec2{Y: crossStart + it.Margin.Top + d})
	} else {
		if a.ascending {
			r = r.Translate(geom.Vec2{Y: pos + it.Margin.Top})
		} else {
			r.Top, r.Bottom = available.Y-r.Bottom-pos-it.Margin.Bottom, available.Y-r.Top-pos-it.Margin.Bottom
		}
		d := geom.Lerp(0, lineCross-r.Width(), it.Align)
		r = r.Translate(geom.Vec2{X: crossStart + it.Margin.Left + d})
	}
	child.LocalSpace = r
}

// flexItem is a participating item with its natural extents, margins included.
type flexItem struct {
	*box.FlexItem
	main  float64
	cross float64
}

// measure returns the items with a non-empty slot and their natural sizes.
func (a axes) measure(items []box.FlexItem) []flexItem {
	out := make([]flexItem, 0, len(items))
	for i := range items {
		it := &items[i]
		if box.IsNone(it.Slot) {
			continue
		}
		main, cross := a.natural(it.Slot)
		if it.Basis != nil {
			main = *it.Basis
		}
		out = append(out, flexItem{
			FlexItem: it,
			main:     main + a.mainMargin(it.Margin),
			cross:    cross + a.crossMargin(it.Margin),
		})
	}
	return out
}

// gaps is the total separation between n items.
func gaps(n int, separation float64) float64 {
	if n < 2 {
		return 0
	}
	return float64(n-1) * separation
}

func layoutFlexBox(available geom.Vec2, b *box.FlexBox) Node {
	if b.Wrap {
		return layoutFlexBoxWrap(available, b)
	}
	return layoutFlexBoxNoWrap(available, b)
}

func layoutFlexBoxNoWrap(available geom.Vec2, b *box.FlexBox) Node {
	ax := axesOf(b.Direction)
	mainAvailable, crossAvailable := ax.main(available), ax.cross(available)

	items := ax.measure(b.Items)
	var main, grow, shrink float64
	for i := range items {
		items[i].cross = geom.Lerp(items[i].cross, crossAvailable, items[i].Fill)
		main += items[i].main
		grow += items[i].Grow
		shrink += items[i].Shrink
	}
	main += gaps(len(items), b.Separation)
	diff := mainAvailable - main

	var pos, used float64
	children := make([]Node, 0, len(items))
	for _, it := range items {
		resolved := it.main
		switch {
		case main < mainAvailable && grow > 0:
			resolved += diff * it.Grow / grow
		case main > mainAvailable && shrink > 0:
			resolved += diff * it.Shrink / shrink
		}
		size := ax.vec(
			max(resolved-ax.mainMargin(it.Margin), 0),
			max(it.cross-ax.crossMargin(it.Margin), 0),
		)

		child, ok := LayoutNode(size, it.Slot)
		if !ok {
			continue
		}
		ax.place(&child, it.FlexItem, available, pos, 0, crossAvailable)
		children = append(children, child)
		pos += ax.main(size) + ax.mainMargin(it.Margin) + b.Separation
		used = max(used, ax.cross(size)+ax.crossMargin(it.Margin))
	}
	pos = max(pos-b.Separation, 0)

	return Node{
		ID:         b.ID,
		LocalSpace: geom.RectFromSize(ax.vec(pos, used)),
		Children:   children,
	}
}

// flexLine is one line of a wrapping flex box.
type flexLine struct {
	items []flexItem
	main  float64 // natural main extent including separations
	cross float64
	grow  float64
}

// packLines greedily fills lines so that no line exceeds the available main
// extent, except a line holding a single oversized item.
func packLines(items []flexItem, mainAvailable, separation float64) []flexLine {
	var (
		lines []flexLine
		line  flexLine
	)
	for _, it := range items {
		next := line.main + it.main
		if len(line.items) > 0 {
			next += separation
		}
		if len(line.items) > 0 && next > mainAvailable {
			lines = append(lines, line)
			line = flexLine{}
			next = it.main
		}
		line.items = append(line.items, it)
		line.main = next
		line.cross = max(line.cross, it.cross)
		line.grow += it.Grow
	}
	if len(line.items) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func layoutFlexBoxWrap(available geom.Vec2, b *box.FlexBox) Node {
	ax := axesOf(b.Direction)
	mainAvailable := ax.main(available)

	lines := packLines(ax.measure(b.Items), mainAvailable, b.Separation)
	children := make([]Node, 0, len(b.Items))
	var mainMax, crossPos float64
	for _, line := range lines {
		diff := mainAvailable - line.main
		var pos, used float64
		for _, it := range line.items {
			resolved := it.main
			if diff > 0 && line.grow > 0 {
				resolved += diff * it.Grow / line.grow
			}
			cross := max(it.cross-ax.crossMargin(it.Margin), 0)
			size := ax.vec(
				max(resolved-ax.mainMargin(it.Margin), 0),
				geom.Lerp(cross, line.cross, it.Fill),
			)

			child, ok := LayoutNode(size, it.Slot)
			if !ok {
				continue
			}
			ax.place(&child, it.FlexItem, available, pos, crossPos, line.cross)
			children = append(children, child)
			pos += ax.main(size) + ax.mainMargin(it.Margin) + b.Separation
			used = max(used, ax.cross(size)+ax.crossMargin(it.Margin))
		}
		mainMax = max(mainMax, pos-b.Separation)
		crossPos += used + b.Separation
	}
	crossPos = max(crossPos-b.Separation, 0)

	return Node{
		ID:         b.ID,
		LocalSpace: geom.RectFromSize(ax.vec(mainMax, crossPos)),
		Children:   children,
	}
}
