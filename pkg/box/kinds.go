package box

import "github.com/matzehuels/boxlayout/pkg/geom"

// ContentItemLayout positions one child of a [ContentBox].
//
// Anchors are fractions (0..1) of the parent's available width and height.
// Margin insets the anchored box, Offset translates it, and Align picks where
// a child smaller or larger than the anchored box sits inside it.
type ContentItemLayout struct {
	Anchors geom.Rect
	Margin  geom.Rect
	Align   geom.Vec2
	Offset  geom.Vec2
	Depth   float64 // draw order hint for renderers
}

// ContentItem is one child slot of a [ContentBox].
type ContentItem struct {
	Slot   Unit
	Layout ContentItemLayout
}

// ContentBox places children by anchors. It always fills the space it is given.
type ContentBox struct {
	ID       string
	Items    []ContentItem
	Clipping bool
}

func (b *ContentBox) Kind() Kind { return KindContent }

func (b *ContentBox) Identity() string { return b.ID }

func (b *ContentBox) Children() []Unit {
	out := make([]Unit, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.Slot
	}
	return out
}

func (*ContentBox) sealed() {}

// FlexItem is one child slot of a [FlexBox].
type FlexItem struct {
	Slot Unit
	// Basis overrides the natural main-axis size when set.
	Basis *float64
	// Fill interpolates the cross size from natural (0) to the full available cross size (1).
	Fill float64
	// Grow and Shrink are weights for distributing positive and negative free space.
	Grow   float64
	Shrink float64
	// Align positions the item on the cross axis, 0 = start, 1 = end.
	Align  float64
	Margin geom.Rect
}

// FlexBox lays out children along one axis, optionally wrapping into lines.
type FlexBox struct {
	ID         string
	Items      []FlexItem
	Direction  Direction
	Separation float64
	Wrap       bool
}

func (b *FlexBox) Kind() Kind { return KindFlex }

func (b *FlexBox) Identity() string { return b.ID }

func (b *FlexBox) Children() []Unit {
	out := make([]Unit, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.Slot
	}
	return out
}

func (*FlexBox) sealed() {}

// GridItem is one child slot of a [GridBox].
type GridItem struct {
	Slot Unit
	// Span is the occupied cell range; Right and Bottom are exclusive.
	Span            geom.IntRect
	Margin          geom.Rect
	HorizontalAlign float64
	VerticalAlign   float64
}

// GridBox divides its space into Cols x Rows equal cells.
type GridBox struct {
	ID    string
	Items []GridItem
	Cols  int
	Rows  int
}

func (b *GridBox) Kind() Kind { return KindGrid }

func (b *GridBox) Identity() string { return b.ID }

func (b *GridBox) Children() []Unit {
	out := make([]Unit, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.Slot
	}
	return out
}

func (*GridBox) sealed() {}

// SizeBox wraps at most one child and sizes itself per axis.
type SizeBox struct {
	ID     string
	Slot   Unit
	Width  SizeValue
	Height SizeValue
	Margin geom.Rect
}

func (b *SizeBox) Kind() Kind { return KindSize }

func (b *SizeBox) Identity() string { return b.ID }

func (b *SizeBox) Children() []Unit {
	if IsNone(b.Slot) {
		return nil
	}
	return []Unit{b.Slot}
}

func (*SizeBox) sealed() {}

// ImageBox is a leaf that displays an image asset.
// Its sizes are either [Fill] or [Exact]; a content size resolves like fill.
type ImageBox struct {
	ID     string
	Width  SizeValue
	Height SizeValue
	Image  string
	Tint   Color
}

func (b *ImageBox) Kind() Kind       { return KindImage }
func (b *ImageBox) Identity() string { return b.ID }
func (b *ImageBox) Children() []Unit { return nil }
func (*ImageBox) sealed()            {}

// TextBox is a leaf that displays text.
// Its sizes are either [Fill] or [Exact]; a content size resolves like fill.
type TextBox struct {
	ID        string
	Text      string
	Width     SizeValue
	Height    SizeValue
	Alignment TextAlignment
	Direction Direction
	Font      Font
	Color     Color
}

func (b *TextBox) Kind() Kind       { return KindText }
func (b *TextBox) Identity() string { return b.ID }
func (b *TextBox) Children() []Unit { return nil }
func (*TextBox) sealed()            {}

var (
	_ Unit = None{}
	_ Unit = (*ContentBox)(nil)
	_ Unit = (*FlexBox)(nil)
	_ Unit = (*GridBox)(nil)
	_ Unit = (*SizeBox)(nil)
	_ Unit = (*ImageBox)(nil)
	_ Unit = (*TextBox)(nil)
)
