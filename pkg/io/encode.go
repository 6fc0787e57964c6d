package io

import (
	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

// fromUnit converts a box tree into its document form.
// Defaults are left out so documents stay small.
func fromUnit(u box.Unit) *node {
	switch b := u.(type) {
	case *box.ContentBox:
		n := &node{Type: b.Kind().String(), ID: b.ID, Clipping: b.Clipping}
		for _, it := range b.Items {
			l := it.Layout
			n.Items = append(n.Items, item{
				Slot:            fromSlot(it.Slot),
				Anchors:         rectPtr(l.Anchors, fullAnchors),
				Margin:          rectPtr(l.Margin, geom.Rect{}),
				Offset:          vecPtr(l.Offset),
				HorizontalAlign: l.Align.X,
				VerticalAlign:   l.Align.Y,
				Depth:           l.Depth,
			})
		}
		return n
	case *box.FlexBox:
		n := &node{
			Type:       b.Kind().String(),
			ID:         b.ID,
			Separation: b.Separation,
			Wrap:       b.Wrap,
		}
		if b.Direction != box.HorizontalLeftToRight {
			n.Direction = b.Direction.String()
		}
		for _, it := range b.Items {
			n.Items = append(n.Items, item{
				Slot:   fromSlot(it.Slot),
				Basis:  it.Basis,
				Fill:   it.Fill,
				Grow:   it.Grow,
				Shrink: it.Shrink,
				Align:  it.Align,
				Margin: rectPtr(it.Margin, geom.Rect{}),
			})
		}
		return n
	case *box.GridBox:
		n := &node{Type: b.Kind().String(), ID: b.ID, Cols: b.Cols, Rows: b.Rows}
		for _, it := range b.Items {
			span := it.Span
			n.Items = append(n.Items, item{
				Slot:            fromSlot(it.Slot),
				Span:            &span,
				Margin:          rectPtr(it.Margin, geom.Rect{}),
				HorizontalAlign: it.HorizontalAlign,
				VerticalAlign:   it.VerticalAlign,
			})
		}
		return n
	case *box.SizeBox:
		return &node{
			Type:   b.Kind().String(),
			ID:     b.ID,
			Slot:   fromSlot(b.Slot),
			Width:  sizePtr(b.Width, box.Content()),
			Height: sizePtr(b.Height, box.Content()),
			Margin: rectPtr(b.Margin, geom.Rect{}),
		}
	case *box.ImageBox:
		return &node{
			Type:   b.Kind().String(),
			ID:     b.ID,
			Width:  sizePtr(b.Width, box.Fill()),
			Height: sizePtr(b.Height, box.Fill()),
			Image:  b.Image,
			Tint:   colorPtr(b.Tint),
		}
	case *box.TextBox:
		n := &node{
			Type:   b.Kind().String(),
			ID:     b.ID,
			Text:   b.Text,
			Width:  sizePtr(b.Width, box.Fill()),
			Height: sizePtr(b.Height, box.Fill()),
			Color:  colorPtr(b.Color),
		}
		if b.Alignment != box.TextAlignLeft {
			n.Alignment = b.Alignment.String()
		}
		if b.Direction != box.HorizontalLeftToRight {
			n.Direction = b.Direction.String()
		}
		if b.Font != (box.Font{}) {
			f := b.Font
			n.Font = &f
		}
		return n
	default:
		return &node{Type: box.KindNone.String()}
	}
}

// fromSlot omits empty slots entirely.
func fromSlot(u box.Unit) *node {
	if box.IsNone(u) {
		return nil
	}
	return fromUnit(u)
}

func sizePtr(v, def box.SizeValue) *size {
	if v == def {
		return nil
	}
	s := size(v)
	return &s
}

func rectPtr(r, def geom.Rect) *geom.Rect {
	if r == def {
		return nil
	}
	return &r
}

func vecPtr(v geom.Vec2) *geom.Vec2 {
	if v == (geom.Vec2{}) {
		return nil
	}
	return &v
}

func colorPtr(c box.Color) *box.Color {
	if c.IsZero() {
		return nil
	}
	return &c
}
