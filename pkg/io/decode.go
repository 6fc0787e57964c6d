package io

import (
	"fmt"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

// fullAnchors is the default for content items without anchors.
var fullAnchors = geom.Rect{Left: 0, Right: 1, Top: 0, Bottom: 1}

func invalid(path, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidTree, format, args...).At(path)
}

// toUnit converts a decoded document node into a box tree.
// path locates n in the document for error messages.
func toUnit(n *node, path string) (box.Unit, error) {
	if n == nil {
		return box.None{}, nil
	}
	if err := errors.ValidateNodeID(n.ID); err != nil {
		return nil, invalid(path, "%s", errors.UserMessage(err))
	}

	kind, ok := box.ParseKind(n.Type)
	if !ok {
		return nil, invalid(path, "unknown node type %q", n.Type)
	}

	switch kind {
	case box.KindNone:
		return box.None{}, nil
	case box.KindContent:
		return toContentBox(n, path)
	case box.KindFlex:
		return toFlexBox(n, path)
	case box.KindGrid:
		return toGridBox(n, path)
	case box.KindSize:
		slot, err := toUnit(n.Slot, join(path, "slot"))
		if err != nil {
			return nil, err
		}
		return &box.SizeBox{
			ID:     n.ID,
			Slot:   slot,
			Width:  sizeOr(n.Width, box.Content()),
			Height: sizeOr(n.Height, box.Content()),
			Margin: rectOr(n.Margin, geom.Rect{}),
		}, nil
	case box.KindImage:
		w, h, err := leafSizes(n, path)
		if err != nil {
			return nil, err
		}
		return &box.ImageBox{
			ID:     n.ID,
			Width:  w,
			Height: h,
			Image:  n.Image,
			Tint:   colorOr(n.Tint),
		}, nil
	case box.KindText:
		w, h, err := leafSizes(n, path)
		if err != nil {
			return nil, err
		}
		t := &box.TextBox{
			ID:     n.ID,
			Text:   n.Text,
			Width:  w,
			Height: h,
			Color:  colorOr(n.Color),
		}
		if n.Alignment != "" {
			if t.Alignment, ok = box.ParseTextAlignment(n.Alignment); !ok {
				return nil, invalid(path, "unknown text alignment %q", n.Alignment)
			}
		}
		if n.Direction != "" {
			if t.Direction, ok = box.ParseDirection(n.Direction); !ok {
				return nil, invalid(path, "unknown direction %q", n.Direction)
			}
		}
		if n.Font != nil {
			t.Font = *n.Font
		}
		return t, nil
	}
	return nil, invalid(path, "unsupported node type %q", n.Type)
}

func toContentBox(n *node, path string) (box.Unit, error) {
	b := &box.ContentBox{ID: n.ID, Clipping: n.Clipping, Items: make([]box.ContentItem, 0, len(n.Items))}
	for i, it := range n.Items {
		p := join(path, fmt.Sprintf("items[%d]", i))
		slot, err := toUnit(it.Slot, join(p, "slot"))
		if err != nil {
			return nil, err
		}
		b.Items = append(b.Items, box.ContentItem{
			Slot: slot,
			Layout: box.ContentItemLayout{
				Anchors: rectOr(it.Anchors, fullAnchors),
				Margin:  rectOr(it.Margin, geom.Rect{}),
				Align:   geom.Vec2{X: it.HorizontalAlign, Y: it.VerticalAlign},
				Offset:  vecOr(it.Offset),
				Depth:   it.Depth,
			},
		})
	}
	return b, nil
}

func toFlexBox(n *node, path string) (box.Unit, error) {
	b := &box.FlexBox{
		ID:         n.ID,
		Separation: n.Separation,
		Wrap:       n.Wrap,
		Items:      make([]box.FlexItem, 0, len(n.Items)),
	}
	if n.Direction != "" {
		d, ok := box.ParseDirection(n.Direction)
		if !ok {
			return nil, invalid(path, "unknown direction %q", n.Direction)
		}
		b.Direction = d
	}
	for i, it := range n.Items {
		p := join(path, fmt.Sprintf("items[%d]", i))
		slot, err := toUnit(it.Slot, join(p, "slot"))
		if err != nil {
			return nil, err
		}
		if it.Basis != nil && *it.Basis < 0 {
			return nil, invalid(p, "basis cannot be negative")
		}
		b.Items = append(b.Items, box.FlexItem{
			Slot:   slot,
			Basis:  it.Basis,
			Fill:   it.Fill,
			Grow:   it.Grow,
			Shrink: it.Shrink,
			Align:  it.Align,
			Margin: rectOr(it.Margin, geom.Rect{}),
		})
	}
	return b, nil
}

func toGridBox(n *node, path string) (box.Unit, error) {
	if n.Cols < 0 || n.Rows < 0 {
		return nil, invalid(path, "grid cols and rows cannot be negative")
	}
	b := &box.GridBox{ID: n.ID, Cols: n.Cols, Rows: n.Rows, Items: make([]box.GridItem, 0, len(n.Items))}
	for i, it := range n.Items {
		p := join(path, fmt.Sprintf("items[%d]", i))
		slot, err := toUnit(it.Slot, join(p, "slot"))
		if err != nil {
			return nil, err
		}
		var span geom.IntRect
		if it.Span != nil {
			span = *it.Span
		}
		b.Items = append(b.Items, box.GridItem{
			Slot:            slot,
			Span:            span,
			Margin:          rectOr(it.Margin, geom.Rect{}),
			HorizontalAlign: it.HorizontalAlign,
			VerticalAlign:   it.VerticalAlign,
		})
	}
	return b, nil
}

func leafSizes(n *node, path string) (w, h box.SizeValue, err error) {
	w, h = sizeOr(n.Width, box.Fill()), sizeOr(n.Height, box.Fill())
	if w.Mode == box.SizeContent || h.Mode == box.SizeContent {
		return w, h, invalid(path, "%s box size must be \"fill\" or a number", n.Type)
	}
	return w, h, nil
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

func sizeOr(s *size, def box.SizeValue) box.SizeValue {
	if s == nil {
		return def
	}
	return box.SizeValue(*s)
}

func rectOr(r *geom.Rect, def geom.Rect) geom.Rect {
	if r == nil {
		return def
	}
	return *r
}

func vecOr(v *geom.Vec2) geom.Vec2 {
	if v == nil {
		return geom.Vec2{}
	}
	return *v
}

func colorOr(c *box.Color) box.Color {
	if c == nil {
		return box.Color{}
	}
	return *c
}
