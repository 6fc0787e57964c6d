package io

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

// node is the document form of every box kind.
type node struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`

	Items []item `json:"items,omitempty" yaml:"items,omitempty"`
	Slot  *node  `json:"slot,omitempty" yaml:"slot,omitempty"`

	// content
	Clipping bool `json:"clipping,omitempty" yaml:"clipping,omitempty"`

	// flex
	Direction  string  `json:"direction,omitempty" yaml:"direction,omitempty"`
	Separation float64 `json:"separation,omitempty" yaml:"separation,omitempty"`
	Wrap       bool    `json:"wrap,omitempty" yaml:"wrap,omitempty"`

	// grid
	Cols int `json:"cols,omitempty" yaml:"cols,omitempty"`
	Rows int `json:"rows,omitempty" yaml:"rows,omitempty"`

	// size, image, text
	Width  *size      `json:"width,omitempty" yaml:"width,omitempty"`
	Height *size      `json:"height,omitempty" yaml:"height,omitempty"`
	Margin *geom.Rect `json:"margin,omitempty" yaml:"margin,omitempty"`

	Image     string     `json:"image,omitempty" yaml:"image,omitempty"`
	Tint      *box.Color `json:"tint,omitempty" yaml:"tint,omitempty"`
	Text      string     `json:"text,omitempty" yaml:"text,omitempty"`
	Alignment string     `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Font      *box.Font  `json:"font,omitempty" yaml:"font,omitempty"`
	Color     *box.Color `json:"color,omitempty" yaml:"color,omitempty"`
}

// item is the document form of content, flex and grid item slots.
type item struct {
	Slot   *node      `json:"slot,omitempty" yaml:"slot,omitempty"`
	Margin *geom.Rect `json:"margin,omitempty" yaml:"margin,omitempty"`

	// content
	Anchors *geom.Rect `json:"anchors,omitempty" yaml:"anchors,omitempty"`
	Offset  *geom.Vec2 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Depth   float64    `json:"depth,omitempty" yaml:"depth,omitempty"`

	// content and grid
	HorizontalAlign float64 `json:"horizontal_align,omitempty" yaml:"horizontal_align,omitempty"`
	VerticalAlign   float64 `json:"vertical_align,omitempty" yaml:"vertical_align,omitempty"`

	// flex
	Basis  *float64 `json:"basis,omitempty" yaml:"basis,omitempty"`
	Fill   float64  `json:"fill,omitempty" yaml:"fill,omitempty"`
	Grow   float64  `json:"grow,omitempty" yaml:"grow,omitempty"`
	Shrink float64  `json:"shrink,omitempty" yaml:"shrink,omitempty"`
	Align  float64  `json:"align,omitempty" yaml:"align,omitempty"`

	// grid
	Span *geom.IntRect `json:"span,omitempty" yaml:"span,omitempty"`
}

// size is a [box.SizeValue] spelled "fill", "content" or as a number.
type size box.SizeValue

func (s *size) set(v any) error {
	switch x := v.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "fill":
			*s = size(box.Fill())
		case "content":
			*s = size(box.Content())
		default:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return fmt.Errorf("size must be \"fill\", \"content\" or a number, got %q", x)
			}
			*s = size(box.Exact(f))
		}
	case float64:
		*s = size(box.Exact(x))
	case int:
		*s = size(box.Exact(float64(x)))
	case int64:
		*s = size(box.Exact(float64(x)))
	default:
		return fmt.Errorf("size must be \"fill\", \"content\" or a number, got %v", v)
	}
	if s.Mode == box.SizeExact && s.Value < 0 {
		return fmt.Errorf("size cannot be negative, got %g", s.Value)
	}
	return nil
}

func (s size) value() any {
	if s.Mode == box.SizeExact {
		return s.Value
	}
	return box.SizeValue(s).String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *size) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return s.set(v)
}

// MarshalJSON implements json.Marshaler.
func (s size) MarshalJSON() ([]byte, error) { return json.Marshal(s.value()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *size) UnmarshalYAML(n *yaml.Node) error {
	var v any
	if err := n.Decode(&v); err != nil {
		return err
	}
	return s.set(v)
}

// MarshalYAML implements yaml.Marshaler.
func (s size) MarshalYAML() (any, error) { return s.value(), nil }
