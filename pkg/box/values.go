package box

import "fmt"

// SizeMode selects how a [SizeValue] resolves along one axis.
type SizeMode int

const (
	// SizeContent uses the size of the box's content.
	SizeContent SizeMode = iota
	// SizeFill takes all of the available space.
	SizeFill
	// SizeExact uses a fixed value.
	SizeExact
)

// SizeValue is a per-axis sizing rule. Use [Content], [Fill] or [Exact].
type SizeValue struct {
	Mode  SizeMode
	Value float64
}

// Content returns a content-derived size value.
func Content() SizeValue { return SizeValue{Mode: SizeContent} }

// Fill returns a size value that takes the available space.
func Fill() SizeValue { return SizeValue{Mode: SizeFill} }

// Exact returns a fixed size value.
func Exact(v float64) SizeValue { return SizeValue{Mode: SizeExact, Value: v} }

// IsExact reports whether s is a fixed value.
func (s SizeValue) IsExact() bool { return s.Mode == SizeExact }

// String renders s the way tree documents spell it.
func (s SizeValue) String() string {
	switch s.Mode {
	case SizeFill:
		return "fill"
	case SizeExact:
		return fmt.Sprintf("%g", s.Value)
	default:
		return "content"
	}
}

// Direction is the main axis and order of a [FlexBox], or the flow of a [TextBox].
type Direction int

const (
	HorizontalLeftToRight Direction = iota
	HorizontalRightToLeft
	VerticalTopToBottom
	VerticalBottomToTop
)

var directionNames = map[Direction]string{
	HorizontalLeftToRight: "left-to-right",
	HorizontalRightToLeft: "right-to-left",
	VerticalTopToBottom:   "top-to-bottom",
	VerticalBottomToTop:   "bottom-to-top",
}

// String returns the name used in tree documents.
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "unknown"
}

// ParseDirection maps a tree document direction name back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return d, true
		}
	}
	return HorizontalLeftToRight, false
}

// IsHorizontal reports whether the main axis is x.
func (d Direction) IsHorizontal() bool {
	return d == HorizontalLeftToRight || d == HorizontalRightToLeft
}

// IsVertical reports whether the main axis is y.
func (d Direction) IsVertical() bool { return !d.IsHorizontal() }

// IsOrderAscending reports whether items are placed from the origin outward.
func (d Direction) IsOrderAscending() bool {
	return d == HorizontalLeftToRight || d == VerticalTopToBottom
}

// TextAlignment is the horizontal alignment of text inside a [TextBox].
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

var alignmentNames = map[TextAlignment]string{
	TextAlignLeft:   "left",
	TextAlignCenter: "center",
	TextAlignRight:  "right",
}

func (a TextAlignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseTextAlignment maps a tree document alignment name back to a TextAlignment.
func ParseTextAlignment(s string) (TextAlignment, bool) {
	for a, name := range alignmentNames {
		if name == s {
			return a, true
		}
	}
	return TextAlignLeft, false
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r" toml:"r"`
	G float64 `json:"g" yaml:"g" toml:"g"`
	B float64 `json:"b" yaml:"b" toml:"b"`
	A float64 `json:"a" yaml:"a" toml:"a"`
}

// IsZero reports whether c is fully transparent black, the unset value.
func (c Color) IsZero() bool { return c == Color{} }

// Hex formats c as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Font describes how a [TextBox] is typeset. Layout ignores it.
type Font struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty" toml:"name"`
	Size   float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size"`
	Bold   bool    `json:"bold,omitempty" yaml:"bold,omitempty" toml:"bold"`
	Italic bool    `json:"italic,omitempty" yaml:"italic,omitempty" toml:"italic"`
}
