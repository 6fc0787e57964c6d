package layout

import "github.com/matzehuels/boxlayout/pkg/box"

// NaturalWidth returns the bottom-up minimum width of u.
//
// Only leaves with an exact width and size boxes contribute. A size box adds
// its horizontal margins to its own width, recursing into its slot when the
// width is content-sized and contributing nothing when it fills. Every other
// kind measures zero.
func NaturalWidth(u box.Unit) float64 {
	switch b := u.(type) {
	case *box.ImageBox:
		return exactOrZero(b.Width)
	case *box.TextBox:
		return exactOrZero(b.Width)
	case *box.SizeBox:
		return b.Margin.Horizontal() + naturalAxis(b.Width, b.Slot, NaturalWidth)
	default:
		return 0
	}
}

// NaturalHeight is the vertical counterpart of [NaturalWidth].
func NaturalHeight(u box.Unit) float64 {
	switch b := u.(type) {
	case *box.ImageBox:
		return exactOrZero(b.Height)
	case *box.TextBox:
		return exactOrZero(b.Height)
	case *box.SizeBox:
		return b.Margin.Vertical() + naturalAxis(b.Height, b.Slot, NaturalHeight)
	default:
		return 0
	}
}

func naturalAxis(v box.SizeValue, slot box.Unit, measure func(box.Unit) float64) float64 {
	switch v.Mode {
	case box.SizeContent:
		return measure(slot)
	case box.SizeExact:
		return v.Value
	default:
		return 0
	}
}

func exactOrZero(v box.SizeValue) float64 {
	if v.IsExact() {
		return v.Value
	}
	return 0
}
