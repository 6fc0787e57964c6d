package geom

// Lerp interpolates between a and b by factor t.
// t is not clamped; t=0 yields a and t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X float64 `json:"x" bson:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" bson:"y" yaml:"y" toml:"y"`
}

// Add returns v translated by o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v minus o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// LerpVec2 interpolates each component of a and b independently.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Rect is an axis-aligned rectangle described by its four edges.
type Rect struct {
	Left   float64 `json:"left" bson:"left" yaml:"left" toml:"left"`
	Right  float64 `json:"right" bson:"right" yaml:"right" toml:"right"`
	Top    float64 `json:"top" bson:"top" yaml:"top" toml:"top"`
	Bottom float64 `json:"bottom" bson:"bottom" yaml:"bottom" toml:"bottom"`
}

// RectFromSize returns a rectangle anchored at the origin with the given size.
func RectFromSize(size Vec2) Rect {
	return Rect{Right: size.X, Bottom: size.Y}
}

// Width returns the horizontal span of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the width and height of r as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.Width(), Y: r.Height()} }

// Origin returns the top-left corner of r.
func (r Rect) Origin() Vec2 { return Vec2{X: r.Left, Y: r.Top} }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{
		Left:   r.Left + d.X,
		Right:  r.Right + d.X,
		Top:    r.Top + d.Y,
		Bottom: r.Bottom + d.Y,
	}
}

// Contains reports whether p lies inside r.
// Points on the left and top edges are inside; right and bottom edges are outside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Area returns the area of r, or zero if r is inverted.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Horizontal returns the sum of the Left and Right values.
// Used when a Rect holds per-side margins rather than edges.
func (r Rect) Horizontal() float64 { return r.Left + r.Right }

// Vertical returns the sum of the Top and Bottom values.
// Used when a Rect holds per-side margins rather than edges.
func (r Rect) Vertical() float64 { return r.Top + r.Bottom }

// IntRect is a rectangle in integer cell units, used for grid spans.
type IntRect struct {
	Left   int `json:"left" bson:"left" yaml:"left" toml:"left"`
	Right  int `json:"right" bson:"right" yaml:"right" toml:"right"`
	Top    int `json:"top" bson:"top" yaml:"top" toml:"top"`
	Bottom int `json:"bottom" bson:"bottom" yaml:"bottom" toml:"bottom"`
}
