// Package geom provides the value types shared by the box tree and the layout
// engine: 2D vectors, axis-aligned rectangles and linear interpolation.
//
// Rectangles are stored as four edges (Left, Right, Top, Bottom) in a
// y-down coordinate space, matching how layouts are consumed by renderers.
// Width and height are derived and are never stored.
package geom
