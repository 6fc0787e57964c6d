// Package layout computes screen-space geometry for a box tree.
//
// # Overview
//
// [Compute] is a pure function from a box tree snapshot and a viewport
// rectangle to a [Layout]: the viewport echoed back plus a map from node
// identity to its rectangle relative to its parent and its rectangle in
// viewport coordinates.
//
// Layout runs top-down. [LayoutNode] dispatches on the box kind and each
// algorithm decides the size budget it hands to its children, recursing
// through LayoutNode again. Flex containers additionally query a bottom-up
// natural size for items without an explicit basis (see [NaturalWidth]).
// The nested result is then flattened post-order into the map.
//
// # Algorithms
//
//   - Content: children are placed by fractional anchors, margins and offsets,
//     then aligned inside the anchored box. The container fills its space.
//   - Flex: items are sized along the main axis from natural size or basis
//     plus margins, with leftover space distributed by grow (or overflow by
//     shrink) weights. Wrapping flex boxes pack items greedily into lines and
//     only grow. The container is content-sized.
//   - Grid: the space is split into equal cells and items span cell ranges.
//     A grid with zero rows or columns is not computable.
//   - Size: a single child inset by margins; each axis is content, fill or exact.
//   - Image and text leaves: fill or exact per axis.
//
// # Natural size
//
// The natural-size calculator only sees through size boxes whose axis is
// content-sized and through leaves with exact sizes. Flex, grid and content
// boxes contribute zero. An unsized flex box nested in another flex box
// therefore collapses to zero on the main axis unless the outer item has a
// basis. This is intended and relied upon by existing trees.
//
// # Failure
//
// There are no errors. A node that is empty or not computable is dropped from
// its parent's children and is absent from the map. If the root itself is not
// computable the result is the viewport with an empty map.
//
// Compute holds no state and allocates a fresh result per call, so it is safe
// to call concurrently on independent inputs.
package layout
