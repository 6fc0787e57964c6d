// Package sink renders layouts into output formats.
//
// Each format has a RenderX function taking a [layout.Layout] and functional
// options. The tree the layout was computed from is optional everywhere
// except [ToDOT]; passing it with [WithTree] or [WithJSONTree] adds kinds,
// text and colors to the output.
//
// Output is deterministic: items are emitted in tree pre-order when a tree is
// given and by identity otherwise.
//
// [layout.Layout]: github.com/matzehuels/boxlayout/pkg/layout.Layout
package sink
