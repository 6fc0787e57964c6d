// Package box defines the declarative box tree that the layout engine consumes.
//
// # Overview
//
// A box tree is a closed sum type: every node is one of a fixed set of kinds
// (none, content, flex, grid, size, image, text). Each kind is a concrete
// struct implementing [Unit]; the set is sealed by an unexported method so no
// package outside box can add a kind the layout engine does not know how to
// measure. Consumers dispatch with a type switch or on [Unit.Kind].
//
// All kinds share two capabilities only: a stable string identity ([Unit.Identity])
// and zero or more child slots ([Unit.Children]). Identities are the keys of
// the computed layout map, so they must be unique within one tree. Duplicate
// identities are not rejected here; [DuplicateIDs] reports them for callers
// that want to warn.
//
// # Kinds
//
//   - [None]: an empty slot. Lays out to nothing.
//   - [ContentBox]: children placed by fractional anchors inside the parent.
//   - [FlexBox]: children placed along a main axis with grow/shrink/wrap.
//   - [GridBox]: children placed on a fixed rows x cols cell grid.
//   - [SizeBox]: a single optional child with per-axis sizing and margins.
//   - [ImageBox], [TextBox]: leaves sized by [SizeValue].
//
// Trees are built by value and treated as immutable snapshots once handed to
// the layout engine.
package box
