// Package io reads and writes box tree documents.
//
// # Overview
//
// A tree document describes a [box.Unit] tree in JSON, YAML or TOML. All three
// encodings share one schema, so a tree can be written in whichever format
// is convenient and converted losslessly between them.
//
// # Document Format
//
// Every node has a "type" and an optional "id":
//
//	{
//	  "type": "flex",
//	  "id": "list",
//	  "direction": "top-to-bottom",
//	  "separation": 10,
//	  "items": [
//	    {"fill": 1, "slot": {"type": "size", "id": "a", "width": "fill", "height": 100}},
//	    {"fill": 1, "grow": 1, "slot": {"type": "size", "id": "b", "width": "fill", "height": "fill"}}
//	  ]
//	}
//
// Node types and their fields:
//
//   - none: an empty slot.
//   - content: items (slot, anchors, margin, offset, horizontal_align,
//     vertical_align, depth), clipping.
//   - flex: items (slot, basis, fill, grow, shrink, align, margin),
//     direction, separation, wrap.
//   - grid: items (slot, span, margin, horizontal_align, vertical_align),
//     cols, rows.
//   - size: slot, width, height, margin.
//   - image: width, height, image, tint.
//   - text: text, width, height, alignment, direction, font, color.
//
// Size values are "fill", "content" or a number. Size boxes default to
// "content"; image and text boxes default to "fill" and reject "content".
// Content items without anchors fill their parent.
//
// Directions are left-to-right, right-to-left, top-to-bottom and
// bottom-to-top. Text alignments are left, center and right.
//
// # Import
//
// Use [ImportFile] to read a document from a path (the format follows the
// extension), or [ReadTree] to read from any io.Reader:
//
//	tree, err := io.ImportFile("menu.yaml")
//
// Malformed documents produce errors with code INVALID_TREE naming the
// offending node, e.g. "items[2].slot: unknown node type".
//
// # Export
//
// [WriteTree] and [ExportFile] encode a tree as JSON or YAML. [MarshalTree]
// produces the canonical JSON encoding used for content hashing.
package io
