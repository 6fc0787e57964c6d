// Package pkg provides the core libraries for boxlayout.
//
// # Overview
//
// boxlayout turns a tree of UI boxes into geometry: for every box with an
// identity it computes a rectangle relative to its parent and an absolute
// rectangle inside the viewport. The pkg directory is organized into three
// areas:
//
//  1. Model and engine - [geom], [box], [layout]
//  2. Documents and outputs - [io], [render], [render/sink]
//  3. Infrastructure - [pipeline], [cache], [store], [api], [observability], [errors]
//
// # Architecture
//
// The typical data flow:
//
//	Tree document (JSON, YAML, TOML)
//	         ↓
//	    [io] package (decode into a box tree)
//	         ↓
//	    [layout] package (compute rectangles)
//	         ↓
//	    [render/sink] package (JSON, SVG, DOT, Graphviz, PNG, PDF)
//
// [pipeline] wires these stages together with caching and is shared by the
// CLI and the HTTP API.
//
// # Quick Start
//
// Build a tree and lay it out:
//
//	import (
//	    "github.com/matzehuels/boxlayout/pkg/box"
//	    "github.com/matzehuels/boxlayout/pkg/geom"
//	    "github.com/matzehuels/boxlayout/pkg/layout"
//	)
//
//	tree := &box.FlexBox{
//	    ID:         "row",
//	    Separation: 10,
//	    Items: []box.FlexItem{
//	        {Slot: &box.ImageBox{ID: "icon", Width: box.Exact(32), Height: box.Exact(32)}},
//	        {Slot: &box.TextBox{ID: "label", Text: "Hello"}, Grow: 1, Fill: 1},
//	    },
//	}
//	l := layout.Compute(geom.Rect{Right: 320, Bottom: 32}, tree)
//	label, _ := l.Item("label") // label.UISpace == {Left: 42, Right: 320, Top: 0, Bottom: 32}
//
// Read a document and render a wireframe:
//
//	tree, _ := io.ImportFile("screen.yaml")
//	l := layout.Compute(viewport, tree)
//	svg := sink.RenderSVG(l, sink.WithTree(tree), sink.WithLabels())
//
// # Main Packages
//
// [geom] - Vectors, float and integer rectangles, and linear interpolation.
//
// [box] - The box tree: content (anchored), flex, grid and size containers,
// image and text leaves, and the empty box. Size values are fill, content or
// an exact number.
//
// [layout] - The engine. Lays out each box kind, prunes subtrees that cannot
// be computed and flattens the result into a map from identity to
// rectangles. Pure and safe for concurrent use.
//
// [io] - Tree documents in JSON, YAML and TOML.
//
// [render/sink] - Output formats: JSON layout export, SVG wireframe, DOT and
// Graphviz-rendered SVG of the box tree, PNG and PDF. [render] converts SVG to
// PNG and PDF.
//
// [pipeline] - decode → layout → render with caching, used by CLI and API.
//
// [cache] - Content-hash keyed caches: file, bbolt, Redis and no-op backends.
//
// [store] - Persisted layout records: memory, file and MongoDB backends.
//
// [api] - HTTP API over the pipeline and the store.
//
// # Testing
//
// Run tests:
//
//	go test ./...                 # All tests
//	go test -short ./...          # Skip tests that need Graphviz or rsvg-convert
//	go test ./pkg/layout/...      # Engine only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/geom
// [box]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/box
// [layout]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/layout
// [io]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/store
// [api]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/boxlayout/pkg/errors
package pkg
