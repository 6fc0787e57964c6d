// Package pipeline runs a tree document through decode, layout and render.
//
// The CLI and the HTTP API both go through this package, so a document is
// validated, cached and rendered identically whichever way it arrives.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Format:  treeio.FormatYAML,
//	    Width:   1280,
//	    Height:  720,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
//
// The stages are also exported on their own ([Decode], [Runner.ComputeLayout],
// [Runner.Render]) for callers that already hold a tree or a layout.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatTree = "tree" // the box tree drawn by Graphviz
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// outputFormats lists every output format in help-text order.
var outputFormats = []string{FormatJSON, FormatSVG, FormatDOT, FormatTree, FormatPNG, FormatPDF}

// ValidFormats holds the names in outputFormats.
var ValidFormats = func() map[string]bool {
	m := make(map[string]bool, len(outputFormats))
	for _, f := range outputFormats {
		m[f] = true
	}
	return m
}()

// Extension returns the file extension written for format.
func Extension(format string) string {
	if format == FormatTree {
		return "tree.svg"
	}
	return format
}

func ValidateFormat(format string) error {
	if ValidFormats[format] {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
		format, strings.Join(outputFormats, ", "))
}

func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated list such as "svg, png", dropping
// empty entries.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func formatError(format string, err error) error {
	return fmt.Errorf("render %s: %w", format, err)
}

// Result is what [Runner.Execute] produces.
type Result struct {
	Tree      box.Unit
	TreeHash  string // hash of the canonical JSON encoding of Tree
	Layout    layout.Layout
	Artifacts map[string][]byte // keyed by output format
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats describes one run. NodeCount minus ItemCount is the number of boxes
// that were pruned or carry no identity.
type Stats struct {
	NodeCount  int
	ItemCount  int
	DecodeTime time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from the cache. RenderHit is
// set only when every requested artifact was.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool
}
