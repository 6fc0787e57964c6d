package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/pipeline"
)

// renderCommand creates the render command: tree document in, artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr  string
		output      string
		inputFormat string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [tree]",
		Short: "Lay out a box tree and render it",
		Long: `Lay out a box tree and render it.

Formats:
  json  layout export with every box's local and absolute rectangle
  svg   wireframe of the laid-out boxes (text and image tints included)
  dot   Graphviz source of the box tree annotated with rectangles
  tree  the box tree drawn by Graphviz, as SVG
  png   the wireframe rasterized (requires rsvg-convert)
  pdf   the wireframe as PDF (requires rsvg-convert)

With a single format, -o names the output file. With several, -o is a base
path and each format is written to <base>.<ext>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			c.applyConfig(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], inputFormat, output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&inputFormat, "input-format", "i", "", "tree format: json, yaml, toml (default: from extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg, dot, tree, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw box identities on the wireframe")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "annotate tree nodes with their rectangles (dot, tree)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")
	viewportFlags(cmd, &opts)

	return cmd
}

// runRender runs the whole pipeline on the tree at input and writes every
// requested artifact.
func (c *CLI) runRender(ctx context.Context, input, inputFormat, output string, opts pipeline.Options) error {
	doc, err := readTreeFile(input, inputFormat, &opts)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.NoCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", input, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d artifact(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.ItemCount, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes each format's bytes and returns the written paths in
// format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, fmt.Errorf("no %s artifact produced", format)
		}
		path := artifactPath(format, len(formats), input, output)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// layoutExt is the extension of JSON layout files. It keeps a JSON layout from
// overwriting a JSON tree document of the same base name.
const layoutExt = "layout.json"

// artifactPath picks the output path for one format. A single format with an
// explicit output is written there verbatim.
func artifactPath(format string, count int, input, output string) string {
	if count == 1 && output != "" {
		return output
	}
	ext := pipeline.Extension(format)
	if format == pipeline.FormatJSON {
		ext = layoutExt
	}
	return basePath(output, input) + "." + ext
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .layout.json, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return trimExt(input)
	}
	if strings.HasSuffix(output, "."+layoutExt) {
		return strings.TrimSuffix(output, "."+layoutExt)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
