package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/errors"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
	"github.com/matzehuels/boxlayout/pkg/render/sink"
)

// layoutCommand creates the layout command for computing box geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output      string
		inputFormat string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [tree]",
		Short: "Compute the layout of a box tree",
		Long: `Compute the layout of a box tree.

The layout command reads a tree document (JSON, YAML or TOML, inferred from the
file extension) and computes the local and absolute rectangle of every box
inside the viewport. The output is a <tree>.layout.json file, the same format
as 'render -f json'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts)
			return c.runLayout(cmd.Context(), args[0], inputFormat, output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&inputFormat, "input-format", "i", "", "tree format: json, yaml, toml (default: from extension)")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")
	viewportFlags(cmd, &opts)

	return cmd
}

// runLayout loads the tree, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, inputFormat, output string, opts pipeline.Options) error {
	tree, err := readTree(ctx, input, inputFormat, &opts)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.NoCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, tree, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = trimExt(input) + "." + layoutExt
	}

	data, err := sink.RenderJSON(l, sink.WithJSONTree(tree), sink.WithJSONIndent())
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(box.Count(tree), l.Len(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render -f svg "+input)

	return nil
}

// readTree reads and decodes the tree document at path. The format comes from
// inputFormat, or from the file extension when inputFormat is empty; the
// resolved format is stored in opts.
func readTree(ctx context.Context, path, inputFormat string, opts *pipeline.Options) (box.Unit, error) {
	data, err := readTreeFile(path, inputFormat, opts)
	if err != nil {
		return nil, err
	}
	tree, err := pipeline.Decode(ctx, data, *opts)
	if err != nil {
		return nil, fmt.Errorf("load tree %s: %w", path, err)
	}
	return tree, nil
}

// readTreeFile reads the raw tree document and resolves its format.
func readTreeFile(path, inputFormat string, opts *pipeline.Options) ([]byte, error) {
	format, err := resolveFormat(path, inputFormat)
	if err != nil {
		return nil, err
	}
	opts.Format = format

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tree file %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func resolveFormat(path, inputFormat string) (treeio.Format, error) {
	if inputFormat != "" {
		return treeio.ParseFormat(inputFormat)
	}
	return treeio.FormatFromPath(path)
}

// trimExt strips the file extension from path.
func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
