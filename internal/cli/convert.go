package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/box"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
)

// convertCommand creates the convert command for re-encoding tree documents.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output      string
		inputFormat string
		to          string
	)

	cmd := &cobra.Command{
		Use:   "convert [tree]",
		Short: "Re-encode a tree document as JSON or YAML",
		Long: `Re-encode a tree document as JSON or YAML.

The tree is decoded and validated first, so the output is normalized: default
values are omitted and every node carries an explicit type. Without -o the
result is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := treeio.ParseFormat(to)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return runConvert(cmd.Context(), args[0], inputFormat, format, w)
		},
	}

	cmd.Flags().StringVarP(&to, "format", "f", string(treeio.FormatYAML), "output format: json, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&inputFormat, "input-format", "i", "", "tree format: json, yaml, toml (default: from extension)")

	return cmd
}

func runConvert(ctx context.Context, input, inputFormat string, to treeio.Format, w io.Writer) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	opts := pipeline.Options{Logger: logger}
	tree, err := readTree(ctx, input, inputFormat, &opts)
	if err != nil {
		return err
	}
	if err := treeio.WriteTree(tree, w, to); err != nil {
		return fmt.Errorf("write %s tree: %w", to, err)
	}

	p.done(fmt.Sprintf("Converted %d boxes from %s to %s", box.Count(tree), opts.Format, to))
	return nil
}
