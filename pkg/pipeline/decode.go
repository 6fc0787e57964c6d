package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/boxlayout/pkg/box"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
	"github.com/matzehuels/boxlayout/pkg/observability"
)

// Decode reads a tree document. Duplicate identities are allowed but logged.
func Decode(ctx context.Context, data []byte, opts Options) (box.Unit, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, string(opts.Format))
	start := time.Now()

	tree, err := treeio.DecodeTree(data, opts.Format)
	hooks.OnDecodeComplete(ctx, string(opts.Format), box.Count(tree), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if dups := box.DuplicateIDs(tree); len(dups) > 0 {
		opts.Logger.Warn("duplicate identities, last one wins", "ids", dups)
	}
	return tree, nil
}
