package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/layout"
	"github.com/matzehuels/boxlayout/pkg/observability"
)

// ComputeLayout runs engine over tree inside the viewport described by opts.
// A nil engine uses [layout.DefaultEngine].
func ComputeLayout(ctx context.Context, engine layout.Engine, tree box.Unit, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	if engine == nil {
		engine = layout.DefaultEngine{}
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, box.Count(tree))
	start := time.Now()

	l, err := engine.Layout(opts.Viewport(), tree)
	hooks.OnLayoutComplete(ctx, l.Len(), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	if pruned := prunedCount(tree, l); pruned > 0 {
		opts.Logger.Debug("boxes not computable", "pruned", pruned)
	}
	return l, nil
}

// prunedCount returns the number of nodes whose identity is missing from l.
func prunedCount(tree box.Unit, l layout.Layout) int {
	n := 0
	box.Walk(tree, func(u box.Unit, _ int) bool {
		if _, ok := l.Item(u.Identity()); !ok {
			n++
		}
		return true
	})
	return n
}
