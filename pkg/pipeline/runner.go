package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/cache"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
	"github.com/matzehuels/boxlayout/pkg/layout"
	"github.com/matzehuels/boxlayout/pkg/observability"
)

// Runner adds caching around the pipeline stages. It holds no per-run state
// and may be shared between goroutines.
//
// Cache failures never fail a run: a read error counts as a miss and a
// write error is logged at debug level and dropped.
type Runner struct {
	Engine layout.Engine
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner using the default engine. A nil cache disables
// caching, a nil keyer selects [cache.DefaultKeyer] and a nil logger the
// package default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	r := &Runner{Engine: layout.DefaultEngine{}, Cache: c, Keyer: keyer, Logger: logger}
	if r.Cache == nil {
		r.Cache = cache.NewNullCache()
	}
	if r.Keyer == nil {
		r.Keyer = cache.NewDefaultKeyer()
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// Execute decodes doc, lays it out and renders every requested format.
func (r *Runner) Execute(ctx context.Context, doc []byte, opts Options) (*Result, error) {
	r.defaults(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	res := &Result{}

	start := time.Now()
	tree, err := Decode(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	res.Tree = tree
	res.Stats.NodeCount = box.Count(tree)
	res.Stats.DecodeTime = time.Since(start)
	r.Logger.Info("decoded tree", "nodes", res.Stats.NodeCount, "depth", box.Depth(tree),
		"duration", res.Stats.DecodeTime)

	start = time.Now()
	res.Layout, res.TreeHash, res.CacheInfo.LayoutHit, err = r.layout(ctx, tree, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	res.Stats.ItemCount = res.Layout.Len()
	res.Stats.LayoutTime = time.Since(start)
	r.Logger.Info("computed layout", "items", res.Stats.ItemCount, "cached", res.CacheInfo.LayoutHit,
		"duration", res.Stats.LayoutTime)

	start = time.Now()
	res.Artifacts, res.CacheInfo.RenderHit, err = r.RenderWithCacheInfo(ctx, res.Layout, tree, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(start)
	r.Logger.Info("rendered outputs", "formats", opts.Formats, "cached", res.CacheInfo.RenderHit,
		"duration", res.Stats.RenderTime)

	return res, nil
}

func (r *Runner) ComputeLayout(ctx context.Context, tree box.Unit, opts Options) (layout.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, tree, opts)
	return l, err
}

// ComputeLayoutWithCacheInfo lays tree out, reporting whether the layout was
// served from the cache.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, tree box.Unit, opts Options) (layout.Layout, bool, error) {
	l, _, hit, err := r.layout(ctx, tree, opts)
	return l, hit, err
}

// layout is keyed by the hash of the canonical tree encoding plus the
// viewport, and also returns that tree hash.
func (r *Runner) layout(ctx context.Context, tree box.Unit, opts Options) (layout.Layout, string, bool, error) {
	r.defaults(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, "", false, err
	}

	treeData, err := treeio.MarshalTree(tree)
	if err != nil {
		return layout.Layout{}, "", false, fmt.Errorf("serialize tree for cache key: %w", err)
	}
	treeHash := cache.Hash(treeData)
	key := r.Keyer.LayoutKey(treeHash, opts.LayoutKeyOpts())

	if data, ok := r.lookup(ctx, key, opts.NoCache); ok {
		var cached layout.Layout
		if json.Unmarshal(data, &cached) == nil {
			return cached, treeHash, true, nil
		}
		r.Logger.Debug("discarding undecodable cached layout", "key", key)
	}

	l, err := ComputeLayout(ctx, r.Engine, tree, opts)
	if err != nil {
		return layout.Layout{}, "", false, err
	}
	if data, err := json.Marshal(l); err == nil {
		r.store(ctx, key, data, cache.LayoutTTL, opts.NoCache)
	}
	return l, treeHash, false, nil
}

func (r *Runner) Render(ctx context.Context, l layout.Layout, tree box.Unit, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, tree, opts)
	return artifacts, err
}

// RenderWithCacheInfo renders opts.Formats. The cache is used only when it
// holds every requested format; otherwise all of them are rendered again.
// Sinks read kinds, text and tints from the tree, so artifacts are keyed by
// tree and layout together.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, tree box.Unit, opts Options) (map[string][]byte, bool, error) {
	r.defaults(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hash, err := artifactHash(l, tree)
	if err != nil {
		return nil, false, err
	}
	keyOf := func(format string) string {
		return r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
	}

	cached := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, ok := r.lookup(ctx, keyOf(format), opts.NoCache)
		if !ok {
			break
		}
		cached[format] = data
	}
	if len(cached) == len(opts.Formats) {
		return cached, true, nil
	}

	rendered, err := Render(ctx, l, tree, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.store(ctx, keyOf(format), data, cache.ArtifactTTL, opts.NoCache)
	}
	return rendered, false, nil
}

// Close closes the cache.
func (r *Runner) Close() error {
	if r.Cache == nil {
		return nil
	}
	return r.Cache.Close()
}

func (r *Runner) lookup(ctx context.Context, key string, skip bool) ([]byte, bool) {
	if skip {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "key", key, "err", err)
		return nil, false
	}
	kind := string(cache.KindOf(key))
	if hit {
		observability.Cache().OnCacheHit(ctx, kind)
	} else {
		observability.Cache().OnCacheMiss(ctx, kind)
	}
	return data, hit
}

func (r *Runner) store(ctx context.Context, key string, data []byte, ttl time.Duration, skip bool) {
	if skip {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, string(cache.KindOf(key)), len(data))
}

func (r *Runner) defaults(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// artifactHash hashes the canonical tree and the layout JSON, newline
// separated.
func artifactHash(l layout.Layout, tree box.Unit) (string, error) {
	layoutData, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("serialize layout for cache key: %w", err)
	}
	treeData, err := treeio.MarshalTree(tree)
	if err != nil {
		return "", fmt.Errorf("serialize tree for cache key: %w", err)
	}
	return cache.Hash(append(append(treeData, '\n'), layoutData...)), nil
}
