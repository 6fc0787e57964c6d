// Package observability lets callers watch the layout pipeline, the caches and
// the HTTP API without those packages importing a metrics or tracing stack.
//
// Each area has a hook interface with a no-op implementation installed by
// default. main (or a test) replaces them once at startup:
//
//	observability.SetAll(myHooks) // implements every interface
//	observability.SetCacheHooks(cacheCounters)
//
// and instrumented code fetches the current hooks at the call site:
//
//	hooks := observability.Pipeline()
//	hooks.OnLayoutStart(ctx, box.Count(tree))
//	l, err := engine.Layout(viewport, tree)
//	hooks.OnLayoutComplete(ctx, l.Len(), time.Since(start), err)
//
// The layout core itself is never instrumented; the pipeline reports around it.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from the decode, layout and render stages.
type PipelineHooks interface {
	OnDecodeStart(ctx context.Context, format string)
	OnDecodeComplete(ctx context.Context, format string, nodeCount int, duration time.Duration, err error)

	// nodeCount counts boxes in the tree; itemCount counts boxes that were
	// laid out, so the difference is what got pruned.
	OnLayoutStart(ctx context.Context, nodeCount int)
	OnLayoutComplete(ctx context.Context, itemCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes made by the pipeline runner.
// kind is "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// HTTPHooks receives requests served by the API. route is the matched chi
// pattern, such as "/v1/layouts/{id}".
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// AllHooks is implemented by hook sets covering every area.
type AllHooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDecodeStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnDecodeComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)    {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry is replaced wholesale on every change, so readers never lock.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

// update applies fn to a copy of the registry and publishes it.
func update(fn func(r *registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// SetAll installs h for every area at once. A nil h is ignored.
func SetAll(h AllHooks) {
	if h != nil {
		current.Store(&registry{pipeline: h, cache: h, http: h})
	}
}

func Pipeline() PipelineHooks { return current.Load().pipeline }
func Cache() CacheHooks       { return current.Load().cache }
func HTTP() HTTPHooks         { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	})
}
