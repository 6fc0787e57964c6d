package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	NoopPipelineHooks
	NoopHTTPHooks
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) OnLayoutStart(context.Context, int)      { r.add("layout") }
func (r *recorder) OnCacheHit(_ context.Context, k string)  { r.add("hit " + k) }
func (r *recorder) OnCacheMiss(_ context.Context, k string) { r.add("miss " + k) }
func (r *recorder) OnCacheSet(context.Context, string, int) { r.add("set") }

var _ AllHooks = (*recorder)(nil)

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	ctx := context.Background()
	Pipeline().OnDecodeComplete(ctx, "json", 12, time.Second, nil)
	Cache().OnCacheSet(ctx, "artifact", 1024)
	HTTP().OnResponse(ctx, "POST", "/v1/layouts", 201, time.Second)
}

func TestSetters(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name  string
		set   func(*recorder)
		check func(*recorder) bool
	}{
		{"pipeline", func(r *recorder) { SetPipelineHooks(r) }, func(r *recorder) bool { return Pipeline() == PipelineHooks(r) }},
		{"cache", func(r *recorder) { SetCacheHooks(r) }, func(r *recorder) bool { return Cache() == CacheHooks(r) }},
		{"http", func(r *recorder) { SetHTTPHooks(r) }, func(r *recorder) bool { return HTTP() == HTTPHooks(r) }},
		{"all", func(r *recorder) { SetAll(r) }, func(r *recorder) bool {
			return Pipeline() == PipelineHooks(r) && Cache() == CacheHooks(r) && HTTP() == HTTPHooks(r)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			r := &recorder{}
			tt.set(r)
			if !tt.check(r) {
				t.Error("hooks not installed")
			}
		})
	}
}

func TestSetterKeepsOtherAreas(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r := &recorder{}
	SetCacheHooks(r)
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("SetCacheHooks should leave pipeline hooks alone")
	}

	Cache().OnCacheMiss(context.Background(), "layout")
	Cache().OnCacheHit(context.Background(), "layout")
	if len(r.events) != 2 || r.events[0] != "miss layout" || r.events[1] != "hit layout" {
		t.Errorf("events = %v", r.events)
	}
}

func TestNilIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r := &recorder{}
	SetAll(r)
	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)
	SetAll(nil)

	if Pipeline() != PipelineHooks(r) || Cache() != CacheHooks(r) {
		t.Error("nil hooks should not replace installed ones")
	}
}

func TestConcurrentUse(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r := &recorder{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetPipelineHooks(r)
			SetCacheHooks(r)
		}()
		go func() {
			defer wg.Done()
			Pipeline().OnLayoutStart(context.Background(), 1)
			Cache().OnCacheSet(context.Background(), "layout", 1)
		}()
	}
	wg.Wait()

	if Pipeline() != PipelineHooks(r) || Cache() != CacheHooks(r) {
		t.Error("hooks lost under concurrent updates")
	}
}
