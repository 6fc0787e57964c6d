package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/geom"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
)

// listDoc is a vertical list with one fixed and two growing rows.
const listDoc = `{
  "type": "flex",
  "id": "list",
  "direction": "top-to-bottom",
  "separation": 10,
  "items": [
    {"slot": {"type": "image", "id": "a", "height": 100}, "fill": 1},
    {"slot": {"type": "image", "id": "b", "height": "fill"}, "fill": 1, "grow": 1},
    {"slot": {"type": "text", "id": "c", "text": "hi", "height": "fill"}, "fill": 1, "grow": 2}
  ]
}`

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"svg", false},
		{"dot", false},
		{"tree", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"svg", []string{"svg"}},
		{"json, svg,,png ", []string{"json", "svg", "png"}},
		{"", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseFormats(tt.in)); diff != "" {
			t.Errorf("ParseFormats(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(FormatTree); got != "tree.svg" {
		t.Errorf("Extension(tree) = %q", got)
	}
	if got := Extension(FormatSVG); got != "svg" {
		t.Errorf("Extension(svg) = %q", got)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("empty options should validate: %v", err)
	}

	if opts.Format != treeio.FormatJSON {
		t.Errorf("Format = %q, want json", opts.Format)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("viewport = %gx%g, want %gx%g", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if diff := cmp.Diff([]string{FormatJSON}, opts.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %g, want %g", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	want := geom.Rect{Right: DefaultWidth, Bottom: DefaultHeight}
	if got := opts.Viewport(); got != want {
		t.Errorf("Viewport() = %+v, want %+v", got, want)
	}
}

func TestOptionsViewportOffset(t *testing.T) {
	opts := Options{Left: 10, Top: 20, Width: 100, Height: 50}
	want := geom.Rect{Left: 10, Right: 110, Top: 20, Bottom: 70}
	if got := opts.Viewport(); got != want {
		t.Errorf("Viewport() = %+v, want %+v", got, want)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidViewport},
		{"huge height", Options{Height: errors.MaxViewportExtent + 1}, errors.ErrCodeInvalidViewport},
		{"bad output", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad tree format", Options{Format: "xml"}, errors.ErrCodeInvalidFormat},
		{"negative scale", Options{Scale: -2}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptionsYMLFormat(t *testing.T) {
	opts := Options{Format: "yml"}
	if err := opts.ValidateForDecode(); err != nil {
		t.Fatalf("ValidateForDecode() error: %v", err)
	}
	if opts.Format != treeio.FormatYAML {
		t.Errorf("Format = %q, want yaml", opts.Format)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Width: 300}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	first := opts.LayoutKeyOpts()

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if diff := cmp.Diff(first, opts.LayoutKeyOpts()); diff != "" {
		t.Errorf("second call changed options (-first +second):\n%s", diff)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Labels: true, Detailed: true, Scale: 3}
	tests := []struct {
		format string
		want   cache.ArtifactKeyOpts
	}{
		{FormatJSON, cache.ArtifactKeyOpts{Format: "json"}},
		{FormatSVG, cache.ArtifactKeyOpts{Format: "svg", Labels: true}},
		{FormatPNG, cache.ArtifactKeyOpts{Format: "png", Labels: true, Scale: 3}},
		{FormatDOT, cache.ArtifactKeyOpts{Format: "dot", Detailed: true}},
		{FormatTree, cache.ArtifactKeyOpts{Format: "tree", Detailed: true}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, opts.ArtifactKeyOpts(tt.format)); diff != "" {
			t.Errorf("ArtifactKeyOpts(%s) mismatch (-want +got):\n%s", tt.format, diff)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"valid", listDoc, ""},
		{"syntax", `{"type":`, errors.ErrCodeInvalidFormat},
		{"unknown kind", `{"type":"circle"}`, errors.ErrCodeInvalidTree},
		{"control char id", `{"type":"image","id":"a\u0007"}`, errors.ErrCodeInvalidTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Decode(context.Background(), []byte(tt.doc), Options{})
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Decode() error: %v", err)
				}
				if n := box.Count(tree); n != 4 {
					t.Errorf("Count = %d, want 4", n)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), []byte(listDoc), Options{Formats: []string{"json", "svg", "dot"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := map[string]geom.Rect{
		"list": {Left: 0, Right: 1024, Top: 0, Bottom: 576},
		"a":    {Left: 0, Right: 1024, Top: 0, Bottom: 100},
		"b":    {Left: 0, Right: 1024, Top: 110, Bottom: 262},
		"c":    {Left: 0, Right: 1024, Top: 272, Bottom: 576},
	}
	got := make(map[string]geom.Rect)
	for id, it := range result.Layout.Items {
		got[id] = it.UISpace
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}

	if result.Stats.NodeCount != 4 || result.Stats.ItemCount != 4 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if result.TreeHash == "" {
		t.Error("TreeHash should be set")
	}
	for _, f := range []string{"json", "svg", "dot"} {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestRunnerCaching(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{"json", "svg"}}

	first, err := runner.Execute(ctx, []byte(listDoc), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss, got %+v", first.CacheInfo)
	}
	if c.len() != 3 {
		t.Errorf("cache entries = %d, want 3 (layout + 2 artifacts)", c.len())
	}

	second, err := runner.Execute(ctx, []byte(listDoc), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit, got %+v", second.CacheInfo)
	}
	if diff := cmp.Diff(first.Layout, second.Layout); diff != "" {
		t.Errorf("cached layout differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Artifacts, second.Artifacts); diff != "" {
		t.Errorf("cached artifacts differ (-first +second):\n%s", diff)
	}

	// A different viewport is a different layout.
	third, err := runner.Execute(ctx, []byte(listDoc), Options{Width: 500, Formats: []string{"json"}})
	if err != nil {
		t.Fatalf("third Execute() error: %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("different viewport should miss the layout cache")
	}
}

func TestRunnerNoCache(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, nil)
	opts := Options{NoCache: true}

	for range 2 {
		result, err := runner.Execute(context.Background(), []byte(listDoc), opts)
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
			t.Error("NoCache should never hit")
		}
	}
	if c.len() != 0 {
		t.Errorf("NoCache should not write, got %d entries", c.len())
	}
}

func TestRunnerCacheFailure(t *testing.T) {
	runner := NewRunner(failingCache{}, nil, nil)
	if _, err := runner.Execute(context.Background(), []byte(listDoc), Options{}); err != nil {
		t.Errorf("cache failures should not fail the pipeline: %v", err)
	}
}

func TestRunnerEmptyTree(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), nil, Options{Formats: []string{"json", "dot"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Layout.Len() != 0 {
		t.Errorf("empty tree should lay out nothing, got %d items", result.Layout.Len())
	}
	if result.Layout.UISpace != (geom.Rect{Right: DefaultWidth, Bottom: DefaultHeight}) {
		t.Errorf("UISpace = %+v", result.Layout.UISpace)
	}
}

func TestRunnerNotComputableRoot(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), []byte(`{"type":"grid","id":"g"}`), Options{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Layout.Len() != 0 {
		t.Errorf("zero-cell grid should lay out nothing, got %v", result.Layout.IDs())
	}
}

// memCache is a minimal in-memory cache.Cache.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func (m *memCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, cache.ErrNetwork
}
func (failingCache) Set(context.Context, string, []byte, time.Duration) error { return cache.ErrNetwork }
func (failingCache) Delete(context.Context, string) error                     { return cache.ErrNetwork }
func (failingCache) Close() error                                             { return nil }
