package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
)

func ptr(v float64) *float64 { return &v }

func rect(left, right, top, bottom float64) geom.Rect {
	return geom.Rect{Left: left, Right: right, Top: top, Bottom: bottom}
}

func fillBox(id string) *box.SizeBox {
	return &box.SizeBox{ID: id, Width: box.Fill(), Height: box.Fill()}
}

// uiSpaces extracts the absolute rectangles of a layout for comparison.
func uiSpaces(l Layout) map[string]geom.Rect {
	out := make(map[string]geom.Rect, len(l.Items))
	for id, it := range l.Items {
		out[id] = it.UISpace
	}
	return out
}

func verticalList() box.Unit {
	return &box.FlexBox{
		ID:         "list",
		Direction:  box.VerticalTopToBottom,
		Separation: 10,
		Items: []box.FlexItem{
			{Slot: &box.SizeBox{ID: "a", Width: box.Fill(), Height: box.Exact(100)}, Fill: 1},
			{Slot: fillBox("b"), Fill: 1, Grow: 1},
			{Slot: fillBox("c"), Fill: 1, Grow: 2},
		},
	}
}

func TestComputeVerticalList(t *testing.T) {
	got := Compute(rect(0, 1024, 0, 576), verticalList())

	want := map[string]geom.Rect{
		"list": rect(0, 1024, 0, 576),
		"a":    rect(0, 1024, 0, 100),
		"b":    rect(0, 1024, 110, 262),
		"c":    rect(0, 1024, 272, 576),
	}
	if diff := cmp.Diff(want, uiSpaces(got)); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
	if got.UISpace != rect(0, 1024, 0, 576) {
		t.Errorf("UISpace = %+v, want viewport", got.UISpace)
	}
}

func TestComputeDeterministic(t *testing.T) {
	view := rect(3, 803, 7, 607)
	first := Compute(view, verticalList())
	second := Compute(view, verticalList())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Compute() not deterministic (-first +second):\n%s", diff)
	}
}

func TestComputeNotComputable(t *testing.T) {
	tests := []struct {
		name string
		tree box.Unit
		want []string
	}{
		{name: "nil root", tree: nil, want: []string{}},
		{name: "none root", tree: box.None{}, want: []string{}},
		{
			name: "zero column grid root",
			tree: &box.GridBox{ID: "grid", Rows: 2, Items: []box.GridItem{{Slot: fillBox("cell")}}},
			want: []string{},
		},
		{
			name: "zero row grid pruned with subtree",
			tree: &box.ContentBox{
				ID: "root",
				Items: []box.ContentItem{
					{Slot: &box.GridBox{ID: "grid", Cols: 2, Items: []box.GridItem{{Slot: fillBox("cell")}}}},
					{Slot: fillBox("sibling")},
				},
			},
			want: []string{"root", "sibling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(rect(0, 100, 0, 100), tt.tree)
			if diff := cmp.Diff(tt.want, got.IDs()); diff != "" {
				t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeAbsoluteComposition(t *testing.T) {
	tree := &box.ContentBox{
		ID: "root",
		Items: []box.ContentItem{{
			Slot: &box.SizeBox{
				ID:     "frame",
				Width:  box.Fill(),
				Height: box.Fill(),
				Margin: rect(5, 5, 5, 5),
				Slot:   &box.ImageBox{ID: "pic", Width: box.Fill(), Height: box.Fill()},
			},
			Layout: box.ContentItemLayout{Anchors: rect(0.5, 1, 0.5, 1)},
		}},
	}

	got := Compute(rect(10, 210, 20, 120), tree)

	want := map[string]Item{
		"root":  {LocalSpace: rect(0, 200, 0, 100), UISpace: rect(10, 210, 20, 120)},
		"frame": {LocalSpace: rect(100, 200, 50, 100), UISpace: rect(110, 210, 70, 120)},
		"pic":   {LocalSpace: rect(5, 95, 5, 45), UISpace: rect(115, 205, 75, 115)},
	}
	if diff := cmp.Diff(want, got.Items); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDuplicateIDLastWriterWins(t *testing.T) {
	tree := &box.FlexBox{
		ID: "row",
		Items: []box.FlexItem{
			{Slot: fillBox("dup"), Basis: ptr(10)},
			{Slot: fillBox("dup"), Basis: ptr(20)},
		},
	}
	got := Compute(rect(0, 100, 0, 10), tree)
	it, ok := got.Item("dup")
	if !ok {
		t.Fatal("Item(dup) missing")
	}
	if want := rect(10, 30, 0, 0); it.UISpace != want {
		t.Errorf("Item(dup).UISpace = %+v, want %+v", it.UISpace, want)
	}
	if got.Len() != 2 {
		t.Errorf("Len() = %d, want 2", got.Len())
	}
}

func TestHitTest(t *testing.T) {
	l := Compute(rect(0, 1024, 0, 576), verticalList())

	tests := []struct {
		name  string
		point geom.Vec2
		want  []string
	}{
		{name: "inside b", point: geom.Vec2{X: 5, Y: 120}, want: []string{"b", "list"}},
		{name: "separation gap", point: geom.Vec2{X: 5, Y: 105}, want: []string{"list"}},
		{name: "top left edge", point: geom.Vec2{X: 0, Y: 0}, want: []string{"a", "list"}},
		{name: "outside", point: geom.Vec2{X: 2000, Y: 5}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, l.HitTest(tt.point)); diff != "" {
				t.Errorf("HitTest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNodeCount(t *testing.T) {
	root, ok := LayoutNode(geom.Vec2{X: 100, Y: 100}, verticalList())
	if !ok {
		t.Fatal("LayoutNode() not computable")
	}
	if got := root.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestDefaultEngine(t *testing.T) {
	var e Engine = DefaultEngine{}
	got, err := e.Layout(rect(0, 1024, 0, 576), verticalList())
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if diff := cmp.Diff(Compute(rect(0, 1024, 0, 576), verticalList()), got); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}
}
