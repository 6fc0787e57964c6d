package box

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree() Unit {
	return &FlexBox{
		ID: "root",
		Items: []FlexItem{
			{Slot: &TextBox{ID: "title", Text: "hello"}},
			{Slot: None{}},
			{Slot: &SizeBox{
				ID:   "frame",
				Slot: &ImageBox{ID: "logo"},
			}},
			{Slot: &GridBox{
				ID:   "grid",
				Cols: 2,
				Rows: 2,
				Items: []GridItem{
					{Slot: &TextBox{ID: "title"}},
				},
			}},
		},
	}
}

func TestWalkPreOrder(t *testing.T) {
	var got []string
	Walk(sampleTree(), func(u Unit, depth int) bool {
		got = append(got, u.Identity())
		return true
	})
	want := []string{"root", "title", "frame", "logo", "grid", "title"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	var got []string
	Walk(sampleTree(), func(u Unit, depth int) bool {
		got = append(got, u.Identity())
		return u.Kind() != KindSize
	})
	for _, id := range got {
		if id == "logo" {
			t.Fatalf("Walk visited child of pruned size box: %v", got)
		}
	}
}

func TestCountAndDepth(t *testing.T) {
	tree := sampleTree()
	if got := Count(tree); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := Depth(tree); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
	if got := Count(None{}); got != 0 {
		t.Errorf("Count(None) = %d, want 0", got)
	}
}

func TestDuplicateIDs(t *testing.T) {
	if diff := cmp.Diff([]string{"title"}, DuplicateIDs(sampleTree())); diff != "" {
		t.Errorf("DuplicateIDs mismatch (-want +got):\n%s", diff)
	}
	if got := DuplicateIDs(&TextBox{ID: "only"}); len(got) != 0 {
		t.Errorf("DuplicateIDs() = %v, want none", got)
	}
}

func TestFind(t *testing.T) {
	u, ok := Find(sampleTree(), "logo")
	if !ok {
		t.Fatal("Find(logo) not found")
	}
	if u.Kind() != KindImage {
		t.Errorf("Find(logo).Kind() = %v, want image", u.Kind())
	}
	if _, ok := Find(sampleTree(), "missing"); ok {
		t.Error("Find(missing) should not be found")
	}
}

func TestSizeBoxChildren(t *testing.T) {
	if got := (&SizeBox{ID: "empty"}).Children(); len(got) != 0 {
		t.Errorf("empty SizeBox children = %v, want none", got)
	}
	if got := (&SizeBox{ID: "x", Slot: None{}}).Children(); len(got) != 0 {
		t.Errorf("SizeBox with None slot children = %v, want none", got)
	}
}
