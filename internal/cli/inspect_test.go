package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

var inspectViewport = geom.Rect{Right: 200, Bottom: 100}

func inspectTree() box.Unit {
	return &box.FlexBox{
		ID:        "list",
		Direction: box.VerticalTopToBottom,
		Items: []box.FlexItem{
			{Slot: &box.TextBox{ID: "title", Text: "hi", Width: box.Fill(), Height: box.Exact(20)}, Fill: 1},
			{Slot: &box.ImageBox{ID: "pic", Width: box.Exact(50), Height: box.Exact(40)}},
			{Slot: &box.GridBox{ID: "empty", Items: []box.GridItem{{Slot: &box.ImageBox{ID: "lost"}}}}},
		},
	}
}

func TestInspectRows(t *testing.T) {
	tree := inspectTree()
	rows := inspectRows(tree, layout.Compute(inspectViewport, tree))

	want := []inspectRow{
		{ID: "list", Kind: box.KindFlex, Depth: 0, Local: inspectViewport, UI: inspectViewport},
		{ID: "title", Kind: box.KindText, Depth: 1,
			Local: geom.Rect{Right: 200, Bottom: 20}, UI: geom.Rect{Right: 200, Bottom: 20}},
		{ID: "pic", Kind: box.KindImage, Depth: 1,
			Local: geom.Rect{Right: 50, Top: 20, Bottom: 60}, UI: geom.Rect{Right: 50, Top: 20, Bottom: 60}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRect(t *testing.T) {
	got := formatRect(geom.Rect{Left: 10, Right: 60.5, Top: 5, Bottom: 25})
	if want := "10,5 50.5x20"; got != want {
		t.Errorf("formatRect() = %q, want %q", got, want)
	}
}

func TestRenderInspectTable(t *testing.T) {
	tree := inspectTree()
	rows := inspectRows(tree, layout.Compute(inspectViewport, tree))

	out := renderInspectTable(rows, 0, len(rows), 1)
	for _, want := range []string{"Box", "Absolute", "list", "  title", "image", "0,20 50x40", "▸"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "lost") {
		t.Error("boxes that were not laid out should be omitted")
	}
}

func TestInspectModelNavigation(t *testing.T) {
	rows := make([]inspectRow, 10)
	for i := range rows {
		rows[i] = inspectRow{ID: string(rune('a' + i)), Kind: box.KindImage}
	}
	special := map[string]tea.KeyType{
		"up": tea.KeyUp, "down": tea.KeyDown, "enter": tea.KeyEnter,
		"esc": tea.KeyEsc, "home": tea.KeyHome, "end": tea.KeyEnd,
	}
	key := func(s string) tea.Msg {
		if kt, ok := special[s]; ok {
			return tea.KeyMsg{Type: kt}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	tests := []struct {
		name       string
		keys       []string
		wantCursor int
		wantOffset int
	}{
		{"starts at top", nil, 0, 0},
		{"up at top stays", []string{"up"}, 0, 0},
		{"down moves", []string{"down", "j"}, 2, 0},
		{"scrolls past window", []string{"j", "j", "j", "j"}, 4, 1},
		{"scrolls back", []string{"j", "j", "j", "j", "k", "k", "k", "k"}, 0, 0},
		{"end jumps", []string{"end"}, 9, 6},
		{"down at bottom stays", []string{"G", "j"}, 9, 6},
		{"home returns", []string{"G", "g"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newInspectModel(rows, inspectViewport)
			m.Height = 4
			for _, k := range tt.keys {
				next, _ := m.Update(key(k))
				m = next.(InspectModel)
			}
			if m.Cursor != tt.wantCursor || m.Offset != tt.wantOffset {
				t.Errorf("cursor, offset = %d, %d, want %d, %d", m.Cursor, m.Offset, tt.wantCursor, tt.wantOffset)
			}
		})
	}
}

func TestInspectModelSelectAndQuit(t *testing.T) {
	tree := inspectTree()
	rows := inspectRows(tree, layout.Compute(inspectViewport, tree))
	m := newInspectModel(rows, inspectViewport)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(InspectModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(InspectModel)
	if got.Selected == nil || got.Selected.ID != "title" {
		t.Fatalf("Selected = %+v, want title", got.Selected)
	}
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should return tea.Quit")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestInspectModelWindowSize(t *testing.T) {
	m := newInspectModel(nil, inspectViewport)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if got := next.(InspectModel).Height; got != 32 {
		t.Errorf("Height = %d, want 32", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	if got := next.(InspectModel).Height; got != 5 {
		t.Errorf("Height = %d, want minimum 5", got)
	}
}

func TestInspectModelView(t *testing.T) {
	tree := inspectTree()
	rows := inspectRows(tree, layout.Compute(inspectViewport, tree))
	view := newInspectModel(rows, inspectViewport).View()
	for _, want := range []string{"Layout", "0,0 200x100", "title", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestInspectCommandPlain(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)

	if _, err := execute(t, "inspect", input, "--plain", "--no-cache"); err != nil {
		t.Fatalf("inspect: %v", err)
	}
}
