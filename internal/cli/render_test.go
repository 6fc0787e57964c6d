package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxlayout/pkg/errors"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"from input", "", "trees/row.json", "trees/row"},
		{"output without extension", "out/row", "row.json", "out/row"},
		{"output with format extension", "out/row.svg", "row.json", "out/row"},
		{"output with layout extension", "out/row.layout.json", "row.json", "out/row"},
		{"output with other extension", "out/row.v2", "row.json", "out/row.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name   string
		format string
		count  int
		output string
		want   string
	}{
		{"single with output", "svg", 1, "picture.svg", "picture.svg"},
		{"single without output", "svg", 1, "", "row.svg"},
		{"multiple with output", "dot", 2, "out/pic.svg", "out/pic.dot"},
		{"tree diagram", "tree", 2, "", "row.tree.svg"},
		{"json layout", "json", 2, "", "row.layout.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactPath(tt.format, tt.count, "row.json", tt.output); got != tt.want {
				t.Errorf("artifactPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"json": []byte("{}"), "svg": []byte("<svg/>")}

	paths, err := writeArtifacts(artifacts, []string{"svg", "json"}, "row.json", filepath.Join(dir, "nested", "row"))
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{filepath.Join(dir, "nested", "row.svg"), filepath.Join(dir, "nested", "row.layout.json")}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(want[0])
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("svg file = %q, %v", data, err)
	}

	if _, err := writeArtifacts(artifacts, []string{"png"}, "row.json", filepath.Join(dir, "x")); err == nil {
		t.Error("missing artifact should fail")
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)
	base := filepath.Join(dir, "out", "row")

	if _, err := execute(t, "render", input, "-f", "json,svg,dot", "-o", base, "--labels", "--width", "400", "--height", "50"); err != nil {
		t.Fatalf("render: %v", err)
	}

	_, rects := readLayoutFile(t, base+".layout.json")
	if rects["b"].Left != 110 {
		t.Errorf("b = %+v, want left 110", rects["b"])
	}

	checks := map[string][]string{
		base + ".svg": {"<svg", `id="box-b"`, "hello", `class="label"`},
		base + ".dot": {"digraph", "flex row", "text b"},
	}
	for path, wants := range checks {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		for _, want := range wants {
			if !strings.Contains(string(data), want) {
				t.Errorf("%s missing %q", filepath.Base(path), want)
			}
		}
	}
}

func TestRenderCommandDefaultsToJSON(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)

	if _, err := execute(t, "render", input, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	lf, _ := readLayoutFile(t, filepath.Join(dir, "row.layout.json"))
	if lf.Count != 3 {
		t.Errorf("count = %d, want 3", lf.Count)
	}
	tree, err := os.ReadFile(input)
	if err != nil || string(tree) != rowTree {
		t.Errorf("input tree was modified: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "row.json", rowTree)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown format", []string{"-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"negative scale", []string{"-f", "png", "--scale=-1"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", input, "--no-cache", "-o", filepath.Join(dir, "out")}, tt.args...)
			_, err := execute(t, args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}
