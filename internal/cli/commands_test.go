package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/permlens/permlens/pkg/layout"
)

const testGraphJSON = `{
	"nodes": [
		{"id": "admins", "name": "Admin Group", "type": "permissionGroup"},
		{"id": "sales", "type": "permissionSet"},
		{"id": "export", "name": "Export Reports", "type": "control"},
		{"id": "delete", "name": "Delete Records", "type": "control", "enabled": false}
	],
	"edges": [
		{"source": "admins", "target": "sales"},
		{"source": "sales", "target": "export", "access": "ALLOW"},
		{"source": "sales", "target": "delete", "access": "DENY"}
	]
}`

// writeTestGraph puts the shared fixture graph in a temp dir.
func writeTestGraph(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(testGraphJSON), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, cmd interface {
	SetArgs([]string)
	SetOut(io.Writer)
	SetErr(io.Writer)
	Execute() error
}, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestValidateCommand(t *testing.T) {
	path := writeTestGraph(t)
	if err := runCommand(t, newValidateCmd(), path); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidateCommandRejectsBadGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	data := `{"nodes": [{"id": "a"}, {"id": "a"}], "edges": []}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, newValidateCmd(), path); err == nil {
		t.Fatal("expected error for duplicate node IDs")
	}
}

func TestValidateCommandMissingFile(t *testing.T) {
	if err := runCommand(t, newValidateCmd(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLayoutCommand(t *testing.T) {
	graphPath := writeTestGraph(t)
	outPath := filepath.Join(t.TempDir(), "layout.json")

	cfgPath := ""
	err := runCommand(t, newLayoutCmd(&cfgPath),
		graphPath, "--strategy", "grid-scatter", "-o", outPath)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	res, err := layout.ReadResultFile(outPath)
	if err != nil {
		t.Fatalf("reading layout output: %v", err)
	}
	if len(res.Nodes) != 4 {
		t.Errorf("laid out %d nodes, want 4", len(res.Nodes))
	}
	if res.Strategy != layout.StrategyGrid {
		t.Errorf("Strategy = %q, want grid-scatter", res.Strategy)
	}
}

func TestRenderCommand(t *testing.T) {
	graphPath := writeTestGraph(t)
	outPath := filepath.Join(t.TempDir(), "diagram.svg")

	cfgPath := ""
	err := runCommand(t, newRenderCmd(&cfgPath),
		graphPath, "--strategy", "grid-scatter", "-o", outPath, "--no-cache")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading rendered SVG: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") {
		t.Error("output should be an SVG document")
	}
	for _, want := range []string{"Admin Group", "Export Reports", "sales"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG should contain node label %q", want)
		}
	}
}

func TestRenderCommandWithSelection(t *testing.T) {
	graphPath := writeTestGraph(t)
	outPath := filepath.Join(t.TempDir(), "diagram.svg")

	cfgPath := ""
	err := runCommand(t, newRenderCmd(&cfgPath),
		graphPath, "--strategy", "grid-scatter", "-o", outPath, "--no-cache",
		"--selected", "sales")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output should be an SVG document")
	}
}

func TestRenderCommandBadStrategy(t *testing.T) {
	graphPath := writeTestGraph(t)
	cfgPath := ""
	err := runCommand(t, newRenderCmd(&cfgPath), graphPath, "--strategy", "swirl")
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
