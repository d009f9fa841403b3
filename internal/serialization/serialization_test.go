package serialization

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ritamzico/dotgraph/internal/ast"
)

func sampleGraph() ast.ResolvedGraph {
	return ast.ResolvedGraph{
		Strict:     true,
		Type:       ast.Digraph,
		Name:       "build",
		GraphAttrs: map[string]string{"rankdir": "LR"},
		Statements: []ast.ResolvedStmt{
			{NodeStmt: &ast.NodeStmt{Name: "compile", Attrs: ast.AttrList{{Key: "shape", Value: "box"}}}},
			{NodeStmt: &ast.NodeStmt{Name: "link"}},
			{EdgeStmt: &ast.EdgeStmt{Edges: []ast.Edge{{Src: "compile", Op: ast.Directed, Tgt: "link"}}}},
		},
	}
}

func TestWriteReadJSONRoundTrip(t *testing.T) {
	g := sampleGraph()
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("round trip changed the graph (-want +got):\n%s", diff)
	}
}

func TestSaveLoadJSONFile(t *testing.T) {
	g := sampleGraph()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := SaveJSON(g, path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("round trip changed the graph (-want +got):\n%s", diff)
	}
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	_, err := ReadJSON(bytes.NewBufferString("not json"))
	if err == nil {
		t.Fatal("expected an error decoding invalid JSON")
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}

func TestGraphTypeKeywordRoundTrips(t *testing.T) {
	g := sampleGraph()
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"digraph"`)) {
		t.Errorf("expected the graph type to serialize as the keyword \"digraph\", got:\n%s", buf.String())
	}
}
