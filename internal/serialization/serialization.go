// Package serialization persists a resolved graph to and from JSON. The CLI
// writes resolved graphs with it (its -json and -save flags), and the root
// package exposes both directions; dotgraphd does not use it.
package serialization

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ritamzico/dotgraph/internal/ast"
)

// WriteJSON encodes g to w.
func WriteJSON(g ast.ResolvedGraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// ReadJSON decodes a ResolvedGraph from r.
func ReadJSON(r io.Reader) (ast.ResolvedGraph, error) {
	var g ast.ResolvedGraph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return ast.ResolvedGraph{}, fmt.Errorf("decoding resolved graph JSON: %w", err)
	}
	return g, nil
}

// SaveJSON writes g to a JSON file at path.
func SaveJSON(g ast.ResolvedGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// LoadJSON reads a ResolvedGraph from a JSON file at path.
func LoadJSON(path string) (ast.ResolvedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return ast.ResolvedGraph{}, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
