// Package dotgraph is a thin facade over the parser, resolver, flattener,
// and renderer: Parse/ParseFile produce a raw syntax tree, Resolve
// validates it and materializes inherited attributes, Flatten discards
// subgraph structure, and RenderResolved/RenderFlat produce the canonical
// textual form. cmd/dotgraph and cmd/dotgraphd are built entirely on this
// package.
package dotgraph

import (
	"io"
	"os"

	"github.com/ritamzico/dotgraph/internal/ast"
	"github.com/ritamzico/dotgraph/internal/flatten"
	"github.com/ritamzico/dotgraph/internal/parse"
	"github.com/ritamzico/dotgraph/internal/render"
	"github.com/ritamzico/dotgraph/internal/resolve"
	"github.com/ritamzico/dotgraph/internal/serialization"
)

type (
	RawGraph      = ast.RawGraph
	ResolvedGraph = ast.ResolvedGraph
	FlatGraph     = ast.FlatGraph
	Sink          = flatten.Sink
)

// NoopSink discards flatten diagnostics.
type NoopSink = flatten.NoopSink

// WriterSink writes one line per flatten diagnostic to W.
type WriterSink = flatten.WriterSink

// Parse parses DOT source text into a raw syntax tree.
func Parse(src string) (RawGraph, error) {
	return parse.ParseString(src)
}

// ParseFile reads path and parses it as DOT source, mapping filesystem
// errors onto the FileNotFound/PermissionDenied/IOError taxonomy (see
// ioerrors.go).
func ParseFile(path string) (RawGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawGraph{}, wrapFileError(path, err)
	}
	return Parse(string(data))
}

// Resolve runs the scope-inheritance resolver over a raw syntax tree,
// validating node declaration order, edge directionality, and (for strict
// graphs) edge uniqueness.
func Resolve(g RawGraph) (ResolvedGraph, error) {
	return resolve.Resolve(g)
}

// Flatten discards subgraph structure from a resolved graph, reporting one
// diagnostic per discarded envelope to sink. A nil sink discards silently.
func Flatten(g ResolvedGraph, sink Sink) FlatGraph {
	return flatten.Flatten(g, sink)
}

// RenderResolved renders a resolved graph in the canonical format.
func RenderResolved(g ResolvedGraph) string {
	return render.Resolved(g)
}

// RenderFlat renders a flattened graph in the canonical format.
func RenderFlat(g FlatGraph) string {
	return render.Flat(g)
}

// WriteJSON encodes a resolved graph as JSON to w.
func WriteJSON(g ResolvedGraph, w io.Writer) error {
	return serialization.WriteJSON(g, w)
}

// ReadJSON decodes a resolved graph from JSON read from r.
func ReadJSON(r io.Reader) (ResolvedGraph, error) {
	return serialization.ReadJSON(r)
}

// SaveJSON writes a resolved graph to a JSON file at path.
func SaveJSON(g ResolvedGraph, path string) error {
	return serialization.SaveJSON(g, path)
}

// LoadJSON reads a resolved graph from a JSON file at path, mapping
// filesystem errors the same way ParseFile does.
func LoadJSON(path string) (ResolvedGraph, error) {
	g, err := serialization.LoadJSON(path)
	if err != nil {
		if _, err2 := os.Stat(path); err2 != nil {
			return ResolvedGraph{}, wrapFileError(path, err2)
		}
		return ResolvedGraph{}, err
	}
	return g, nil
}
