// Package render implements the canonical pretty-printer of spec.md §6: a
// deterministic, tab-indented textual rendering of a resolved graph, used
// both by the test suite (to compare trees as text) and by the CLI/server
// surfaces as their default output format.
package render

import (
	"strings"

	"github.com/ritamzico/dotgraph/internal/ast"
)

// Resolved renders g in the canonical format: tab-indented, with every
// attribute table shown sorted by key and every edge chain link on its own
// line.
func Resolved(g ast.ResolvedGraph) string {
	var b strings.Builder
	if g.Strict {
		b.WriteString("strict ")
	}
	b.WriteString(g.Type.String())
	b.WriteByte(' ')
	if g.Name != "" {
		b.WriteString(g.Name)
		b.WriteByte(' ')
	}
	b.WriteString("{\n")
	writeResolvedBody(&b, g, 1)
	b.WriteString("}\n")
	return b.String()
}

// Flat renders a flattened graph: no subgraph envelopes remain, so the
// body is just the statement list at one indent level.
func Flat(g ast.FlatGraph) string {
	var b strings.Builder
	if g.Strict {
		b.WriteString("strict ")
	}
	b.WriteString(g.Type.String())
	b.WriteString(" {\n")
	for _, stmt := range g.Statements {
		writeIndent(&b, 1)
		switch {
		case stmt.NodeStmt != nil:
			writeNodeStmt(&b, stmt.NodeStmt)
		case stmt.EdgeStmt != nil:
			writeEdgeStmt(&b, stmt.EdgeStmt, 1)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func writeResolvedBody(b *strings.Builder, g ast.ResolvedGraph, indent int) {
	writeIndent(b, indent)
	b.WriteByte('[')
	writeAttrList(b, ast.SortedAttrs(g.GraphAttrs))
	b.WriteString("]\n")

	for _, stmt := range g.Statements {
		writeIndent(b, indent)
		writeResolvedStmt(b, stmt, indent)
	}
}

func writeResolvedStmt(b *strings.Builder, s ast.ResolvedStmt, indent int) {
	switch {
	case s.NodeStmt != nil:
		writeNodeStmt(b, s.NodeStmt)
	case s.EdgeStmt != nil:
		writeEdgeStmt(b, s.EdgeStmt, indent)
	case s.Subgraph != nil:
		if s.Subgraph.Name != "" {
			b.WriteString(s.Subgraph.Name)
			b.WriteByte(' ')
		}
		b.WriteString("{\n")
		writeResolvedBody(b, *s.Subgraph, indent+1)
		writeIndent(b, indent)
		b.WriteString("}\n")
	}
}

func writeNodeStmt(b *strings.Builder, n *ast.NodeStmt) {
	b.WriteString(n.Name)
	if len(n.Attrs) > 0 {
		b.WriteString(" [")
		writeAttrList(b, n.Attrs)
		b.WriteByte(']')
	}
	b.WriteByte('\n')
}

func writeEdgeStmt(b *strings.Builder, e *ast.EdgeStmt, indent int) {
	for i, edge := range e.Edges {
		if i != 0 {
			writeIndent(b, indent)
		}
		b.WriteString(edge.Src)
		b.WriteString(string(edge.Op))
		b.WriteString(edge.Tgt)
		if len(e.Attrs) > 0 {
			b.WriteString(" [")
			writeAttrList(b, e.Attrs)
			b.WriteByte(']')
		}
		b.WriteByte('\n')
	}
}

// writeAttrList prints attrs as written, without quoting or escaping: this
// is a debug pretty-printer, not a round-trip DOT serializer (spec.md §6).
func writeAttrList(b *strings.Builder, attrs ast.AttrList) {
	for i, item := range attrs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.Key)
		b.WriteByte('=')
		b.WriteString(item.Value)
	}
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte('\t')
	}
}
