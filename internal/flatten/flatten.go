// Package flatten discards subgraph structure from a resolved graph,
// producing a flat sequence of node and edge statements (spec.md §7). It's
// a thin post-order walk: subgraph envelopes are informational once
// resolution has finished inheriting their defaults, so discarding one is
// always advisory, never an error.
package flatten

import (
	"fmt"
	"io"

	"github.com/ritamzico/dotgraph/internal/ast"
)

// Sink receives one diagnostic message per subgraph envelope discarded.
// Callers that don't care can pass NoopSink{}.
type Sink interface {
	Write(msg string)
}

// NoopSink discards every message.
type NoopSink struct{}

func (NoopSink) Write(string) {}

// WriterSink writes each message as its own line to w, for CLI/server
// callers that want discarded-subgraph diagnostics surfaced like any other
// log line.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Write(msg string) {
	fmt.Fprintln(s.W, msg)
}

// Flatten walks g and returns the concatenation of its leaf statements in
// document order, reporting one diagnostic per discarded subgraph to sink.
func Flatten(g ast.ResolvedGraph, sink Sink) ast.FlatGraph {
	if sink == nil {
		sink = NoopSink{}
	}
	return ast.FlatGraph{
		Strict:     g.Strict,
		Type:       g.Type,
		Statements: flattenStmts(g.Statements, sink),
	}
}

func flattenStmts(stmts []ast.ResolvedStmt, sink Sink) []ast.FlatStmt {
	var out []ast.FlatStmt
	for _, s := range stmts {
		switch {
		case s.NodeStmt != nil:
			out = append(out, ast.FlatStmt{NodeStmt: s.NodeStmt})
		case s.EdgeStmt != nil:
			out = append(out, ast.FlatStmt{EdgeStmt: s.EdgeStmt})
		case s.Subgraph != nil:
			label := s.Subgraph.Name
			if label == "" {
				label = "<anonymous>"
			}
			sink.Write("discarding subgraph envelope " + label)
			out = append(out, flattenStmts(s.Subgraph.Statements, sink)...)
		}
	}
	return out
}
