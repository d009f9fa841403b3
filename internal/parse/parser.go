// Package parse implements the grammar layer of spec.md §4.2: a
// recursive-descent parser over internal/lex that turns DOT source text
// into an ast.RawGraph, preserving nested subgraph structure exactly as
// written.
package parse

import (
	"github.com/ritamzico/dotgraph/internal/ast"
	"github.com/ritamzico/dotgraph/internal/lex"
)

// Parser holds the scanner state for one parse of a DOT document.
type Parser struct {
	s *lex.Scanner
}

// New returns a Parser positioned at the start of src.
func New(src string) *Parser {
	return &Parser{s: lex.New(src)}
}

// ParseString parses a complete DOT document.
func ParseString(src string) (ast.RawGraph, error) {
	return New(src).Parse()
}

// Parse consumes the entire input as a single TopLevel production.
func (p *Parser) Parse() (ast.RawGraph, error) {
	p.s.SkipWSR()
	g, err := p.parseTopLevel()
	if err != nil {
		return ast.RawGraph{}, err
	}
	p.s.SkipWSR()
	if !p.s.AtEOF() {
		return ast.RawGraph{}, errorf(p.s.Position(), "unexpected trailing input")
	}
	return g, nil
}

func (p *Parser) parseTopLevel() (ast.RawGraph, error) {
	var g ast.RawGraph

	if p.peekKeyword(lex.KwStrict) {
		p.consumeKeyword(lex.KwStrict)
		g.Strict = true
		p.s.SkipWSR()
	}

	switch {
	case p.peekKeyword(lex.KwDigraph):
		p.consumeKeyword(lex.KwDigraph)
		g.Type = ast.Digraph
	case p.peekKeyword(lex.KwGraph):
		p.consumeKeyword(lex.KwGraph)
		g.Type = ast.Graph
	default:
		return ast.RawGraph{}, errorf(p.s.Position(), "expected 'graph' or 'digraph'")
	}
	p.s.SkipWSR()

	if p.s.Peek() != '{' {
		name, ok := p.s.ReadName()
		if !ok {
			return ast.RawGraph{}, errorf(p.s.Position(), "expected graph name or '{'")
		}
		g.Name = name
		p.s.SkipWSR()
	}

	stmts, err := p.parseStatementList()
	if err != nil {
		return ast.RawGraph{}, err
	}
	g.Statements = stmts
	return g, nil
}

// parseStatementList parses a brace-delimited, ';'/newline-separated list of
// statements with an optional trailing separator.
func (p *Parser) parseStatementList() ([]ast.RawStmt, error) {
	if p.s.Peek() != '{' {
		return nil, errorf(p.s.Position(), "expected '{'")
	}
	p.s.Advance()
	p.s.SkipWSR()

	var stmts []ast.RawStmt
	for {
		if p.s.Peek() == '}' {
			p.s.Advance()
			return stmts, nil
		}
		if p.s.AtEOF() {
			return nil, errorf(p.s.Position(), "unexpected end of input, expected '}'")
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		p.s.SkipWS()
		if p.s.Peek() == ';' {
			p.s.Advance()
		}
		p.s.SkipWSR()
	}
}

// parseStmt implements the four-way statement disambiguation of spec §4.2.
//
// Deviation from the spec's literal wording: an AttributeDefault is
// recognized by its leading token being exactly one of the keywords
// graph/node/edge, not merely by '[' preceding '=' anywhere on the line.
// The literal rule misclassifies an ordinary attributed node statement like
// "Jack[age=19]" (whose only '=' sits after a '[') as an attribute default.
// Requiring the keyword keeps that case a NodeStatement while still
// recognizing "graph[color=blue]" and "node[]". See DESIGN.md.
func (p *Parser) parseStmt() (ast.RawStmt, error) {
	if p.peekKeyword(lex.KwSubgraph) {
		sg, err := p.parseKeywordSubgraph()
		if err != nil {
			return ast.RawStmt{}, err
		}
		return ast.RawStmt{Subgraph: sg}, nil
	}

	if p.s.Peek() == '{' {
		followsEdge, err := p.braceGroupPrecedesEdgeOp()
		if err != nil {
			return ast.RawStmt{}, err
		}
		if followsEdge {
			return p.parseEdgeStmt()
		}
		stmts, err := p.parseStatementList()
		if err != nil {
			return ast.RawStmt{}, err
		}
		return ast.RawStmt{Subgraph: &ast.Subgraph{Statements: stmts}}, nil
	}

	if p.s.LookaheadTopLevel(string(ast.Undirected), string(ast.Directed)) >= 0 {
		return p.parseEdgeStmt()
	}

	if name, kind, ok := p.peekAttrKeyword(); ok {
		p.consumeKeyword(name)
		p.s.SkipWS()
		attrs, err := p.parseOptionalAttrList()
		if err != nil {
			return ast.RawStmt{}, err
		}
		return ast.RawStmt{AttrDefault: &ast.AttrDefault{Kind: kind, Attrs: attrs}}, nil
	}

	if p.s.LookaheadTopLevel("=") >= 0 {
		key, ok := p.s.ReadName()
		if !ok {
			return ast.RawStmt{}, errorf(p.s.Position(), "expected identifier")
		}
		p.s.SkipWS()
		if p.s.Peek() != '=' {
			return ast.RawStmt{}, errorf(p.s.Position(), "expected '='")
		}
		p.s.Advance()
		p.s.SkipWS()
		value, ok := p.s.ReadName()
		if !ok {
			return ast.RawStmt{}, errorf(p.s.Position(), "expected identifier after '='")
		}
		return ast.RawStmt{AttrAssign: &ast.AttrAssign{Key: key, Value: value}}, nil
	}

	return p.parseNodeStmt()
}

// braceGroupPrecedesEdgeOp reports whether the NodeGroup starting at the
// current '{' is immediately followed (after ws) by an edge operator,
// without consuming anything. See spec §4.2 / §8 property S7.
func (p *Parser) braceGroupPrecedesEdgeOp() (bool, error) {
	end, ok := p.s.MatchBrace()
	if !ok {
		return false, errorf(p.s.Position(), "unterminated '{'")
	}
	tmp := p.s.Clone()
	tmp.Seek(end)
	tmp.SkipWS()
	return tmp.HasPrefix(string(ast.Undirected)) || tmp.HasPrefix(string(ast.Directed)), nil
}

// peekKeyword reports whether the upcoming identifier is exactly kw (and
// not a longer identifier that merely starts with it).
func (p *Parser) peekKeyword(kw string) bool {
	tmp := p.s.Clone()
	name, ok := tmp.ReadName()
	return ok && name == kw
}

// peekAttrKeyword reports whether the upcoming identifier is one of
// graph/node/edge.
func (p *Parser) peekAttrKeyword() (string, ast.AttrKind, bool) {
	tmp := p.s.Clone()
	name, ok := tmp.ReadName()
	if !ok {
		return "", 0, false
	}
	switch name {
	case lex.KwGraph:
		return name, ast.GraphAttr, true
	case lex.KwNode:
		return name, ast.NodeAttr, true
	case lex.KwEdge:
		return name, ast.EdgeAttr, true
	default:
		return "", 0, false
	}
}

// consumeKeyword advances past an already-verified keyword.
func (p *Parser) consumeKeyword(kw string) {
	for range kw {
		p.s.Advance()
	}
}
