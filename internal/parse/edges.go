package parse

import "github.com/ritamzico/dotgraph/internal/ast"

// parseEdgeStmt parses an edge chain ("A -> B -> C", "{A,B} -- {C,D}", ...)
// plus its trailing attribute list, expanding each link into the cartesian
// product of its endpoints' names (src-outer, tgt-inner; spec §8 S... / §4.2).
func (p *Parser) parseEdgeStmt() (ast.RawStmt, error) {
	current, err := p.parseEdgeEndpoint()
	if err != nil {
		return ast.RawStmt{}, err
	}

	var edges []ast.Edge
	for {
		p.s.SkipWS()
		op, ok := p.peekEdgeOp()
		if !ok {
			break
		}
		p.s.Consume(string(op))
		p.s.SkipWSR()

		next, err := p.parseEdgeEndpoint()
		if err != nil {
			return ast.RawStmt{}, err
		}
		for _, src := range current {
			for _, tgt := range next {
				edges = append(edges, ast.Edge{Src: src, Op: op, Tgt: tgt})
			}
		}
		current = next
	}

	if len(edges) == 0 {
		return ast.RawStmt{}, errorf(p.s.Position(), "expected edge operator ('--' or '->')")
	}

	p.s.SkipWS()
	attrs, err := p.parseOptionalAttrList()
	if err != nil {
		return ast.RawStmt{}, err
	}
	return ast.RawStmt{EdgeStmt: &ast.EdgeStmt{Edges: edges, Attrs: attrs}}, nil
}

// parseEdgeEndpoint parses one edge chain link: a bare node name or a
// NodeGroup, returning its constituent names.
func (p *Parser) parseEdgeEndpoint() ([]string, error) {
	if p.s.Peek() == '{' {
		return p.parseNodeGroup()
	}
	name, ok := p.s.ReadName()
	if !ok {
		return nil, errorf(p.s.Position(), "expected node name or node group")
	}
	return []string{name}, nil
}

func (p *Parser) peekEdgeOp() (ast.EdgeOp, bool) {
	switch {
	case p.s.HasPrefix(string(ast.Directed)):
		return ast.Directed, true
	case p.s.HasPrefix(string(ast.Undirected)):
		return ast.Undirected, true
	default:
		return "", false
	}
}
