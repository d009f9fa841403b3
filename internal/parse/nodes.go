package parse

import "github.com/ritamzico/dotgraph/internal/ast"

// parseNodeStmt parses "name [attr-list]" at statement position, once the
// leading token is known to be neither a keyword nor an edge chain.
func (p *Parser) parseNodeStmt() (ast.RawStmt, error) {
	name, ok := p.s.ReadName()
	if !ok {
		return ast.RawStmt{}, errorf(p.s.Position(), "expected node name")
	}
	p.s.SkipWS()
	attrs, err := p.parseOptionalAttrList()
	if err != nil {
		return ast.RawStmt{}, err
	}
	return ast.RawStmt{NodeStmt: &ast.NodeStmt{Name: name, Attrs: attrs}}, nil
}

// parseNodeGroup parses "{ name (sep name)* }", the flat node-list form a
// '{' takes when used as an edge chain endpoint rather than at statement
// position. Names may be separated by commas, semicolons, or whitespace.
func (p *Parser) parseNodeGroup() ([]string, error) {
	if p.s.Peek() != '{' {
		return nil, errorf(p.s.Position(), "expected '{'")
	}
	p.s.Advance()
	p.s.SkipWSR()

	var names []string
	for {
		if p.s.Peek() == '}' {
			p.s.Advance()
			return names, nil
		}
		if p.s.AtEOF() {
			return nil, errorf(p.s.Position(), "unexpected end of input, expected '}'")
		}
		name, ok := p.s.ReadName()
		if !ok {
			return nil, errorf(p.s.Position(), "expected node name in node group")
		}
		names = append(names, name)

		p.s.SkipWSR()
		if p.s.Peek() == ',' || p.s.Peek() == ';' {
			p.s.Advance()
			p.s.SkipWSR()
		}
	}
}
