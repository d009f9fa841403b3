package parse

import (
	"github.com/ritamzico/dotgraph/internal/ast"
	"github.com/ritamzico/dotgraph/internal/lex"
)

// parseKeywordSubgraph parses "subgraph [name] StatementList", the keyword
// form of a subgraph. A bare '{' block at statement position that is not
// followed by an edge operator is parsed as an anonymous subgraph by
// parseStmt's brace-disambiguation instead.
func (p *Parser) parseKeywordSubgraph() (*ast.Subgraph, error) {
	p.consumeKeyword(lex.KwSubgraph)
	p.s.SkipWSR()

	var name string
	if p.s.Peek() != '{' {
		n, ok := p.s.ReadName()
		if !ok {
			return nil, errorf(p.s.Position(), "expected subgraph name or '{'")
		}
		name = n
		p.s.SkipWSR()
	}

	stmts, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	return &ast.Subgraph{Name: name, Statements: stmts}, nil
}
