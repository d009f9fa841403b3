package parse

import "github.com/ritamzico/dotgraph/internal/ast"

// parseOptionalAttrList parses zero or more concatenated bracketed
// attribute-list groups ("[a=b][c=d]"), folding them into one AttrList in
// source order. Returns an empty, non-nil-safe list when no '[' is present.
func (p *Parser) parseOptionalAttrList() (ast.AttrList, error) {
	var attrs ast.AttrList
	for p.s.Peek() == '[' {
		group, err := p.parseAttrListGroup()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, group...)
		p.s.SkipWS()
	}
	return attrs, nil
}

// parseAttrListGroup parses a single '[' … ']' group: zero or more
// AttributeItems separated by ',', ';', or bare whitespace, with an
// optional trailing separator.
func (p *Parser) parseAttrListGroup() (ast.AttrList, error) {
	if p.s.Peek() != '[' {
		return nil, errorf(p.s.Position(), "expected '['")
	}
	p.s.Advance()
	p.s.SkipWSR()

	var items ast.AttrList
	for {
		if p.s.Peek() == ']' {
			p.s.Advance()
			return items, nil
		}
		if p.s.AtEOF() {
			return nil, errorf(p.s.Position(), "unexpected end of input, expected ']'")
		}
		item, err := p.parseAttrItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.s.SkipWSR()
		if p.s.Peek() == ',' || p.s.Peek() == ';' {
			p.s.Advance()
			p.s.SkipWSR()
		}
	}
}

// parseAttrItem parses "key = value".
func (p *Parser) parseAttrItem() (ast.AttrItem, error) {
	key, ok := p.s.ReadName()
	if !ok {
		return ast.AttrItem{}, errorf(p.s.Position(), "expected attribute name")
	}
	p.s.SkipWSR()
	if p.s.Peek() != '=' {
		return ast.AttrItem{}, errorf(p.s.Position(), "expected '=' after attribute name %q", key)
	}
	p.s.Advance()
	p.s.SkipWSR()
	value, ok := p.s.ReadName()
	if !ok {
		return ast.AttrItem{}, errorf(p.s.Position(), "expected attribute value after '='")
	}
	return ast.AttrItem{Key: key, Value: value}, nil
}
