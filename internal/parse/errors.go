package parse

import (
	"fmt"

	"github.com/ritamzico/dotgraph/internal/ast"
)

// ParseError reports that DOT source did not match the grammar.
type ParseError struct {
	Pos     ast.Position
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error (%v): %v", e.Pos, e.Message)
}

func errorf(pos ast.Position, format string, args ...any) error {
	return ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
