package ast

import "fmt"

// Position identifies a location in DOT source text, for error reporting.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
