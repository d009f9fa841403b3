package resolve

import "fmt"

// ResolveError reports a well-formedness violation found while resolving a
// raw syntax tree: a node used before declaration, a node declared twice, an
// edge operator that doesn't match the graph's directedness, or a duplicate
// edge in a strict graph.
type ResolveError struct {
	Kind    string
	Message string
}

func (e ResolveError) Error() string {
	return fmt.Sprintf("resolve error (%v): %v", e.Kind, e.Message)
}

func redefinedNode(name string) error {
	return ResolveError{Kind: "RedefinedNode", Message: fmt.Sprintf("node %q already declared", name)}
}

func undefinedNode(name string) error {
	return ResolveError{Kind: "UndefinedNode", Message: fmt.Sprintf("node %q used before it was declared", name)}
}

func edgeDirectionMismatch(name string) error {
	return ResolveError{
		Kind:    "EdgeDirectionMismatch",
		Message: fmt.Sprintf("edge operator %q does not match the graph's directedness", name),
	}
}

func duplicateEdgeInStrict(src, op, tgt string) error {
	return ResolveError{
		Kind:    "DuplicateEdgeInStrict",
		Message: fmt.Sprintf("duplicate edge %s %s %s in strict graph", src, op, tgt),
	}
}
