// Package resolve implements the scope-inheritance resolver of spec.md
// §5: it walks a raw syntax tree, materializing every node's and edge's
// effective attributes from the inherited graph/node/edge default tables in
// scope, and validates the well-formedness invariants the grammar layer
// cannot check on its own (node declaration order, edge directionality,
// strict-graph duplicate edges).
package resolve

import (
	"maps"

	"github.com/ritamzico/dotgraph/internal/ast"
)

// Resolve walks g and produces a ResolvedGraph with every attribute table
// materialized, or a ResolveError describing the first violation found.
func Resolve(g ast.RawGraph) (ast.ResolvedGraph, error) {
	nodesSeen := map[string]bool{}
	edgesSeen := map[any]bool{}
	return resolveScope(
		g.Statements, g.Strict, g.Type, g.Name,
		map[string]string{}, map[string]string{}, map[string]string{},
		nodesSeen, edgesSeen,
	)
}

// resolveScope resolves one StatementList (the top-level graph or a
// subgraph). graphAttrs/nodeAttrs/edgeAttrs are the default tables
// inherited from the enclosing scope; they are cloned on entry so that
// mutations here never leak back to the caller (scope isolation).
// nodesSeen/edgesSeen are shared document-wide by reference, since node and
// edge uniqueness spans the whole document, not just one scope.
func resolveScope(
	stmts []ast.RawStmt, strict bool, typ ast.GraphType, name string,
	graphAttrs, nodeAttrs, edgeAttrs map[string]string,
	nodesSeen map[string]bool, edgesSeen map[any]bool,
) (ast.ResolvedGraph, error) {
	ga := maps.Clone(graphAttrs)
	gi := maps.Clone(graphAttrs)
	na := maps.Clone(nodeAttrs)
	ea := maps.Clone(edgeAttrs)

	wantOp := ast.Undirected
	if typ == ast.Digraph {
		wantOp = ast.Directed
	}

	var out []ast.ResolvedStmt
	for _, s := range stmts {
		switch {
		case s.AttrAssign != nil:
			ga[s.AttrAssign.Key] = s.AttrAssign.Value

		case s.AttrDefault != nil:
			table := tableFor(s.AttrDefault.Kind, gi, na, ea)
			for _, item := range s.AttrDefault.Attrs {
				table[item.Key] = item.Value
				if s.AttrDefault.Kind == ast.GraphAttr {
					ga[item.Key] = item.Value
				}
			}

		case s.NodeStmt != nil:
			if nodesSeen[s.NodeStmt.Name] {
				return ast.ResolvedGraph{}, redefinedNode(s.NodeStmt.Name)
			}
			nodesSeen[s.NodeStmt.Name] = true

			attrs := maps.Clone(na)
			for _, item := range s.NodeStmt.Attrs {
				attrs[item.Key] = item.Value
			}
			out = append(out, ast.ResolvedStmt{
				NodeStmt: &ast.NodeStmt{Name: s.NodeStmt.Name, Attrs: ast.SortedAttrs(attrs)},
			})

		case s.EdgeStmt != nil:
			edges := make([]ast.Edge, 0, len(s.EdgeStmt.Edges))
			for _, e := range s.EdgeStmt.Edges {
				if e.Op != wantOp {
					return ast.ResolvedGraph{}, edgeDirectionMismatch(string(e.Op))
				}
				if !nodesSeen[e.Src] {
					return ast.ResolvedGraph{}, undefinedNode(e.Src)
				}
				if !nodesSeen[e.Tgt] {
					return ast.ResolvedGraph{}, undefinedNode(e.Tgt)
				}
				if strict {
					key := e.Key()
					if edgesSeen[key] {
						return ast.ResolvedGraph{}, duplicateEdgeInStrict(e.Src, string(e.Op), e.Tgt)
					}
					edgesSeen[key] = true
				}
				edges = append(edges, e)
			}

			attrs := maps.Clone(ea)
			for _, item := range s.EdgeStmt.Attrs {
				attrs[item.Key] = item.Value
			}
			out = append(out, ast.ResolvedStmt{
				EdgeStmt: &ast.EdgeStmt{Edges: edges, Attrs: ast.SortedAttrs(attrs)},
			})

		case s.Subgraph != nil:
			child, err := resolveScope(s.Subgraph.Statements, strict, typ, s.Subgraph.Name, gi, na, ea, nodesSeen, edgesSeen)
			if err != nil {
				return ast.ResolvedGraph{}, err
			}
			out = append(out, ast.ResolvedStmt{Subgraph: &child})
		}
	}

	return ast.ResolvedGraph{
		Strict:     strict,
		Type:       typ,
		Name:       name,
		GraphAttrs: ga,
		Statements: out,
	}, nil
}

func tableFor(kind ast.AttrKind, graphAttrs, nodeAttrs, edgeAttrs map[string]string) map[string]string {
	switch kind {
	case ast.NodeAttr:
		return nodeAttrs
	case ast.EdgeAttr:
		return edgeAttrs
	default:
		return graphAttrs
	}
}
