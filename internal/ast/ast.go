// Package ast holds the data model shared by the DOT parser, resolver, and
// flattener: the raw syntax tree the parser produces, the resolved tree the
// resolver produces, and the flat tree the flattener produces.
package ast

import "sort"

// AttrItem is a single key/value attribute pair.
type AttrItem struct {
	Key   string
	Value string
}

// AttrList is an ordered sequence of attribute items as written in source.
type AttrList []AttrItem

// AttrKind distinguishes the three attribute-default scopes.
type AttrKind int

const (
	GraphAttr AttrKind = iota
	NodeAttr
	EdgeAttr
)

func (k AttrKind) String() string {
	switch k {
	case GraphAttr:
		return "graph"
	case NodeAttr:
		return "node"
	case EdgeAttr:
		return "edge"
	default:
		return "unknown"
	}
}

// EdgeOp is an edge operator, either "--" (undirected) or "->" (directed).
type EdgeOp string

const (
	Undirected EdgeOp = "--"
	Directed   EdgeOp = "->"
)

// GraphType distinguishes "graph" from "digraph".
type GraphType int

const (
	Graph GraphType = iota
	Digraph
)

func (t GraphType) String() string {
	if t == Digraph {
		return "digraph"
	}
	return "graph"
}

// MarshalJSON renders a GraphType as its keyword ("graph"/"digraph") rather
// than the underlying int, for a readable wire format.
func (t GraphType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the keyword form produced by MarshalJSON.
func (t *GraphType) UnmarshalJSON(data []byte) error {
	if string(data) == `"digraph"` {
		*t = Digraph
	} else {
		*t = Graph
	}
	return nil
}

// MarshalJSON renders an AttrKind as its keyword rather than the
// underlying int, for a readable wire format.
func (k AttrKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts the keyword form produced by MarshalJSON.
func (k *AttrKind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"node"`:
		*k = NodeAttr
	case `"edge"`:
		*k = EdgeAttr
	default:
		*k = GraphAttr
	}
	return nil
}

// Edge is one concrete edge within an EdgeStmt's chain.
type Edge struct {
	Src string
	Op  EdgeOp
	Tgt string
}

// Equal implements the equality of spec §3: directed edges compare src/tgt
// in order, undirected edges compare symmetrically.
func (e Edge) Equal(o Edge) bool {
	if e.Op != o.Op {
		return false
	}
	if e.Src == o.Src && e.Tgt == o.Tgt {
		return true
	}
	if e.Op == Undirected && e.Src == o.Tgt && e.Tgt == o.Src {
		return true
	}
	return false
}

// edgeKey is a hashable representative for an Edge that respects Equal:
// undirected edges key identically regardless of endpoint order.
type edgeKey struct {
	op     EdgeOp
	lo, hi string
}

// Key returns a comparable value suitable for use as a map key, satisfying
// Equal's symmetry for undirected edges (see spec §3 and §9).
func (e Edge) Key() any {
	lo, hi := e.Src, e.Tgt
	if e.Op == Undirected && hi < lo {
		lo, hi = hi, lo
	}
	return edgeKey{op: e.Op, lo: lo, hi: hi}
}

// NodeStmt declares a node and its own attribute assignments.
type NodeStmt struct {
	Name  string
	Attrs AttrList
}

// EdgeStmt is a chain of edges sharing one operator and one attribute list.
type EdgeStmt struct {
	Edges []Edge
	Attrs AttrList
}

// AttrDefault sets inheritable defaults for one of the three scopes.
type AttrDefault struct {
	Kind  AttrKind
	Attrs AttrList
}

// AttrAssign is a private, non-inheritable graph-scope attribute ("ID=ID"
// at statement position).
type AttrAssign struct {
	Key   string
	Value string
}

// Subgraph is a nested statement block, named or anonymous.
type Subgraph struct {
	Name       string // empty for anonymous
	Statements []RawStmt
}

// RawStmt is the tagged union of statement kinds the grammar layer
// produces. Exactly one field is non-nil for any given value.
type RawStmt struct {
	NodeStmt    *NodeStmt
	EdgeStmt    *EdgeStmt
	AttrDefault *AttrDefault
	AttrAssign  *AttrAssign
	Subgraph    *Subgraph
}

// RawGraph is the raw syntax tree produced by Parse, faithful to the
// written document including nested subgraph structure.
type RawGraph struct {
	Strict    bool
	Type      GraphType
	Name      string // empty for anonymous
	Statements []RawStmt
}

// ResolvedStmt is the tagged union of statement kinds the resolver
// produces: concrete nodes and edges, or a nested resolved subgraph.
type ResolvedStmt struct {
	NodeStmt *NodeStmt
	EdgeStmt *EdgeStmt
	Subgraph *ResolvedGraph
}

// ResolvedGraph is a (sub)graph with every node/edge attribute set
// materialized and every graph-scope attribute (inherited and private)
// collapsed into GraphAttrs.
type ResolvedGraph struct {
	Strict     bool
	Type       GraphType
	Name       string
	GraphAttrs map[string]string
	Statements []ResolvedStmt
}

// FlatStmt is either a node or an edge statement; FlatGraph contains only
// these, with all subgraph envelopes discarded.
type FlatStmt struct {
	NodeStmt *NodeStmt
	EdgeStmt *EdgeStmt
}

// FlatGraph is the result of discarding subgraph structure from a
// ResolvedGraph and concatenating its leaf statements.
type FlatGraph struct {
	Strict     bool
	Type       GraphType
	Statements []FlatStmt
}

// SortedAttrs returns the items of m ordered by key, for deterministic
// rendering (spec §6's contract).
func SortedAttrs(m map[string]string) AttrList {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(AttrList, 0, len(keys))
	for _, k := range keys {
		out = append(out, AttrItem{Key: k, Value: m[k]})
	}
	return out
}
